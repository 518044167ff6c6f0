// Package config defines the resolved set of choices that drive project
// generation. A Configuration is built once, validated once, and passed by
// value to every downstream stage.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidConfiguration is returned when an answer falls outside its
// declared domain. It is always fatal and always raised before any
// filesystem mutation.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Language selects file extensions and typed/untyped template variants.
type Language string

const (
	TypeScript Language = "typescript"
	JavaScript Language = "javascript"
)

// AuthProvider selects the authentication library, if any.
type AuthProvider string

const (
	AuthNone     AuthProvider = "none"
	AuthNextAuth AuthProvider = "nextauth"
)

// ORM selects the database toolkit, if any.
type ORM string

const (
	ORMNone   ORM = "none"
	ORMPrisma ORM = "prisma"
)

// Database selects the connection-string shape and schema provider.
// Only meaningful when an ORM is selected.
type Database string

const (
	Postgres Database = "postgresql"
	MySQL    Database = "mysql"
)

// Linter selects exactly one linter config and dependency set.
type Linter string

const (
	ESLint Linter = "eslint"
	Biome  Linter = "biome"
)

// PackageManager selects the install and runner verbs.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// Languages, AuthProviders, ... list every valid value in prompt order.
var (
	Languages       = []Language{TypeScript, JavaScript}
	AuthProviders   = []AuthProvider{AuthNone, AuthNextAuth}
	ORMs            = []ORM{ORMNone, ORMPrisma}
	Databases       = []Database{Postgres, MySQL}
	Linters         = []Linter{ESLint, Biome}
	PackageManagers = []PackageManager{NPM, Yarn, PNPM, Bun}
)

// Configuration is the immutable, validated set of user choices.
// Construct it with New; the zero value is not valid.
type Configuration struct {
	ProjectName    string
	Language       Language
	UseStyling     bool
	UseRPC         bool
	Auth           AuthProvider
	ORM            ORM
	database       Database
	Linter         Linter
	InitVCS        bool
	PackageManager PackageManager
	Offline        bool
}

// Options is the raw, unvalidated form of a Configuration as collected from
// flags, environment, preset files and prompts.
type Options struct {
	ProjectName    string `yaml:"project_name,omitempty"`
	Language       string `yaml:"language"`
	Tailwind       bool   `yaml:"tailwind"`
	TRPC           bool   `yaml:"trpc"`
	Auth           string `yaml:"auth"`
	ORM            string `yaml:"orm"`
	Database       string `yaml:"database"`
	Linter         string `yaml:"linter"`
	Git            bool   `yaml:"git"`
	PackageManager string `yaml:"package_manager"`
	Offline        bool   `yaml:"-"`
}

// DefaultOptions mirrors the defaults offered by the interactive prompts.
func DefaultOptions() Options {
	return Options{
		Language:       string(TypeScript),
		Tailwind:       true,
		TRPC:           true,
		Auth:           string(AuthNone),
		ORM:            string(ORMNone),
		Database:       string(Postgres),
		Linter:         string(ESLint),
		Git:            true,
		PackageManager: string(NPM),
	}
}

// New validates opts and returns the resulting Configuration.
// Every failure wraps ErrInvalidConfiguration.
func New(opts Options) (Configuration, error) {
	name := strings.TrimSpace(opts.ProjectName)
	if err := ValidateProjectName(name); err != nil {
		return Configuration{}, err
	}

	lang, err := ParseLanguage(opts.Language)
	if err != nil {
		return Configuration{}, err
	}
	auth, err := ParseAuthProvider(opts.Auth)
	if err != nil {
		return Configuration{}, err
	}
	orm, err := ParseORM(opts.ORM)
	if err != nil {
		return Configuration{}, err
	}
	linter, err := ParseLinter(opts.Linter)
	if err != nil {
		return Configuration{}, err
	}
	pm, err := ParsePackageManager(opts.PackageManager)
	if err != nil {
		return Configuration{}, err
	}

	cfg := Configuration{
		ProjectName:    name,
		Language:       lang,
		UseStyling:     opts.Tailwind,
		UseRPC:         opts.TRPC,
		Auth:           auth,
		ORM:            orm,
		Linter:         linter,
		InitVCS:        opts.Git,
		PackageManager: pm,
		Offline:        opts.Offline,
	}

	// The database answer is only consulted when an ORM is selected.
	if orm != ORMNone {
		db, err := ParseDatabase(opts.Database)
		if err != nil {
			return Configuration{}, err
		}
		cfg.database = db
	}

	return cfg, nil
}

// maxNameLength is npm's limit on package names.
const maxNameLength = 214

// npmName matches an unscoped npm package name: lowercase URL-safe
// characters, not starting with "." or "_".
var npmName = regexp.MustCompile(`^[a-z0-9~-][a-z0-9._~-]*$`)

// ValidateProjectName checks that name can be used both as a single new
// directory relative to the working directory and as the npm package name.
// A valid name can be embedded verbatim in generated JSX and markdown.
func ValidateProjectName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: project name is required", ErrInvalidConfiguration)
	case name == "." || name == "..":
		return fmt.Errorf("%w: project name %q is not a directory name", ErrInvalidConfiguration, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: project name %q must not contain path separators", ErrInvalidConfiguration, name)
	case len(name) > maxNameLength:
		return fmt.Errorf("%w: project name is longer than %d characters", ErrInvalidConfiguration, maxNameLength)
	case name == "node_modules" || name == "favicon.ico":
		return fmt.Errorf("%w: project name %q is reserved", ErrInvalidConfiguration, name)
	case !npmName.MatchString(name):
		return fmt.Errorf("%w: project name %q must be a valid npm package name "+
			"(lowercase letters, digits, '-', '.', '_' or '~', not starting with '.' or '_')",
			ErrInvalidConfiguration, name)
	}
	return nil
}

// Options converts the Configuration back to its raw form, e.g. for saving
// a preset.
func (c Configuration) Options() Options {
	db := string(Postgres)
	if d, ok := c.DatabaseFor(); ok {
		db = string(d)
	}
	return Options{
		ProjectName:    c.ProjectName,
		Language:       string(c.Language),
		Tailwind:       c.UseStyling,
		TRPC:           c.UseRPC,
		Auth:           string(c.Auth),
		ORM:            string(c.ORM),
		Database:       db,
		Linter:         string(c.Linter),
		Git:            c.InitVCS,
		PackageManager: string(c.PackageManager),
		Offline:        c.Offline,
	}
}

// DatabaseFor returns the selected database and true when an ORM is in use.
// It is the only accessor for the database answer.
func (c Configuration) DatabaseFor() (Database, bool) {
	if c.ORM == ORMNone {
		return "", false
	}
	return c.database, true
}

// IsTypeScript reports whether TypeScript was selected.
func (c Configuration) IsTypeScript() bool {
	return c.Language == TypeScript
}

// ScriptExt is the extension for plain modules ("ts" or "js").
func (c Configuration) ScriptExt() string {
	if c.IsTypeScript() {
		return "ts"
	}
	return "js"
}

// ComponentExt is the extension for JSX modules ("tsx" or "jsx").
func (c Configuration) ComponentExt() string {
	if c.IsTypeScript() {
		return "tsx"
	}
	return "jsx"
}

// HasAuth reports whether an auth provider was selected.
func (c Configuration) HasAuth() bool {
	return c.Auth != AuthNone
}

// HasORM reports whether an ORM was selected.
func (c Configuration) HasORM() bool {
	return c.ORM != ORMNone
}
