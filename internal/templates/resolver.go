// Package templates resolves a Configuration into the complete set of files
// of a new project. Resolution is pure: the only input besides the
// Configuration is the embedded template tree.
package templates

import (
	"embed"
	"fmt"
	"path"

	"github.com/simonhull/firebird-suite/raph/internal/config"
	"github.com/simonhull/firebird-suite/raph/internal/generator"
	"github.com/simonhull/firebird-suite/raph/internal/manifest"
)

//go:embed files
var templatesFS embed.FS

var renderer = generator.NewRenderer()

// data is computed once per Resolve and shared by every template.
type data struct {
	ProjectName string
	TypeScript  bool
	Script      string // "ts" or "js"
	Component   string // "tsx" or "jsx"

	Styling bool
	RPC     bool
	Auth    bool
	ORM     bool

	Provider string // Prisma datasource provider
	MySQL    bool

	ESLint     bool
	Install    string // e.g. "pnpm install"
	RunDev     string // e.g. "pnpm run dev"
	LayoutBody string // Page tree wrapped in the enabled providers
}

// artifact maps one template to one output path.
type artifact struct {
	Path     string
	Template string
}

// Resolve returns every file of the project described by cfg, in a fixed
// order. It fails with config.ErrInvalidConfiguration if cfg holds a value
// outside its domain or two files would share a path.
func Resolve(cfg config.Configuration) ([]generator.FileSpec, error) {
	d, err := newData(cfg)
	if err != nil {
		return nil, err
	}

	pkg, err := packageJSON(cfg)
	if err != nil {
		return nil, err
	}

	specs := []generator.FileSpec{{Path: "package.json", Content: string(pkg)}}

	for _, a := range artifacts(d) {
		content, err := renderer.RenderFS(templatesFS, "files/"+a.Template, d)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", a.Path, err)
		}
		specs = append(specs, generator.FileSpec{Path: a.Path, Content: string(content)})
	}

	env, err := envFor(cfg)
	if err != nil {
		return nil, err
	}
	if env.Len() > 0 {
		specs = append(specs, generator.FileSpec{Path: ".env", Content: env.Render()})
	}

	if err := checkUnique(specs); err != nil {
		return nil, err
	}
	return specs, nil
}

func newData(cfg config.Configuration) (data, error) {
	switch cfg.Language {
	case config.TypeScript, config.JavaScript:
	default:
		return data{}, fmt.Errorf("%w: unsupported language %q", config.ErrInvalidConfiguration, cfg.Language)
	}
	switch cfg.Linter {
	case config.ESLint, config.Biome:
	default:
		return data{}, fmt.Errorf("%w: unsupported linter %q", config.ErrInvalidConfiguration, cfg.Linter)
	}
	switch cfg.Auth {
	case config.AuthNone, config.AuthNextAuth:
	default:
		return data{}, fmt.Errorf("%w: unsupported auth provider %q", config.ErrInvalidConfiguration, cfg.Auth)
	}
	switch cfg.ORM {
	case config.ORMNone, config.ORMPrisma:
	default:
		return data{}, fmt.Errorf("%w: unsupported orm %q", config.ErrInvalidConfiguration, cfg.ORM)
	}

	switch cfg.PackageManager {
	case config.NPM, config.Yarn, config.PNPM, config.Bun:
	default:
		return data{}, fmt.Errorf("%w: unsupported package manager %q", config.ErrInvalidConfiguration, cfg.PackageManager)
	}

	d := data{
		ProjectName: cfg.ProjectName,
		TypeScript:  cfg.IsTypeScript(),
		Script:      cfg.ScriptExt(),
		Component:   cfg.ComponentExt(),
		Styling:     cfg.UseStyling,
		RPC:         cfg.UseRPC,
		Auth:        cfg.HasAuth(),
		ORM:         cfg.HasORM(),
		ESLint:      cfg.Linter == config.ESLint,
		Install:     string(cfg.PackageManager) + " install",
		RunDev:      string(cfg.PackageManager) + " run dev",
		LayoutBody:  layoutBody(cfg),
	}

	if db, ok := cfg.DatabaseFor(); ok {
		switch db {
		case config.Postgres, config.MySQL:
		default:
			return data{}, fmt.Errorf("%w: unsupported database %q", config.ErrInvalidConfiguration, db)
		}
		d.Provider = string(db)
		d.MySQL = db == config.MySQL
	}

	return d, nil
}

func artifacts(d data) []artifact {
	list := []artifact{}

	if d.TypeScript {
		list = append(list, artifact{"tsconfig.json", "tsconfig.json.tmpl"})
	} else {
		list = append(list, artifact{"jsconfig.json", "jsconfig.json.tmpl"})
	}

	if d.ESLint {
		list = append(list, artifact{"eslint.config.js", "eslint.config.js.tmpl"})
	} else {
		list = append(list, artifact{"biome.json", "biome.json.tmpl"})
	}

	list = append(list,
		artifact{".gitignore", "gitignore.tmpl"},
		artifact{"README.md", "README.md.tmpl"},
		artifact{"src/app/layout." + d.Component, "app/layout.tmpl"},
		artifact{"src/app/page." + d.Component, "app/page.tmpl"},
		artifact{"src/app/globals.css", "app/globals.css.tmpl"},
	)

	if d.Styling {
		list = append(list, artifact{"postcss.config.mjs", "postcss.config.mjs.tmpl"})
	}

	// The RPC group is emitted as a whole or not at all.
	if d.RPC {
		list = append(list,
			artifact{"src/server/trpc/router." + d.Script, "trpc/router.tmpl"},
			artifact{"src/server/trpc/context." + d.Script, "trpc/context.tmpl"},
			artifact{"src/lib/trpc/client." + d.Script, "trpc/client.tmpl"},
			artifact{"src/lib/trpc/Provider." + d.Component, "trpc/provider.tmpl"},
			artifact{"src/app/api/trpc/[trpc]/route." + d.Script, "trpc/route.tmpl"},
		)
	}

	if d.ORM {
		list = append(list,
			artifact{"prisma/schema.prisma", "prisma/schema.prisma.tmpl"},
			artifact{"src/lib/db/prisma." + d.Script, "prisma/client.tmpl"},
		)
	}

	if d.Auth {
		list = append(list,
			artifact{"src/lib/auth/options." + d.Script, "auth/options.tmpl"},
			artifact{"src/app/api/auth/[...nextauth]/route." + d.Script, "auth/route.tmpl"},
			artifact{"src/components/AuthProvider." + d.Component, "auth/provider.tmpl"},
		)
	}

	return list
}

// layoutBody nests {children} in the enabled providers, auth outermost.
func layoutBody(cfg config.Configuration) string {
	var providers []string
	if cfg.HasAuth() {
		providers = append(providers, "AuthProvider")
	}
	if cfg.UseRPC {
		providers = append(providers, "TRPCProvider")
	}

	body := "{children}"
	for i := len(providers) - 1; i >= 0; i-- {
		body = fmt.Sprintf("<%s>\n%s\n</%s>", providers[i], generator.Indent(2, body), providers[i])
	}
	return generator.Indent(8, body)
}

func packageJSON(cfg config.Configuration) ([]byte, error) {
	m, err := manifest.Build(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, err)
	}
	data, err := m.JSON()
	if err != nil {
		return nil, err
	}
	if err := manifest.Validate(data); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, err)
	}
	return data, nil
}

func checkUnique(specs []generator.FileSpec) error {
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		p := path.Clean(s.Path)
		if seen[p] {
			return fmt.Errorf("%w: duplicate file path %q", config.ErrInvalidConfiguration, p)
		}
		seen[p] = true
	}
	return nil
}

// Paths returns the paths of specs, in order.
func Paths(specs []generator.FileSpec) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Path
	}
	return out
}
