package wizard

import (
	"slices"

	"github.com/simonhull/firebird-suite/raph/internal/config"
)

// Question IDs. They match the preset keys so flags, presets and answers
// share one vocabulary.
const (
	IDProjectName    = "project_name"
	IDLanguage       = "language"
	IDTailwind       = "tailwind"
	IDTRPC           = "trpc"
	IDAuth           = "auth"
	IDORM            = "orm"
	IDDatabase       = "database"
	IDLinter         = "linter"
	IDGit            = "git"
	IDPackageManager = "package_manager"
)

// DefaultQuestions returns the project questions in prompt order. Defaults
// are taken from seed, which already reflects flags, environment and preset.
func DefaultQuestions(seed config.Options) []Question {
	return []Question{
		{
			ID:          IDProjectName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Lowercase npm package name. A directory with this name is created here.",
			Default:     seed.ProjectName,
			Required:    true,
			Validate:    config.ValidateProjectName,
		},
		{
			ID:    IDLanguage,
			Type:  QuestionTypeSelect,
			Title: "Language",
			Options: defaultFirst(seed.Language, []Option{
				{Label: "TypeScript", Value: string(config.TypeScript)},
				{Label: "JavaScript", Value: string(config.JavaScript)},
			}),
			Default:  seed.Language,
			Required: true,
		},
		yesNo(IDTailwind, "Use Tailwind CSS?", seed.Tailwind),
		yesNo(IDTRPC, "Use tRPC?", seed.TRPC),
		{
			ID:    IDAuth,
			Type:  QuestionTypeSelect,
			Title: "Authentication",
			Options: defaultFirst(seed.Auth, []Option{
				{Label: "None", Value: string(config.AuthNone)},
				{Label: "NextAuth", Value: string(config.AuthNextAuth), Desc: "next-auth with JWT sessions, providers added by you"},
			}),
			Default:  seed.Auth,
			Required: true,
		},
		{
			ID:    IDORM,
			Type:  QuestionTypeSelect,
			Title: "ORM",
			Options: defaultFirst(seed.ORM, []Option{
				{Label: "None", Value: string(config.ORMNone)},
				{Label: "Prisma", Value: string(config.ORMPrisma)},
			}),
			Default:  seed.ORM,
			Required: true,
		},
		{
			ID:    IDDatabase,
			Type:  QuestionTypeSelect,
			Title: "Database",
			Options: defaultFirst(seed.Database, []Option{
				{Label: "PostgreSQL", Value: string(config.Postgres)},
				{Label: "MySQL", Value: string(config.MySQL)},
			}),
			Default:  seed.Database,
			Required: true,
			Condition: func(o *config.Options) bool {
				orm, err := config.ParseORM(o.ORM)
				return err == nil && orm != config.ORMNone
			},
		},
		{
			ID:    IDLinter,
			Type:  QuestionTypeSelect,
			Title: "Linter",
			Options: defaultFirst(seed.Linter, []Option{
				{Label: "ESLint", Value: string(config.ESLint)},
				{Label: "Biome", Value: string(config.Biome)},
			}),
			Default:  seed.Linter,
			Required: true,
		},
		yesNo(IDGit, "Initialize a git repository?", seed.Git),
		{
			ID:    IDPackageManager,
			Type:  QuestionTypeSelect,
			Title: "Package manager",
			Options: defaultFirst(seed.PackageManager, []Option{
				{Label: "npm", Value: string(config.NPM)},
				{Label: "yarn", Value: string(config.Yarn)},
				{Label: "pnpm", Value: string(config.PNPM)},
				{Label: "bun", Value: string(config.Bun)},
			}),
			Default:  seed.PackageManager,
			Required: true,
		},
	}
}

func yesNo(id, title string, def bool) Question {
	d := no
	if def {
		d = yes
	}
	return Question{
		ID:    id,
		Type:  QuestionTypeSelect,
		Title: title,
		Options: defaultFirst(d, []Option{
			{Label: "Yes", Value: yes},
			{Label: "No", Value: no},
		}),
		Default:  d,
		Required: true,
	}
}

// defaultFirst moves the option whose value is def to the front. huh v0.8.0
// scrolls the select viewport to the initial selection, which hides any
// options above it.
func defaultFirst(def string, opts []Option) []Option {
	i := slices.IndexFunc(opts, func(o Option) bool { return o.Value == def })
	if i <= 0 {
		return opts
	}
	out := make([]Option, 0, len(opts))
	out = append(out, opts[i])
	out = append(out, opts[:i]...)
	return append(out, opts[i+1:]...)
}

// Without drops the questions with the given IDs, e.g. those already
// answered on the command line.
func Without(questions []Question, ids ...string) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if slices.Contains(ids, q.ID) {
			continue
		}
		out = append(out, q)
	}
	return out
}
