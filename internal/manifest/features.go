package manifest

import "github.com/simonhull/firebird-suite/raph/internal/config"

// Framework ranges. eslint-config-next tracks NextVersion.
const (
	NextVersion  = "^15.3.0"
	ReactVersion = "^19.0.0"
)

var (
	TypeScriptTooling = Feature{
		Name: "typescript",
		DevDependencies: map[string]string{
			"typescript":       "^5",
			"@types/react":     "^19.0.12",
			"@types/react-dom": "^19",
			"@types/node":      "^20.17.28",
		},
	}

	Tailwind = Feature{
		Name: "tailwind",
		DevDependencies: map[string]string{
			"tailwindcss":          "^4",
			"@tailwindcss/postcss": "^4",
			"autoprefixer":         "^10",
		},
	}

	TRPC = Feature{
		Name: "trpc",
		Dependencies: map[string]string{
			"@trpc/client":          "^11.0.0",
			"@trpc/server":          "^11.0.0",
			"@trpc/react-query":     "^11.0.0",
			"@trpc/next":            "^11.0.0",
			"@tanstack/react-query": "^5.69.0",
			"zod":                   "^3.24.2",
		},
	}

	NextAuth = Feature{
		Name: "next-auth",
		Dependencies: map[string]string{
			"next-auth": "^4.24.11",
		},
	}

	// PrismaAdapter only applies when auth and the ORM are both enabled.
	PrismaAdapter = Feature{
		Name: "next-auth-prisma-adapter",
		Dependencies: map[string]string{
			"@next-auth/prisma-adapter": "^1.0.7",
		},
	}

	Prisma = Feature{
		Name: "prisma",
		Dependencies: map[string]string{
			"@prisma/client": "^6.6.0",
		},
		DevDependencies: map[string]string{
			"prisma": "^6.6.0",
		},
	}

	ESLint = Feature{
		Name: "eslint",
		DevDependencies: map[string]string{
			"eslint":                   "^9.24.0",
			"eslint-config-next":       NextVersion,
			"@next/eslint-plugin-next": NextVersion,
			"eslint-plugin-react":      "^7.37.4",
			"globals":                  "^16.0.0",
		},
	}

	// ESLintTypeScript adds type-aware linting on top of ESLint.
	ESLintTypeScript = Feature{
		Name: "eslint-typescript",
		DevDependencies: map[string]string{
			"@typescript-eslint/parser":        "^8.29.1",
			"@typescript-eslint/eslint-plugin": "^8.29.1",
		},
	}

	Biome = Feature{
		Name: "biome",
		DevDependencies: map[string]string{
			"@biomejs/biome": "^1.9.4",
		},
	}
)

// FeaturesFor returns the features enabled by cfg. The order only affects
// iteration, never the merged result.
func FeaturesFor(cfg config.Configuration) []Feature {
	var features []Feature

	if cfg.IsTypeScript() {
		features = append(features, TypeScriptTooling)
	}
	if cfg.UseStyling {
		features = append(features, Tailwind)
	}
	if cfg.UseRPC {
		features = append(features, TRPC)
	}
	if cfg.HasAuth() {
		features = append(features, NextAuth)
		if cfg.HasORM() {
			features = append(features, PrismaAdapter)
		}
	}
	if cfg.HasORM() {
		features = append(features, Prisma)
	}

	switch cfg.Linter {
	case config.ESLint:
		features = append(features, ESLint)
		if cfg.IsTypeScript() {
			features = append(features, ESLintTypeScript)
		}
	case config.Biome:
		features = append(features, Biome)
	}

	return features
}
