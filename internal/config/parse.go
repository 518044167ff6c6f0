package config

import (
	"fmt"
	"strings"
)

// normalize lowercases and trims an answer. Prompts historically offered
// labels like "Typescript" or "Postgresql"; all of them reduce to one key.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func invalid(field, value string, allowed any) error {
	return fmt.Errorf("%w: unsupported %s %q (supported: %v)", ErrInvalidConfiguration, field, value, allowed)
}

// ParseLanguage accepts "typescript", "ts", "javascript" or "js".
func ParseLanguage(s string) (Language, error) {
	switch normalize(s) {
	case "typescript", "ts":
		return TypeScript, nil
	case "javascript", "js":
		return JavaScript, nil
	}
	return "", invalid("language", s, Languages)
}

// ParseAuthProvider accepts "none" (or empty) and "nextauth".
func ParseAuthProvider(s string) (AuthProvider, error) {
	switch normalize(s) {
	case "", "none", "nenhum":
		return AuthNone, nil
	case "nextauth", "next-auth":
		return AuthNextAuth, nil
	}
	return "", invalid("auth provider", s, AuthProviders)
}

// ParseORM accepts "none" (or empty) and "prisma".
func ParseORM(s string) (ORM, error) {
	switch normalize(s) {
	case "", "none", "nenhum":
		return ORMNone, nil
	case "prisma":
		return ORMPrisma, nil
	}
	return "", invalid("orm", s, ORMs)
}

// ParseDatabase accepts "postgres"/"postgresql" and "mysql".
func ParseDatabase(s string) (Database, error) {
	switch normalize(s) {
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	}
	return "", invalid("database", s, Databases)
}

// ParseLinter accepts "eslint" and "biome".
func ParseLinter(s string) (Linter, error) {
	switch normalize(s) {
	case "eslint":
		return ESLint, nil
	case "biome":
		return Biome, nil
	}
	return "", invalid("linter", s, Linters)
}

// ParsePackageManager accepts npm, yarn, pnpm and bun.
func ParsePackageManager(s string) (PackageManager, error) {
	switch pm := PackageManager(normalize(s)); pm {
	case NPM, Yarn, PNPM, Bun:
		return pm, nil
	}
	return "", invalid("package manager", s, PackageManagers)
}

func (l Language) String() string       { return string(l) }
func (a AuthProvider) String() string   { return string(a) }
func (o ORM) String() string            { return string(o) }
func (d Database) String() string       { return string(d) }
func (l Linter) String() string         { return string(l) }
func (p PackageManager) String() string { return string(p) }
