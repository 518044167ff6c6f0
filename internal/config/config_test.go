package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validOptions() Options {
	opts := DefaultOptions()
	opts.ProjectName = "demo"
	return opts
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New(validOptions())
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ProjectName)
	assert.Equal(t, TypeScript, cfg.Language)
	assert.True(t, cfg.UseStyling)
	assert.True(t, cfg.UseRPC)
	assert.Equal(t, AuthNone, cfg.Auth)
	assert.Equal(t, ORMNone, cfg.ORM)
	assert.Equal(t, ESLint, cfg.Linter)
	assert.Equal(t, NPM, cfg.PackageManager)
	assert.True(t, cfg.InitVCS)
	assert.False(t, cfg.Offline)
}

func TestNew_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"empty name", func(o *Options) { o.ProjectName = "  " }},
		{"dot name", func(o *Options) { o.ProjectName = "." }},
		{"nested name", func(o *Options) { o.ProjectName = "a/b" }},
		{"language", func(o *Options) { o.Language = "rust" }},
		{"auth", func(o *Options) { o.Auth = "clerk" }},
		{"orm", func(o *Options) { o.ORM = "drizzle" }},
		{"linter", func(o *Options) { o.Linter = "prettier" }},
		{"package manager", func(o *Options) { o.PackageManager = "deno" }},
		{"database with orm", func(o *Options) { o.ORM = "prisma"; o.Database = "sqlite" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)

			_, err := New(opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"simple", "my-app", ""},
		{"digits and dots", "app2.web", ""},
		{"tilde and underscore", "a~b_c", ""},
		{"max length", strings.Repeat("a", 214), ""},
		{"empty", "", "required"},
		{"dot", ".", "not a directory name"},
		{"dot dot", "..", "not a directory name"},
		{"slash", "a/b", "path separators"},
		{"backslash", `a\b`, "path separators"},
		{"too long", strings.Repeat("a", 215), "longer than 214"},
		{"reserved", "node_modules", "reserved"},
		{"uppercase", "MyApp", "valid npm package name"},
		{"space", "my app", "valid npm package name"},
		{"leading dot", ".app", "valid npm package name"},
		{"leading underscore", "_app", "valid npm package name"},
		{"jsx braces", "a{b}", "valid npm package name"},
		{"angle bracket", "x<y", "valid npm package name"},
		{"markdown", "[app](x)", "valid npm package name"},
		{"quote", `a"b`, "valid npm package name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_RejectsNameBeforeOtherFields(t *testing.T) {
	opts := validOptions()
	opts.ProjectName = "My App"

	_, err := New(opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), `"My App"`)
}

func TestNew_DatabaseIgnoredWithoutORM(t *testing.T) {
	opts := validOptions()
	opts.ORM = "none"
	opts.Database = "not-a-database"

	cfg, err := New(opts)
	require.NoError(t, err)

	_, ok := cfg.DatabaseFor()
	assert.False(t, ok)
}

func TestNew_AcceptsPromptLabels(t *testing.T) {
	opts := validOptions()
	opts.Language = "Javascript"
	opts.ORM = "Prisma"
	opts.Database = "Mysql"
	opts.Auth = "NextAuth"
	opts.Linter = "Biome"
	opts.PackageManager = "PNPM"

	cfg, err := New(opts)
	require.NoError(t, err)

	assert.Equal(t, JavaScript, cfg.Language)
	assert.Equal(t, AuthNextAuth, cfg.Auth)
	assert.Equal(t, Biome, cfg.Linter)
	assert.Equal(t, PNPM, cfg.PackageManager)

	db, ok := cfg.DatabaseFor()
	assert.True(t, ok)
	assert.Equal(t, MySQL, db)
}

func TestExtensions(t *testing.T) {
	ts, err := New(validOptions())
	require.NoError(t, err)
	assert.Equal(t, "ts", ts.ScriptExt())
	assert.Equal(t, "tsx", ts.ComponentExt())

	opts := validOptions()
	opts.Language = "js"
	js, err := New(opts)
	require.NoError(t, err)
	assert.Equal(t, "js", js.ScriptExt())
	assert.Equal(t, "jsx", js.ComponentExt())
}

func TestSavePreset(t *testing.T) {
	opts := validOptions()
	opts.ORM = "prisma"
	opts.Database = "mysql"
	opts.Offline = true
	cfg, err := New(opts)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "preset.yml")
	require.NoError(t, SavePreset(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "project_name")
	assert.NotContains(t, string(data), "offline")

	var loaded Options
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, "prisma", loaded.ORM)
	assert.Equal(t, "mysql", loaded.Database)
	assert.Equal(t, "typescript", loaded.Language)
	assert.True(t, loaded.Tailwind)
}
