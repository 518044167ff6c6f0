package generator_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/raph/internal/generator"
)

func sampleSpecs() []generator.FileSpec {
	return []generator.FileSpec{
		{Path: "package.json", Content: "{}\n"},
		{Path: "src/app/page.tsx", Content: "export default function Home() {}\n"},
		{Path: "src/app/layout.tsx", Content: "layout\n"},
		{Path: "src/app/api/trpc/[trpc]/route.ts", Content: "route\n"},
		{Path: "src/app/globals.css", Content: ""},
	}
}

func TestMaterialize_WritesAllFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")

	err := generator.Materialize(context.Background(), root, sampleSpecs(), generator.MaterializeOptions{})
	require.NoError(t, err)

	for _, spec := range sampleSpecs() {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(spec.Path)))
		require.NoError(t, err, spec.Path)
		assert.Equal(t, spec.Content, string(data), spec.Path)
	}
}

func TestMaterialize_ExistingDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.Mkdir(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "keep.txt"), []byte("mine"), 0644))

	err := generator.Materialize(context.Background(), root, sampleSpecs(), generator.MaterializeOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrDirectoryExists)
	assert.Contains(t, err.Error(), "demo")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep.txt", entries[0].Name())

	data, err := os.ReadFile(filepath.Join(root, "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
}

func TestMaterialize_ExistingFileAtRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	err := generator.Materialize(context.Background(), root, sampleSpecs(), generator.MaterializeOptions{})
	assert.ErrorIs(t, err, generator.ErrDirectoryExists)
}

func TestMaterialize_DryRun(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")

	var buf bytes.Buffer
	err := generator.Materialize(context.Background(), root, sampleSpecs(), generator.MaterializeOptions{
		DryRun: true,
		Writer: &buf,
	})
	require.NoError(t, err)

	_, err = os.Stat(root)
	assert.True(t, os.IsNotExist(err), "dry run must not create the root")
	assert.Contains(t, buf.String(), "[DRY RUN] Create src/app/page.tsx")
}

func TestMaterialize_WriteFailure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")

	// "src" is a file, so the directory for "src/page.tsx" cannot be created.
	specs := []generator.FileSpec{
		{Path: "src", Content: "not a directory"},
		{Path: "src/page.tsx", Content: "page"},
	}

	err := generator.Materialize(context.Background(), root, specs, generator.MaterializeOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrIO)
	assert.NotErrorIs(t, err, generator.ErrDirectoryExists)
}

func TestMaterialize_Cancelled(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := generator.Materialize(ctx, root, sampleSpecs(), generator.MaterializeOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlan_RejectsBadPaths(t *testing.T) {
	tests := []struct {
		name  string
		specs []generator.FileSpec
	}{
		{"duplicate", []generator.FileSpec{{Path: "a.txt"}, {Path: "./a.txt"}}},
		{"escape", []generator.FileSpec{{Path: "../a.txt"}}},
		{"absolute", []generator.FileSpec{{Path: "/etc/passwd"}}},
		{"empty", []generator.FileSpec{{Path: ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generator.Plan("root", tt.specs)
			assert.Error(t, err)
		})
	}
}

func TestRemoveAll(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, generator.Materialize(context.Background(), root, sampleSpecs(), generator.MaterializeOptions{}))

	require.NoError(t, generator.RemoveAll(root))
	_, err := os.Stat(root)
	assert.True(t, os.IsNotExist(err))
}
