package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrDirectoryExists is returned when the project root is already present.
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrIO wraps any directory or file write failure during materialization.
	ErrIO = errors.New("write failed")
)

// FileSpec is one file to materialize. Path is slash-separated and relative
// to the project root.
type FileSpec struct {
	Path    string
	Content string
}

// MaterializeOptions configures Materialize.
type MaterializeOptions struct {
	DryRun bool
	Writer io.Writer // Per-file progress output (defaults to io.Discard)
}

// Materialize writes specs under root. root must not exist: if it does,
// ErrDirectoryExists is returned and nothing is written. Failures after
// root could have been created wrap ErrIO; partial output is left in place
// for the caller to clean up.
func Materialize(ctx context.Context, root string, specs []FileSpec, opts MaterializeOptions) error {
	if opts.Writer == nil {
		opts.Writer = io.Discard
	}

	if _, err := os.Lstat(root); err == nil {
		return fmt.Errorf("%w: %s", ErrDirectoryExists, root)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", root, err)
	}

	ops, err := Plan(root, specs)
	if err != nil {
		return err
	}

	if !opts.DryRun {
		if err := os.Mkdir(root, 0755); err != nil {
			if os.IsExist(err) {
				return fmt.Errorf("%w: %s", ErrDirectoryExists, root)
			}
			return fmt.Errorf("%w: creating %s: %v", ErrIO, root, err)
		}
	}

	if err := Execute(ctx, ops, ExecuteOptions{DryRun: opts.DryRun, Writer: opts.Writer}); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Plan converts specs into write operations under root. It rejects
// absolute paths, paths escaping root and duplicate paths.
func Plan(root string, specs []FileSpec) ([]Operation, error) {
	seen := make(map[string]bool, len(specs))
	ops := make([]Operation, 0, len(specs))

	for _, spec := range specs {
		rel := path.Clean(spec.Path)
		if rel == "." || path.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, "../") {
			return nil, fmt.Errorf("invalid file path %q", spec.Path)
		}
		if seen[rel] {
			return nil, fmt.Errorf("duplicate file path %q", rel)
		}
		seen[rel] = true

		ops = append(ops, &WriteFileOp{
			Path:    filepath.Join(root, filepath.FromSlash(rel)),
			Content: []byte(spec.Content),
			Mode:    0644,
			Label:   rel,
		})
	}

	return ops, nil
}

// RemoveAll removes a partially materialized root. It is best effort; the
// returned error is for reporting only.
func RemoveAll(root string) error {
	if err := os.RemoveAll(root); err != nil {
		return fmt.Errorf("removing %s: %w", root, err)
	}
	return nil
}
