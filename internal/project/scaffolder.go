// Package project wires the scaffolding pipeline together: resolve the
// file set, write it, run the post-write stages and report.
package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/simonhull/firebird-suite/raph/internal/config"
	"github.com/simonhull/firebird-suite/raph/internal/exec"
	"github.com/simonhull/firebird-suite/raph/internal/generator"
	"github.com/simonhull/firebird-suite/raph/internal/logger"
	"github.com/simonhull/firebird-suite/raph/internal/postinstall"
	"github.com/simonhull/firebird-suite/raph/internal/templates"
)

// Options configures a Scaffolder.
type Options struct {
	// WorkDir is the directory the project directory is created in.
	// Defaults to the current directory.
	WorkDir string

	// DryRun lists the files without writing them or running any stage.
	DryRun bool

	// Executor runs the post-write stages. Defaults to one writing to the
	// process streams.
	Executor *exec.Executor

	// Timeout bounds each post-write stage. Zero means no limit.
	Timeout time.Duration

	Logger logger.Logger

	// Progress receives one line per written file.
	Progress io.Writer

	// OnStage is called as each post-write stage finishes.
	OnStage func(postinstall.Result)

	// Cleanup removes a partially written project after a write failure.
	// Defaults to generator.RemoveAll.
	Cleanup func(root string) error
}

// Scaffolder creates new projects
type Scaffolder struct {
	opts Options
	log  logger.Logger
}

// NewScaffolder creates a new project scaffolder
func NewScaffolder(opts Options) *Scaffolder {
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	if opts.Executor == nil {
		opts.Executor = exec.NewExecutor(nil)
	}
	if opts.Progress == nil {
		opts.Progress = io.Discard
	}
	if opts.Cleanup == nil {
		opts.Cleanup = generator.RemoveAll
	}
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}
	return &Scaffolder{opts: opts, log: log}
}

// Scaffold creates the project described by cfg.
//
// Resolution and configuration errors are returned before anything touches
// the disk. A write failure removes the partially written project; the
// outcome of that cleanup is recorded on the returned Report and the write
// error is returned. Post-write stage failures never produce an error:
// they are reported per stage.
func (s *Scaffolder) Scaffold(ctx context.Context, cfg config.Configuration) (*Report, error) {
	log := s.log.WithFields(logger.F("project", cfg.ProjectName))

	specs, err := templates.Resolve(cfg)
	if err != nil {
		log.Error("resolution failed", logger.F("error", err))
		return nil, fmt.Errorf("resolving project files: %w", err)
	}
	log.Debug("resolved project files", logger.F("count", len(specs)))

	root := filepath.Join(s.opts.WorkDir, cfg.ProjectName)
	report := &Report{
		ProjectName:    cfg.ProjectName,
		Root:           root,
		Files:          templates.Paths(specs),
		DryRun:         s.opts.DryRun,
		ORM:            cfg.HasORM(),
		PackageManager: cfg.PackageManager,
	}

	err = generator.Materialize(ctx, root, specs, generator.MaterializeOptions{
		DryRun: s.opts.DryRun,
		Writer: s.opts.Progress,
	})
	if err != nil {
		if errors.Is(err, generator.ErrIO) && !s.opts.DryRun {
			report.RolledBack = true
			report.RollbackErr = s.opts.Cleanup(root)
			log.Error("materialization failed",
				logger.F("root", root),
				logger.F("error", err),
				logger.F("cleanup_error", report.RollbackErr))
		}
		return report, err
	}
	log.Info("project files written", logger.F("root", root), logger.F("dry_run", s.opts.DryRun))

	if s.opts.DryRun {
		return report, nil
	}

	invoker := postinstall.NewInvoker(s.opts.Executor,
		postinstall.WithTimeout(s.opts.Timeout),
		postinstall.WithObserver(func(r postinstall.Result) {
			fields := []logger.Field{logger.F("stage", r.Stage), logger.F("status", r.Status)}
			if pe, ok := postinstall.AsProcessError(r.Err); ok {
				fields = append(fields, logger.F("exit_code", pe.ExitCode), logger.F("stderr", pe.Stderr))
			}
			switch r.Status {
			case postinstall.StatusFailed, postinstall.StatusWarning:
				log.Warn("stage did not complete", fields...)
			default:
				log.Debug("stage finished", fields...)
			}
			if s.opts.OnStage != nil {
				s.opts.OnStage(r)
			}
		}),
	)
	report.Stages = invoker.Run(ctx, cfg, root)

	return report, nil
}
