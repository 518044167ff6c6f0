package postinstall

import (
	"context"
	"time"

	"github.com/simonhull/firebird-suite/raph/internal/config"
	"github.com/simonhull/firebird-suite/raph/internal/exec"
)

// Invoker runs the post-write stages for a project, one after another.
type Invoker struct {
	executor *exec.Executor
	timeout  time.Duration
	observe  func(Result)
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithTimeout bounds each stage by d. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(i *Invoker) { i.timeout = d }
}

// WithObserver calls fn after every stage, e.g. to log or print progress.
func WithObserver(fn func(Result)) Option {
	return func(i *Invoker) { i.observe = fn }
}

// NewInvoker returns an Invoker that runs commands through ex.
func NewInvoker(ex *exec.Executor, opts ...Option) *Invoker {
	i := &Invoker{executor: ex}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Stages returns the stages for cfg in execution order.
func Stages(cfg config.Configuration) []Stage {
	return []Stage{
		InstallStage{PackageManager: cfg.PackageManager, Offline: cfg.Offline},
		GenerateStage{PackageManager: cfg.PackageManager, ORM: cfg.ORM, Offline: cfg.Offline},
		VCSStage{Enabled: cfg.InitVCS},
	}
}

// Run executes every stage for cfg in root and returns one Result per
// stage. A failing stage never prevents the next one from running.
func (i *Invoker) Run(ctx context.Context, cfg config.Configuration, root string) []Result {
	ex := i.executor.WithDir(root)

	stages := Stages(cfg)
	results := make([]Result, 0, len(stages))
	for _, stage := range stages {
		res := i.runStage(ctx, ex, stage)
		if i.observe != nil {
			i.observe(res)
		}
		results = append(results, res)
	}
	return results
}

func (i *Invoker) runStage(ctx context.Context, ex *exec.Executor, stage Stage) Result {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	return stage.Run(ctx, ex)
}

// Failed reports whether any result is a failure or warning.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFailed || r.Status == StatusWarning {
			return true
		}
	}
	return false
}
