// Package postinstall runs the external steps that follow file generation:
// dependency install, ORM client generation and git initialization. Each
// stage reports a Result; no stage failure stops the stages after it.
package postinstall

import (
	"context"
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/raph/internal/exec"
)

// Status classifies the outcome of a stage.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Result is what one stage reports back to the caller.
type Result struct {
	Stage   string
	Status  Status
	Command string // Literal command to run by hand to retry or finish the stage
	Message string
	Err     error // *ProcessError for process failures
}

// ProcessError carries the exit status and captured stderr of a failed
// external command.
type ProcessError struct {
	Stage    string
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s: %s exited with code %d", e.Stage, e.Command, e.ExitCode)
	if e.ExitCode < 0 && e.Err != nil {
		msg = fmt.Sprintf("%s: %s: %v", e.Stage, e.Command, e.Err)
	}
	return msg
}

func (e *ProcessError) Unwrap() error { return e.Err }

// AsProcessError returns the *ProcessError in err's chain, if any.
func AsProcessError(err error) (*ProcessError, bool) {
	var pe *ProcessError
	ok := errors.As(err, &pe)
	return pe, ok
}

// Stage is one post-write step.
type Stage interface {
	// Name is a short identifier such as "install"
	Name() string
	// Description is shown next to the spinner while the stage runs
	Description() string
	// Run performs the stage in the executor's working directory
	Run(ctx context.Context, ex *exec.Executor) Result
}
