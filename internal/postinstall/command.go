package postinstall

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/raph/internal/exec"
)

// command is one external invocation.
type command struct {
	name string
	args []string
	env  []string // Extra KEY=value pairs, not part of String
}

func (c command) String() string {
	return exec.CommandLine(c.name, c.args...)
}

// run executes c with a spinner, capturing stderr verbatim while still
// forwarding it to the executor's own streams.
func run(ctx context.Context, ex *exec.Executor, stage, message string, c command) error {
	var stderr bytes.Buffer

	err := exec.NewGenericCommand(capture(ex, &stderr), c.name).
		WithArgs(c.args...).
		WithEnv(c.env...).
		WithSpinner(message).
		Run(ctx)
	if err == nil {
		return nil
	}

	return &ProcessError{
		Stage:    stage,
		Command:  c.String(),
		ExitCode: exec.ExitCode(err),
		Stderr:   strings.TrimRight(stderr.String(), "\n"),
		Err:      err,
	}
}

// capture returns ex with stderr tee'd into buf.
func capture(ex *exec.Executor, buf *bytes.Buffer) *exec.Executor {
	return ex.WithOutput(ex.Stdout(), exec.NewTeeWriter(buf, ex.Stderr()))
}

// failureMessage describes a failed run of c. A missing binary is reported
// as such instead of suggesting a retry that cannot work.
func failureMessage(what string, c command, err error) string {
	if exec.IsNotFound(err) {
		return fmt.Sprintf("%s not found on PATH; install it, then run: %s", c.name, c)
	}
	return fmt.Sprintf("%s; retry with: %s", what, c)
}
