package postinstall

import (
	"context"

	"github.com/simonhull/firebird-suite/raph/internal/exec"
)

// CommitMessage is the message of the first commit.
const CommitMessage = "Initial commit from Raph CLI"

// VCSStage initializes a git repository and records the first commit.
type VCSStage struct {
	Enabled bool
}

func (s VCSStage) Name() string { return "git" }

func (s VCSStage) Description() string { return "Initializing git repository" }

func (s VCSStage) commands() (initCmd, addCmd, commitCmd command) {
	return command{name: "git", args: []string{"init"}},
		command{name: "git", args: []string{"add", "."}},
		command{name: "git", args: []string{"commit", "-m", CommitMessage}}
}

// Run initializes the repository. A failed init fails the stage; a failed
// add or commit keeps the repository and downgrades to a warning.
func (s VCSStage) Run(ctx context.Context, ex *exec.Executor) Result {
	res := Result{Stage: s.Name()}
	if !s.Enabled {
		res.Status = StatusSkipped
		res.Message = "git initialization disabled"
		return res
	}

	initCmd, addCmd, commitCmd := s.commands()

	if err := run(ctx, ex, s.Name(), s.Description(), initCmd); err != nil {
		res.Status = StatusFailed
		res.Command = initCmd.String()
		res.Err = err
		res.Message = failureMessage("git init failed", initCmd, err)
		return res
	}

	for _, c := range []command{addCmd, commitCmd} {
		if err := run(ctx, ex, s.Name(), "Creating initial commit", c); err != nil {
			res.Status = StatusWarning
			res.Command = addCmd.String() + " && " + commitCmd.String()
			res.Err = err
			res.Message = "repository initialized but the initial commit failed (is git user.name/user.email set?)"
			return res
		}
	}

	res.Status = StatusOK
	res.Message = "git repository initialized with an initial commit"
	return res
}
