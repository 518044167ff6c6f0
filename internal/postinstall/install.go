package postinstall

import (
	"context"
	"fmt"

	"github.com/simonhull/firebird-suite/raph/internal/config"
	"github.com/simonhull/firebird-suite/raph/internal/exec"
)

// InstallStage installs the project's dependencies.
type InstallStage struct {
	PackageManager config.PackageManager
	Offline        bool
}

func (s InstallStage) Name() string { return "install" }

func (s InstallStage) Description() string {
	return fmt.Sprintf("Installing dependencies with %s", s.PackageManager)
}

// Command returns the install command. When offline it carries the
// package manager's offline modifier, if it has one.
func (s InstallStage) Command() command {
	c := command{name: string(s.PackageManager), args: []string{"install"}}
	if s.Offline {
		if flag := offlineFlag(s.PackageManager); flag != "" {
			c.args = append(c.args, flag)
		}
	}
	return c
}

func offlineFlag(pm config.PackageManager) string {
	switch pm {
	case config.NPM, config.Yarn, config.PNPM:
		return "--prefer-offline"
	}
	return ""
}

func (s InstallStage) Run(ctx context.Context, ex *exec.Executor) Result {
	c := s.Command()
	res := Result{Stage: s.Name(), Command: c.String()}

	if s.Offline {
		res.Status = StatusSkipped
		res.Message = "offline mode: run the install yourself when ready"
		return res
	}

	if err := run(ctx, ex, s.Name(), s.Description(), c); err != nil {
		res.Status = StatusFailed
		res.Err = err
		res.Message = failureMessage("dependency install failed", c, err)
		return res
	}

	res.Status = StatusOK
	res.Message = "dependencies installed"
	return res
}
