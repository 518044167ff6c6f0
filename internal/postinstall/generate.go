package postinstall

import (
	"context"

	"github.com/simonhull/firebird-suite/raph/internal/config"
	"github.com/simonhull/firebird-suite/raph/internal/exec"
)

// GenerateStage generates the Prisma client.
type GenerateStage struct {
	PackageManager config.PackageManager
	ORM            config.ORM
	Offline        bool
}

func (s GenerateStage) Name() string { return "generate" }

func (s GenerateStage) Description() string { return "Generating Prisma client" }

// Command returns the client generation command, run through the package
// manager's script runner with Prisma's update notice turned off.
func (s GenerateStage) Command() command {
	c := prismaCommand(s.PackageManager, "generate")
	c.env = []string{"PRISMA_HIDE_UPDATE_MESSAGE=true"}
	return c
}

func prismaCommand(pm config.PackageManager, args ...string) command {
	var c command
	switch pm {
	case config.Yarn:
		c = command{name: "yarn", args: []string{"prisma"}}
	case config.PNPM:
		c = command{name: "pnpm", args: []string{"exec", "prisma"}}
	case config.Bun:
		c = command{name: "bunx", args: []string{"prisma"}}
	default:
		c = command{name: "npx", args: []string{"prisma"}}
	}
	c.args = append(c.args, args...)
	return c
}

// PrismaCommand returns the command line that runs the Prisma CLI with args
// through pm, e.g. "pnpm exec prisma db push".
func PrismaCommand(pm config.PackageManager, args ...string) string {
	return prismaCommand(pm, args...).String()
}

func (s GenerateStage) Run(ctx context.Context, ex *exec.Executor) Result {
	c := s.Command()
	res := Result{Stage: s.Name(), Command: c.String()}

	switch {
	case s.ORM == config.ORMNone:
		res.Status = StatusSkipped
		res.Command = ""
		res.Message = "no ORM selected"
		return res
	case s.Offline:
		res.Status = StatusSkipped
		res.Message = "offline mode: generate the client after installing"
		return res
	}

	if err := run(ctx, ex, s.Name(), s.Description(), c); err != nil {
		res.Status = StatusFailed
		res.Err = err
		res.Message = failureMessage("client generation failed", c, err)
		return res
	}

	res.Status = StatusOK
	res.Message = "Prisma client generated"
	return res
}
