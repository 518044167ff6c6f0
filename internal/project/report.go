package project

import (
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/raph/internal/config"
	"github.com/simonhull/firebird-suite/raph/internal/postinstall"
)

// Report summarizes one scaffolding run.
type Report struct {
	ProjectName string
	Root        string
	Files       []string
	DryRun      bool
	Stages      []postinstall.Result

	// RolledBack is set when a write failure triggered cleanup of Root.
	// RollbackErr holds the cleanup failure, if any.
	RolledBack  bool
	RollbackErr error

	ORM            bool
	PackageManager config.PackageManager
}

// Stage returns the result for the named stage.
func (r *Report) Stage(name string) (postinstall.Result, bool) {
	for _, res := range r.Stages {
		if res.Stage == name {
			return res, true
		}
	}
	return postinstall.Result{}, false
}

// NextSteps returns the commands the user should run next, in order.
func (r *Report) NextSteps() []string {
	steps := []string{"cd " + r.ProjectName}

	if res, ok := r.Stage("install"); ok && res.Status != postinstall.StatusOK {
		steps = append(steps, res.Command)
	}
	if r.ORM {
		if res, ok := r.Stage("generate"); ok && res.Status != postinstall.StatusOK && res.Command != "" {
			steps = append(steps, res.Command)
		}
		steps = append(steps, postinstall.PrismaCommand(r.PackageManager, "db", "push"))
	}
	if res, ok := r.Stage("git"); ok && res.Status == postinstall.StatusWarning {
		steps = append(steps, res.Command)
	}

	steps = append(steps, string(r.PackageManager)+" run dev")
	return steps
}

// Markdown renders the report for output.Summary.
func (r *Report) Markdown() string {
	var b strings.Builder

	if r.DryRun {
		fmt.Fprintf(&b, "# %s (dry run)\n\n", r.ProjectName)
		fmt.Fprintf(&b, "%d files would be written to `%s`.\n", len(r.Files), r.Root)
		return b.String()
	}

	fmt.Fprintf(&b, "# %s is ready\n\n", r.ProjectName)
	fmt.Fprintf(&b, "%d files written to `%s`.\n", len(r.Files), r.Root)

	if len(r.Stages) > 0 {
		b.WriteString("\n| Stage | Status | Details |\n|---|---|---|\n")
		for _, s := range r.Stages {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", s.Stage, s.Status, escapeCell(s.Message))
		}
	}

	if r.ORM {
		b.WriteString("\nSet `DATABASE_URL` in `.env` before pushing the schema.\n")
	}

	b.WriteString("\n## Next steps\n\n```bash\n")
	for _, step := range r.NextSteps() {
		b.WriteString(step + "\n")
	}
	b.WriteString("```\n")
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
