package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/raph/internal/config"
	"github.com/simonhull/firebird-suite/raph/internal/exec"
	"github.com/simonhull/firebird-suite/raph/internal/generator"
	"github.com/simonhull/firebird-suite/raph/internal/logger"
	"github.com/simonhull/firebird-suite/raph/internal/output"
	"github.com/simonhull/firebird-suite/raph/internal/postinstall"
	"github.com/simonhull/firebird-suite/raph/internal/project"
	"github.com/simonhull/firebird-suite/raph/internal/wizard"
)

// Replaced in tests.
var (
	// commandFunc builds the post-write stage processes; nil means exec.Command.
	commandFunc exec.CommandFunc
	// removeProject undoes a partially written project.
	removeProject = generator.RemoveAll
)

// NewCmd creates and returns the 'new' command for scaffolding projects
func NewCmd() *cobra.Command {
	v := newViper()
	defaults := config.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new Next.js project",
		Long: `Creates a new Next.js project in ./<project-name> with:
• package.json with the selected dependencies
• App Router layout and page
• Optional Tailwind CSS, tRPC, NextAuth and Prisma wiring
• ESLint or Biome configuration

Then installs dependencies, generates the Prisma client and creates the
first git commit.

Answers come from flags, RAPH_* environment variables and --preset, in
that order. Anything not given on the command line is asked
interactively unless --yes is set or stdin is not a terminal.

Example:
  raph new my-app
  raph new my-app --yes --orm prisma --database mysql --package-manager pnpm`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := runNew(cmd, v, args); err != nil {
				output.Error(err.Error())
				cmd.SilenceErrors = true
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String("language", defaults.Language, "typescript or javascript")
	f.Bool("tailwind", defaults.Tailwind, "Add Tailwind CSS")
	f.Bool("trpc", defaults.TRPC, "Add tRPC")
	f.String("auth", defaults.Auth, "Authentication: none or nextauth")
	f.String("orm", defaults.ORM, "ORM: none or prisma")
	f.String("database", defaults.Database, "Database when an ORM is used: postgresql or mysql")
	f.String("linter", defaults.Linter, "eslint or biome")
	f.Bool("git", defaults.Git, "Initialize a git repository with an initial commit")
	f.String("package-manager", defaults.PackageManager, "npm, yarn, pnpm or bun")
	f.Bool("offline", false, "Write files only; skip dependency install and client generation")
	f.BoolP("yes", "y", false, "Accept defaults and skip all prompts")
	f.String("preset", "", "Read answers from a YAML preset file")
	f.String("save-preset", "", "Write the final answers to a YAML preset file")
	f.Bool("dry-run", false, "List the files that would be created without writing anything")
	f.Duration("timeout", 10*time.Minute, "Time limit for each install, generate or git step (0 for none)")
	bindFlags(v, f)

	return cmd
}

func runNew(cmd *cobra.Command, v *viper.Viper, args []string) error {
	opts, err := loadOptions(v, args)
	if err != nil {
		return err
	}

	headless := wizard.NewHeadless()
	if v.GetBool("yes") {
		headless.Force(true)
	}
	if !headless.IsHeadless() {
		answered := changedKeys(cmd.Flags())
		if len(args) == 1 {
			answered = append(answered, wizard.IDProjectName)
		}
		questions := wizard.Without(wizard.DefaultQuestions(opts), answered...)
		if len(questions) > 0 {
			opts, err = wizard.Run(questions, opts)
			if err != nil {
				return err
			}
		}
	}

	cfg, err := config.New(opts)
	if err != nil {
		return err
	}

	if path := v.GetString("save_preset"); path != "" {
		if err := config.SavePreset(path, cfg); err != nil {
			return err
		}
		output.Info(fmt.Sprintf("Saved preset to %s", path))
	}

	return scaffold(cmd.Context(), cmd.ErrOrStderr(), cfg, v.GetBool("dry_run"), v.GetDuration("timeout"))
}

// loadOptions resolves the raw answers from flags, environment and preset.
// A positional project name wins over every other source.
func loadOptions(v *viper.Viper, args []string) (config.Options, error) {
	if path := v.GetString("preset"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return config.Options{}, fmt.Errorf("reading preset %s: %w", path, err)
		}
	}

	opts := config.Options{
		ProjectName:    v.GetString("project_name"),
		Language:       v.GetString("language"),
		Tailwind:       v.GetBool("tailwind"),
		TRPC:           v.GetBool("trpc"),
		Auth:           v.GetString("auth"),
		ORM:            v.GetString("orm"),
		Database:       v.GetString("database"),
		Linter:         v.GetString("linter"),
		Git:            v.GetBool("git"),
		PackageManager: v.GetString("package_manager"),
		Offline:        v.GetBool("offline"),
	}
	if len(args) == 1 {
		opts.ProjectName = args[0]
	}
	return opts, nil
}

func scaffold(ctx context.Context, progress io.Writer, cfg config.Configuration, dryRun bool, timeout time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	verbose := output.IsVerbose()
	output.Verbose(fmt.Sprintf("Creating new project: %s", cfg.ProjectName))

	var childOut io.Writer = io.Discard
	if verbose {
		pw := exec.NewPrefixWriter(progress, "  │ ").WithColor("240")
		defer pw.Flush()
		childOut = pw
	}

	ex := exec.NewExecutor(&exec.Options{
		Stdout:   childOut,
		Stderr:   childOut,
		Progress: progress,
		Spinner:  !verbose && isTerminal(progress),
		Command:  commandFunc,
	})

	fileLog := io.Discard
	if dryRun || verbose {
		fileLog = output.Writer()
	}

	scaffolder := project.NewScaffolder(project.Options{
		DryRun:   dryRun,
		Executor: ex,
		Timeout:  timeout,
		Logger:   logger.Default(),
		Progress: fileLog,
		OnStage:  printStage,
		Cleanup:  removeProject,
	})

	report, err := scaffolder.Scaffold(ctx, cfg)
	if err != nil {
		if errors.Is(err, generator.ErrDirectoryExists) {
			return fmt.Errorf("%w; choose another name or remove it first", err)
		}
		if report != nil && report.RolledBack {
			if report.RollbackErr != nil {
				output.Warn(fmt.Sprintf("Could not remove %s: %v", report.Root, report.RollbackErr))
			} else {
				output.Warn(fmt.Sprintf("Removed partially created project at %s", report.Root))
			}
		}
		return err
	}

	printReport(report)
	return nil
}

// printReport closes a successful run. A terminal gets the rendered
// markdown summary; anything else gets plain lines.
func printReport(report *project.Report) {
	if !report.DryRun {
		if postinstall.Failed(report.Stages) {
			output.Warn(fmt.Sprintf("Created project: %s, with steps left to finish", report.ProjectName))
		} else {
			output.Success(fmt.Sprintf("Created project: %s", report.ProjectName))
		}
	}

	if output.IsTerminal() {
		output.Summary(report.Markdown())
		return
	}

	if report.DryRun {
		output.Info(fmt.Sprintf("Dry run: %d files would be written to %s", len(report.Files), report.Root))
		return
	}
	if report.ORM {
		output.Info("Set DATABASE_URL in .env before pushing the schema")
	}
	output.Info("Next steps:")
	for _, step := range report.NextSteps() {
		output.Step(step)
	}
}

func printStage(r postinstall.Result) {
	switch r.Status {
	case postinstall.StatusOK:
		output.Success(r.Message)
	case postinstall.StatusSkipped:
		output.Verbose(fmt.Sprintf("%s skipped: %s", r.Stage, r.Message))
	default:
		output.Warn(r.Message)
		if r.Err != nil {
			output.Verbose(r.Err.Error())
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
