package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/raph"
	"github.com/simonhull/firebird-suite/raph/internal/logger"
	"github.com/simonhull/firebird-suite/raph/internal/output"
)

// RootCmd creates and returns the root command for the raph CLI
func RootCmd() *cobra.Command {
	var verbose bool

	v := newViper()

	cmd := &cobra.Command{
		Use:   "raph",
		Short: "Scaffold Next.js projects with the stack you choose",
		Long: `Raph creates a ready-to-run Next.js App Router project.

Pick what you need and raph wires it together:
• TypeScript or JavaScript
• Tailwind CSS, tRPC, NextAuth and Prisma
• ESLint or Biome
• npm, yarn, pnpm or bun

Example:
  raph new my-app`,
		Version: raph.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetWriter(cmd.OutOrStdout())
			output.SetVerbose(verbose)

			level, err := logLevel(verbose, v.GetString("log_level"))
			if err != nil {
				return err
			}
			if level == logger.LevelSilent {
				logger.SetDefault(logger.NewSilentLogger())
			} else {
				logger.SetDefault(logger.NewLogger(level, cmd.ErrOrStderr()))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error or silent (env RAPH_LOG_LEVEL)")
	bindFlags(v, cmd.PersistentFlags())

	return cmd
}

// logLevel picks the logger level. --verbose always means debug.
func logLevel(verbose bool, configured string) (logger.Level, error) {
	if verbose {
		return logger.LevelDebug, nil
	}
	if configured == "" {
		return logger.LevelWarn, nil
	}
	level, err := logger.ParseLevel(configured)
	if err != nil {
		return 0, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

// newViper returns a viper instance reading RAPH_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("RAPH")
	v.AutomaticEnv()
	return v
}
