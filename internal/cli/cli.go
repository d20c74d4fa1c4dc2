// Package cli implements the twexact command-line interface.
//
// # Commands
//
//   - solve: compute the treewidth of a PACE .gr graph and write a .td file
//   - decide: decide whether a graph has treewidth at most --width
//   - minseps: list the minimal separators of size at most --width
//   - validate: check a .td decomposition against its .gr graph
//   - gen: write a .gr instance from one of the builder families
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on the engines' progress lines. Loggers are passed through
// context.Context.
//
// # Configuration
//
// --config FILE.toml supplies defaults (see Config); flags given on the
// command line win.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version, usually
// from values injected with -ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the twexact CLI with ctx and the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "twexact",
		Short:         "twexact computes exact treewidth and tree decompositions",
		Long:          `twexact decides treewidth with a dynamic program over minimal separators and potential maximal cliques, and reads and writes the PACE .gr/.td formats.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			level := charmlog.InfoLevel
			if cfg.Verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = withLogger(ctx, newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("twexact %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with default settings")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newDecideCmd())
	root.AddCommand(newMinsepsCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newGenCmd())

	return root
}
