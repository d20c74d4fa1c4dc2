package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twexact/minseps"
	"github.com/katalvlaran/twexact/pace"
	"github.com/katalvlaran/twexact/pmc"
	"github.com/katalvlaran/twexact/solver"
	"github.com/katalvlaran/twexact/td"
)

type solveOpts struct {
	output     string
	svg        string
	validate   bool
	lowerBound int
	upperBound int
	pmcOnly    bool
	sterility  bool
}

// merge overlays flags the user set on top of the config file.
func (o *solveOpts) merge(cmd *cobra.Command, cfg Config) {
	fl := cmd.Flags()
	if !fl.Changed("svg") {
		o.svg = cfg.SVG
	}
	if !fl.Changed("validate") {
		o.validate = cfg.Validate
	}
	if !fl.Changed("lower-bound") {
		o.lowerBound = cfg.LowerBound
	}
	if !fl.Changed("upper-bound") {
		o.upperBound = cfg.UpperBound
	}
	if !fl.Changed("pmc-only") {
		o.pmcOnly = cfg.PMCOnly
	}
	if !fl.Changed("sterility") {
		o.sterility = cfg.SterilityPruning
	}
}

func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve FILE.gr",
		Short: "Compute treewidth and write an optimal decomposition",
		Long: `Compute the exact treewidth of a PACE .gr graph and write an optimal tree
decomposition in .td format to stdout or to --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.merge(cmd, configFromContext(cmd.Context()))
			return runSolve(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the .td here instead of stdout")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "also render the bag tree to this SVG file")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "check the decomposition before writing it")
	cmd.Flags().IntVar(&opts.lowerBound, "lower-bound", 0, "known lower bound on treewidth")
	cmd.Flags().IntVar(&opts.upperBound, "upper-bound", -1, "give up above this width (-1: none)")
	cmd.Flags().BoolVar(&opts.pmcOnly, "pmc-only", false, "accept only potential maximal cliques as leaf bags")
	cmd.Flags().BoolVar(&opts.sterility, "sterility", false, "enable sterility pruning in the separator enumerator")

	return cmd
}

func runSolve(cmd *cobra.Command, path string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, err := readGraphFile(path)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "file", path, "n", g.N(), "m", g.EdgeCount())

	prog := newProgress(logger)
	sopts := []solver.Option{
		solver.WithLowerBound(opts.lowerBound),
		solver.WithUpperBound(opts.upperBound),
		solver.WithPMCOnly(opts.pmcOnly),
		solver.WithSterilityPruning(opts.sterility),
	}
	if logger.GetLevel() <= debugLevel {
		sopts = append(sopts, solver.WithLogger(logger))
	}
	res, err := solver.Solve(ctx, g, sopts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %s: treewidth %d after %d widths", path, res.Treewidth, res.Tried))

	d := res.Decomposition
	if opts.validate {
		if err := d.Validate(g); err != nil {
			return fmt.Errorf("decomposition invalid: %w", err)
		}
		logger.Info("Decomposition valid", "bags", d.Len())
	}

	if err := writeOutput(cmd.OutOrStdout(), opts.output, func(w io.Writer) error {
		return pace.WriteDecomposition(w, d)
	}); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess(cmd.OutOrStdout(), "treewidth %d", res.Treewidth)
		printFile(cmd.OutOrStdout(), opts.output)
	}

	if opts.svg != "" {
		svg, err := d.RenderSVG(ctx, 1)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
			return err
		}
		if opts.output != "" {
			printFile(cmd.OutOrStdout(), opts.svg)
		}
	}

	return nil
}

func newDecideCmd() *cobra.Command {
	var (
		width   int
		output  string
		pmcOnly bool
	)

	cmd := &cobra.Command{
		Use:   "decide FILE.gr",
		Short: "Decide whether treewidth is at most --width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("pmc-only") {
				pmcOnly = cfg.PMCOnly
			}
			logger := loggerFromContext(cmd.Context())

			g, err := readGraphFile(args[0])
			if err != nil {
				return err
			}
			popts := []pmc.Option{
				pmc.WithPMCOnly(pmcOnly),
				pmc.WithSeparatorOptions(minseps.WithSterilityPruning(cfg.SterilityPruning)),
			}
			if logger.GetLevel() <= debugLevel {
				popts = append(popts, pmc.WithLogger(logger))
			}
			prog := newProgress(logger)
			d, err := pmc.Decide(g, width, popts...)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Decided width %d", width))
			if d == nil {
				printWarning(cmd.OutOrStdout(), "infeasible: treewidth exceeds %d", width)
				return nil
			}
			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return pace.WriteDecomposition(w, d)
			})
		},
	}

	cmd.Flags().IntVarP(&width, "width", "k", 0, "width bound k")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the .td here instead of stdout")
	cmd.Flags().BoolVar(&pmcOnly, "pmc-only", false, "accept only potential maximal cliques as leaf bags")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE.gr FILE.td",
		Short: "Check a tree decomposition against its graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraphFile(args[0])
			if err != nil {
				return err
			}
			d, err := readDecompositionFile(args[1])
			if err != nil {
				return err
			}
			if d.N != g.N() {
				return fmt.Errorf("decomposition is for %d vertices, graph has %d: %w", d.N, g.N(), td.ErrBagOutOfRange)
			}
			if err := d.Validate(g); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "valid tree decomposition")
			printKeyValue(cmd.OutOrStdout(), "width", d.Width)
			printKeyValue(cmd.OutOrStdout(), "bags", d.Len())
			return nil
		},
	}
}
