package cli

import (
	"fmt"
	"sort"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/twexact/minseps"
)

const debugLevel = charmlog.DebugLevel

func newMinsepsCmd() *cobra.Command {
	var (
		width     int
		sterility bool
	)

	cmd := &cobra.Command{
		Use:   "minseps FILE.gr",
		Short: "List minimal separators of size at most --width",
		Long: `List every minimal separator with at most --width vertices, one per line,
as 1-based vertex ids, ordered by size and then lexicographically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sterility") {
				sterility = configFromContext(cmd.Context()).SterilityPruning
			}
			logger := loggerFromContext(cmd.Context())

			g, err := readGraphFile(args[0])
			if err != nil {
				return err
			}
			opts := []minseps.Option{minseps.WithSterilityPruning(sterility)}
			if logger.GetLevel() <= debugLevel {
				opts = append(opts, minseps.WithLogger(logger))
			}
			prog := newProgress(logger)
			seps, err := minseps.Enumerate(g, width, opts...)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Found %d minimal separators", len(seps)))

			sort.Slice(seps, func(i, j int) bool { return seps[i].Compare(seps[j]) < 0 })
			out := cmd.OutOrStdout()
			for _, s := range seps {
				ids := make([]string, 0, s.Len())
				for v := s.Next(0); v >= 0; v = s.Next(v + 1) {
					ids = append(ids, fmt.Sprint(v+1))
				}
				fmt.Fprintln(out, strings.Join(ids, " "))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "k", 0, "largest separator size")
	cmd.Flags().BoolVar(&sterility, "sterility", false, "enable sterility pruning")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}
