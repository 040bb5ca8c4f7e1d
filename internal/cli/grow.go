package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/sprout/pkg/io"
	"github.com/matzehuels/sprout/pkg/pipeline"
)

type growOpts struct {
	generations int
	seed        uint64
	refresh     bool
	output      string
}

// growCommand creates the grow command, which applies one random match per
// generation and prints the lineage.
func (c *CLI) growCommand() *cobra.Command {
	opts := growOpts{generations: 5, seed: pipeline.DefaultSeed}

	cmd := &cobra.Command{
		Use:   "grow GENOME",
		Short: "Grow a genome for several generations",
		Example: `  sprout grow "1-2-3" -n 8
  sprout grow seed.json -n 20 --seed 3 -o grown.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGenome(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(loggerFromContext(cmd.Context()))
			lineage, hit, err := runner.GrowWithCacheInfo(cmd.Context(), g, pipeline.Options{
				Generations: opts.generations,
				Seed:        opts.seed,
				Refresh:     opts.refresh,
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Grew %d generations", len(lineage)-1))

			for i, gen := range lineage {
				fmt.Fprintf(c.out, "%3d  %s\n", i, pkgio.FormatExpr(gen))
			}
			last := lineage[len(lineage)-1]
			printStats(pipeline.Stats{NodeCount: last.NodeCount(), EdgeCount: last.EdgeCount()}, hit)
			if len(lineage)-1 < opts.generations {
				printWarning("Growth stopped after %d generations: no match left", len(lineage)-1)
			}

			if opts.output != "" {
				return c.writeGenome(last, opts.output)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.generations, "generations", "n", opts.generations, "number of generations")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached lineages")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the last genome as JSON")

	return cmd
}
