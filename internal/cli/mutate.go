package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sprout/pkg/genome"
	"github.com/matzehuels/sprout/pkg/genome/rewrite"
	pkgio "github.com/matzehuels/sprout/pkg/io"
	"github.com/matzehuels/sprout/pkg/pipeline"
)

type mutateOpts struct {
	one    bool
	seed   uint64
	output string
}

// mutateCommand creates the mutate command. Without --one it lists every
// descendant in match order; with --one it applies a single random match.
func (c *CLI) mutateCommand() *cobra.Command {
	opts := mutateOpts{seed: pipeline.DefaultSeed}

	cmd := &cobra.Command{
		Use:   "mutate GENOME",
		Short: "Apply the production rule once",
		Long: `Apply the production rule x(y,z) to a genome.

Every node x with two neighbors y < z is a match. The rule keeps the edge
x-z, drops x-y, and adds a fresh node w joined to x, y and z. By default all
descendants are listed, one per match; --one picks a single match at random.`,
		Example: `  sprout mutate "1-2, 1-3"
  sprout mutate "1-2-3-4" --one --seed 7 -o child.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGenome(args[0])
			if err != nil {
				return err
			}
			if opts.one {
				return c.runMutateOne(g, opts)
			}
			return c.runMutateAll(cmd, g, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.one, "one", false, "apply one random match instead of listing all")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed for --one")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the (first) descendant as a JSON genome")

	return cmd
}

func (c *CLI) runMutateAll(cmd *cobra.Command, g *genome.Graph, opts mutateOpts) error {
	runner, err := c.newRunner(cmd.Context())
	if err != nil {
		return err
	}
	defer runner.Close()

	ds := runner.Descendants(cmd.Context(), g)
	if len(ds) == 0 {
		printWarning("No match: every node has fewer than two neighbors")
		return nil
	}

	printInfo("%d descendants of %s", len(ds), StyleHighlight.Render(pkgio.FormatExpr(g)))
	for i, d := range ds {
		fmt.Fprintf(c.out, "%3d  %-10s %s\n", i+1, d.Match, pkgio.FormatExpr(d.Graph))
	}

	if opts.output != "" {
		return c.writeGenome(ds[0].Graph, opts.output)
	}
	return nil
}

func (c *CLI) runMutateOne(g *genome.Graph, opts mutateOpts) error {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0xdeadbeef))
	d, ok := rewrite.Step(g, rng)
	if !ok {
		printWarning("No match: genome is unchanged")
		fmt.Fprintln(c.out, pkgio.FormatExpr(g))
		return nil
	}

	printSuccess("Applied %s, fresh node %d", d.Match, d.Fresh)
	fmt.Fprintln(c.out, pkgio.FormatExpr(d.Graph))
	if opts.output != "" {
		return c.writeGenome(d.Graph, opts.output)
	}
	return nil
}

// writeGenome exports g as a JSON genome file and reports the path.
func (c *CLI) writeGenome(g *genome.Graph, path string) error {
	if err := pkgio.ExportJSON(g, "", path); err != nil {
		return err
	}
	printFile(path)
	return nil
}
