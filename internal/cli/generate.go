package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sprout/pkg/errors"
	"github.com/matzehuels/sprout/pkg/genome"
	pkgio "github.com/matzehuels/sprout/pkg/io"
	"github.com/matzehuels/sprout/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	generations int      // generations to grow before generating
	seed        uint64   // seed for growth and layout
	formats     []string // output formats: obj, ply, json, svg, dot
	output      string   // output file or base path
	name        string   // object name written into mesh files
	refresh     bool     // ignore cached results
}

// generateCommand creates the generate command, which runs the full
// grow → generate → render pipeline and writes one file per format.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{seed: pipeline.DefaultSeed}

	cmd := &cobra.Command{
		Use:   "generate GENOME",
		Short: "Generate a body mesh from a genome",
		Long: `Generate a body mesh from a genome, optionally growing it first.

Mesh formats (obj, ply, json) hold positions, normals, UVs and the per-vertex
binormal and arc position; diagram formats (svg, dot) draw the genome with its
spine highlighted. Genomes too small to have a spine produce a warning and no
mesh files.`,
		Example: `  sprout generate "1-2-3-4, 2-5"
  sprout generate "1-2, 1-3" -n 6 -f obj,svg -o fish
  sprout generate seed.json --config body.toml -f ply`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr, pipeline.FormatOBJ)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			g, err := loadGenome(args[0])
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), g, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.generations, "generations", "n", 0, "generations to grow first")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed for growth and layout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): obj (default), ply, json, svg, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: "+appName+")")
	cmd.Flags().StringVar(&opts.name, "name", "", "object name in mesh files")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, g *genome.Graph, opts generateOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Generating body...")
	spinner.Start()
	result, err := runner.Execute(ctx, g, pipeline.Options{
		Generations: opts.generations,
		Seed:        opts.seed,
		Refresh:     opts.refresh,
		Config:      cfg,
		Formats:     opts.formats,
		Name:        opts.name,
		Logger:      loggerFromContext(ctx),
	})
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	switch {
	case result.Diagnostic != nil:
		printWarning("%s", errors.UserMessage(result.Diagnostic))
		printDetail("A body needs at least two connected nodes; no mesh was written")
	case result.Stats.Triangles > 0:
		printSuccess("Generated %s", StyleNumber.Render(fmt.Sprintf("%d triangles", result.Stats.Triangles)))
	default:
		printSuccess("Generated %s", StyleHighlight.Render(pkgio.FormatExpr(result.Genome)))
	}
	printStats(result.Stats, result.CacheInfo.RenderHit)
	printDetail("run %s", result.RunID)

	paths, err := writeArtifacts(basePath(opts.output, appName), opts.formats, result.Artifacts)
	for _, p := range paths {
		printFile(p)
	}
	return err
}
