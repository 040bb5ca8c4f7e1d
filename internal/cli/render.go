package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sprout/pkg/errors"
	"github.com/matzehuels/sprout/pkg/pipeline"
)

// renderCommand creates the render command, which draws a genome as a
// node-link diagram with its spine highlighted.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr  string
		output      string
		generations int
		seed        uint64 = pipeline.DefaultSeed
		detailed    bool
	)

	cmd := &cobra.Command{
		Use:   "render GENOME",
		Short: "Draw a genome as an SVG or DOT diagram",
		Example: `  sprout render "1-2-3-4, 2-5"
  sprout render "1-2, 1-3" -n 5 -f svg,dot --detailed -o lineage`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr, pipeline.FormatSVG)
			for _, f := range formats {
				if pipeline.MeshFormats[f] {
					return errors.New(errors.ErrCodeInvalidFormat, "%s is a mesh format, use generate", f)
				}
			}
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			g, err := loadGenome(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), g, pipeline.Options{
				Generations: generations,
				Seed:        seed,
				Formats:     formats,
				Detailed:    detailed,
				Logger:      loggerFromContext(cmd.Context()),
			})
			if err != nil {
				return err
			}

			printSuccess("Rendered %s", StyleNumber.Render(fmt.Sprintf("%d-node genome", result.Stats.NodeCount)))
			printStats(result.Stats, result.CacheInfo.RenderHit)
			paths, err := writeArtifacts(basePath(output, appName), formats, result.Artifacts)
			for _, p := range paths {
				printFile(p)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: "+appName+")")
	cmd.Flags().IntVarP(&generations, "generations", "n", 0, "generations to grow first")
	cmd.Flags().Uint64Var(&seed, "seed", seed, "random seed for growth")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with their degree")

	return cmd
}
