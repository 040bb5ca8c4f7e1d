package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/sprout/pkg/io"
	"github.com/matzehuels/sprout/pkg/pipeline"
)

// evolveCommand creates the evolve command, an interactive picker that
// walks a lineage one chosen descendant at a time.
func (c *CLI) evolveCommand() *cobra.Command {
	var (
		output     string
		mesh       string
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "evolve GENOME",
		Short: "Choose descendants interactively",
		Long: `Choose descendants interactively, one generation at a time.

Each screen lists every descendant of the current genome. Adopt one with
enter, step back with b, and finish with q. The final genome can be saved
as JSON (-o) and generated straight away (--mesh).`,
		Example: `  sprout evolve "1-2, 1-3"
  sprout evolve seed.json -o chosen.json --mesh chosen -f obj,svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGenome(args[0])
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(NewEvolveModel(g), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			fm, ok := final.(EvolveModel)
			if !ok || fm.Aborted {
				printDetail("Aborted, nothing written")
				return nil
			}

			chosen := fm.Current()
			printSuccess("Evolved %d generations", fm.Generation())
			printDetail("%s", pkgio.FormatExpr(chosen))

			if output != "" {
				if err := c.writeGenome(chosen, output); err != nil {
					return err
				}
			}
			if mesh == "" {
				return nil
			}
			formats := parseFormats(formatsStr, pipeline.FormatOBJ)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), chosen, generateOpts{
				seed:    pipeline.DefaultSeed,
				formats: formats,
				output:  mesh,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the final genome as JSON")
	cmd.Flags().StringVar(&mesh, "mesh", "", "generate the final genome to this base path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "formats for --mesh (default obj)")

	return cmd
}
