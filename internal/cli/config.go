package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sprout/pkg/body"
	pkgio "github.com/matzehuels/sprout/pkg/io"
)

// configCommand creates the config command. It prints the effective body
// configuration as TOML, suitable as a starting point for --config.
func (c *CLI) configCommand() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the body configuration as TOML",
		Example: `  sprout config --defaults > body.toml
  sprout --config body.toml config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := body.DefaultConfig()
			if !defaults {
				var err error
				if cfg, err = c.loadConfig(); err != nil {
					return err
				}
			}
			return pkgio.EncodeConfig(c.out, cfg)
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "ignore --config and print the defaults")

	return cmd
}
