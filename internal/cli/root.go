package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sprout/pkg/buildinfo"
	"github.com/matzehuels/sprout/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Global flags:
//   - --config: TOML body configuration (see "sprout config")
//   - --redis: Redis URL for a shared cache (or SPROUT_REDIS_URL)
//   - --cache-scope: prefix for cache keys
//   - --no-cache: disable caching
//   - --metrics: print OpenTelemetry metrics to stderr on exit
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Sprout grows graph genomes into organic 3D bodies",
		Long: `Sprout rewrites small graphs ("genomes") with a fixed production rule and
synthesizes a continuous body mesh for any genome. The longest path becomes
the spine, limbs become tubes, and side branches bulge the body.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			if !c.metrics {
				return nil
			}
			shutdown, err := observability.SetupStdoutMetrics(cmd.ErrOrStderr(), buildinfo.Version)
			if err != nil {
				return err
			}
			hooks, err := observability.NewOTelHooks(nil)
			if err != nil {
				_ = shutdown(cmd.Context())
				return err
			}
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			c.shutdownMetrics = shutdown
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.shutdownMetrics == nil {
				return nil
			}
			defer observability.Reset()
			return c.shutdownMetrics(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "body configuration file (TOML)")
	flags.StringVar(&c.redisURL, "redis", "", "redis URL for a shared cache (default $"+envRedis+")")
	flags.StringVar(&c.cacheScope, "cache-scope", "", "prefix for cache keys")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable caching")
	flags.BoolVar(&c.metrics, "metrics", false, "print metrics to stderr on exit")

	root.AddCommand(c.mutateCommand())
	root.AddCommand(c.growCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.evolveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
