package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sprout/pkg/body"
	"github.com/matzehuels/sprout/pkg/cache"
	"github.com/matzehuels/sprout/pkg/errors"
	"github.com/matzehuels/sprout/pkg/genome"
	pkgio "github.com/matzehuels/sprout/pkg/io"
	"github.com/matzehuels/sprout/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "sprout"

	// envRedis names the environment variable read when --redis is unset.
	envRedis = "SPROUT_REDIS_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Global flags
	configPath string
	redisURL   string
	cacheScope string
	noCache    bool
	metrics    bool

	// out receives command output; stdout unless replaced in tests.
	out io.Writer

	shutdownMetrics func(context.Context) error
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if c.cacheScope != "" {
		keyer = cache.NewScopedKeyer(nil, c.cacheScope+":")
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// newCache picks the backend: Redis when a URL is configured, the file
// cache otherwise, nothing with --no-cache.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	url := c.redisURL
	if url == "" {
		url = os.Getenv(envRedis)
	}
	if url != "" {
		rc, err := cache.NewRedisCache(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Debug("using redis cache")
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/sprout/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Input Helpers
// =============================================================================

// loadConfig returns the body configuration from --config, or the defaults.
func (c *CLI) loadConfig() (body.Config, error) {
	if c.configPath == "" {
		return body.DefaultConfig(), nil
	}
	if err := errors.ValidatePath(c.configPath); err != nil {
		return body.Config{}, err
	}
	return pkgio.LoadConfig(c.configPath)
}

// loadGenome reads a genome argument. Arguments ending in .json are read as
// genome files; anything else is parsed as an expression.
func loadGenome(arg string) (*genome.Graph, error) {
	if strings.HasSuffix(strings.ToLower(arg), ".json") {
		if err := errors.ValidatePath(arg); err != nil {
			return nil, err
		}
		return pkgio.ImportJSON(arg)
	}
	return pkgio.ParseExpr(arg)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s, fallback string) []string {
	if s == "" {
		return []string{fallback}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// basePath derives the base output path. An empty output falls back to
// fallback; a known format extension on output is stripped.
func basePath(output, fallback string) string {
	if output == "" {
		return fallback
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each artifact to base.<format> in the given order
// and returns the written paths.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
