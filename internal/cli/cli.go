package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flapboard/pkg/board"
	"github.com/matzehuels/flapboard/pkg/buildinfo"
	"github.com/matzehuels/flapboard/pkg/cache"
	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/errors"
	flapio "github.com/matzehuels/flapboard/pkg/io"
	"github.com/matzehuels/flapboard/pkg/pipeline"
	"github.com/matzehuels/flapboard/pkg/template"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "flapboard"

	// stdinPath reads a template from standard input.
	stdinPath = "-"
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

	configPath string
	stdin      io.Reader
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stdin:  os.Stdin,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Flapboard lays out and encodes content for split-flap boards",
		Long:         `Flapboard measures, lays out and encodes rows of text, color tiles, symbols and variables for split-flap character displays.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "board config file (default $XDG_CONFIG_HOME/flapboard/config.toml)")

	root.AddCommand(c.measureCommand())
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.liveCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config, Input and Runner Factory
// =============================================================================

// loadConfig resolves the board configuration from --config or the default
// location.
func (c *CLI) loadConfig() (*board.Config, error) {
	cfg, err := board.Resolve(c.configPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "columns", cfg.Columns, "rows", cfg.Rows)
	return cfg, nil
}

// readBoard reads board content from path. Files ending in .json are editor
// documents; anything else, including stdin ("-"), is template text.
func (c *CLI) readBoard(path string, cfg *board.Config) (*content.Board, error) {
	switch {
	case path == stdinPath:
		return template.Parse(c.stdin, cfg.Palette)
	case strings.EqualFold(filepath.Ext(path), ".json"):
		return flapio.ImportDocument(path)
	default:
		return template.ParseFile(path, cfg.Palette)
	}
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg *board.Config, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cfg, ch, nil, c.Logger), nil
}

// newCache picks Redis when configured, else the file cache. Failing to
// create the file cache only disables caching.
func (c *CLI) newCache(ctx context.Context, cfg *board.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.Redis != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.Redis)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "redis cache unavailable")
		}
		c.Logger.Debug("using redis cache")
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/flapboard/).
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
