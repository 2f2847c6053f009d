package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/raagpile/pkg/buildinfo"
	"github.com/matzehuels/raagpile/pkg/cache"
	"github.com/matzehuels/raagpile/pkg/config"
	"github.com/matzehuels/raagpile/pkg/errors"
	"github.com/matzehuels/raagpile/pkg/group"
	"github.com/matzehuels/raagpile/pkg/observability"
	"github.com/matzehuels/raagpile/pkg/pipeline"
)

const (
	// appName is the application name used for directories and display.
	appName = "raagpile"

	// defaultPreset is the presentation used when neither --group nor
	// --preset is given.
	defaultPreset = "hexagon-artin"

	// envRedisURL supplies a default for --redis.
	envRedisURL = "RAAGPILE_REDIS_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flags.
	groupFile string
	preset    string
	groupType string
	noCache   bool
	redisURL  string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "raagpile computes pilings of words in right-angled Artin and Coxeter groups",
		Long: `raagpile parses words over the generators of a right-angled Artin or Coxeter
group and computes their piling: one stack per generator recording how the
letters interleave and cancel under the commutation graph.

Groups come from a TOML or YAML presentation file (--group) or one of the
embedded presets (--preset). The group type can be overridden with --type.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetPilingHooks(logHooks{c.Logger})
			observability.SetCacheHooks(logHooks{c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVarP(&c.groupFile, "group", "g", "", "group presentation file (.toml, .yaml, .yml)")
	flags.StringVarP(&c.preset, "preset", "p", "", "embedded group presentation (default "+defaultPreset+")")
	flags.StringVarP(&c.groupType, "type", "t", "", "override the group type: artin, coxeter")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the result cache")
	flags.StringVar(&c.redisURL, "redis", os.Getenv(envRedisURL), "cache results in Redis at this URL instead of on disk")

	_ = root.MarkPersistentFlagFilename("group", "toml", "yaml", "yml")
	_ = root.RegisterFlagCompletionFunc("preset", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.Presets(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = root.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(
		[]string{group.TagArtin, group.TagCoxeter}, cobra.ShellCompDirectiveNoFileComp))

	root.AddCommand(c.pileCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// presentation resolves the group selected by the persistent flags.
func (c *CLI) presentation() (*config.Presentation, error) {
	if c.groupFile != "" && c.preset != "" {
		return nil, errors.New(errors.ErrCodeConfiguration, "--group and --preset are mutually exclusive")
	}

	var (
		p   *config.Presentation
		err error
	)
	switch {
	case c.groupFile != "":
		p, err = config.Load(c.groupFile)
	case c.preset != "":
		p, err = config.Preset(c.preset)
	default:
		p, err = config.Preset(defaultPreset)
	}
	if err != nil {
		return nil, err
	}
	if c.groupType != "" {
		p.Type = c.groupType
	}
	return p, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if c.redisURL != "" && !c.noCache {
		keyer = cache.NewScopedKeyer(nil, appName+":")
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	switch {
	case c.noCache:
		return cache.NewNullCache(), nil
	case c.redisURL != "":
		return cache.NewRedisCache(ctx, c.redisURL)
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/raagpile/).
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
