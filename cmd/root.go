package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fourcolor/longbox/cache"
	"github.com/fourcolor/longbox/comicvine"
	"github.com/fourcolor/longbox/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *comicvine.Client
	store   cache.Store

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	noCache bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "longbox",
	Short: "Look up comic metadata from the Comic Vine API",
	Long: `longbox is a CLI for the Comic Vine comic metadata API. It can fetch
single resources by id, list resources with server-side filters, and run
free-text searches. Responses are cached on disk so repeated lookups don't
burn through the API budget.`,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeStore()
	},
}

// SetVersion sets the version information from build flags
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when a command errors.
	closeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")
}

// initializeApp initializes the configuration and the Comic Vine client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	opts := []comicvine.Option{
		comicvine.WithLogger(logger),
		comicvine.WithMaxResults(cfg.ComicVine.MaxResults),
		comicvine.WithTimeout(time.Duration(cfg.ComicVine.TimeoutSec) * time.Second),
	}

	if cfg.Cache.Enabled && !noCache {
		path := cfg.Cache.Path
		if path == "" {
			path, err = cache.DefaultPath()
			if err != nil {
				return fmt.Errorf("failed to resolve cache path: %w", err)
			}
		}
		store = openCacheStore(path, cfg.Cache.ExpiryDays)
		if store != nil {
			opts = append(opts, comicvine.WithCache(store))
			logger.Debug().Str("path", path).Msg("Response cache enabled")
		}
	}

	client, err = comicvine.NewClient(cfg.ComicVine.APIKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Comic Vine client: %w", err)
	}

	return nil
}

// openCacheStore opens the SQLite cache. The failure path returns an
// untyped nil so the store variable stays nil-comparable; assigning the
// concrete pointer directly would defeat the nil guard in closeStore.
func openCacheStore(path string, expiryDays int) cache.Store {
	s, err := cache.OpenSQLite(path, expiryDays)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to open cache, continuing without it")
		return nil
	}
	return s
}

func closeStore() {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close cache")
	}
	store = nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
