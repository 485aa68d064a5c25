package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tempconv/internal/config"
	"tempconv/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tempconv",
	Short: "Celsius / Fahrenheit converter",
	Long: `tempconv converts temperatures between Celsius and Fahrenheit.

Run without arguments to open the interactive converter: a stateful
converter, the same converter with its state held by the app, and a
two-way converter that keeps both scales in sync as you type.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs (to logging.file)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: <user config dir>/tempconv/config.yaml)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(configCmd)
}

// setup resolves the config path, loads the config and starts logging.
func setup() error {
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}

	if err := logging.Initialize(loggingOptions(cfg)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logging.Get(logging.CategoryBoot)
	logger.Info("starting",
		zap.String("config", configPath),
		zap.String("locale", cfg.UI.Locale),
		zap.String("theme", cfg.UI.Theme),
	)
	return nil
}

func loggingOptions(c *config.Config) logging.Options {
	return logging.Options{
		DebugMode: c.Logging.DebugMode,
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		File:      c.LogPath(configPath),
		Enabled:   c.Logging.IsCategoryEnabled,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
