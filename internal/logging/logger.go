// Package logging provides config-driven categorized file logging for tempconv.
// The terminal belongs to the UI, so logs only ever go to a file, and only
// when debug_mode is on. Otherwise every logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config loading
	CategoryUI     Category = "ui"     // Focus changes, edits, reloads
	CategoryConfig Category = "config" // Config file watcher
	CategoryCLI    Category = "cli"    // One-shot commands
)

// Options mirrors the relevant parts of config.LoggingConfig
// to avoid circular imports
type Options struct {
	DebugMode bool
	Level     string // debug, info, warn, error
	Format    string // json, console
	File      string
	// Enabled reports whether a category should log. Nil enables all.
	Enabled func(category string) bool
}

var (
	mu      sync.RWMutex
	opts    Options
	base    = zap.NewNop()
	session = uuid.NewString()
)

// Initialize builds the shared logger. Calling it again replaces the
// previous logger after syncing it.
func Initialize(o Options) error {
	mu.Lock()
	defer mu.Unlock()

	_ = base.Sync()
	opts = o
	base = zap.NewNop()

	if !o.DebugMode {
		return nil // Silent no-op in production mode
	}
	if o.File == "" {
		return fmt.Errorf("log file path required in debug mode")
	}
	if err := os.MkdirAll(filepath.Dir(o.File), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if o.Level != "" {
		if err := level.UnmarshalText([]byte(o.Level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Sampling = nil
	cfg.OutputPaths = []string{o.File}
	cfg.ErrorOutputPaths = []string{o.File}
	if o.Format == "console" {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	l, err := cfg.Build(zap.Fields(zap.String("session", session)))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	base = l
	return nil
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabled(category)
}

func categoryEnabled(category Category) bool {
	if !opts.DebugMode {
		return false
	}
	if opts.Enabled == nil {
		return true
	}
	return opts.Enabled(string(category))
}

// Get returns a logger named after category, or a no-op logger if the
// category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !categoryEnabled(category) {
		return zap.NewNop()
	}
	return base.Named(string(category))
}

// Session is the id attached to every entry written by this process.
func Session() string {
	return session
}

// Sync flushes buffered entries.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sync()
}

// Close flushes and resets to the no-op logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	_ = base.Sync()
	base = zap.NewNop()
	opts = Options{}
}
