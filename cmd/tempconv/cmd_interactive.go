package main

import (
	"context"
	"errors"
	"os"

	"tempconv/cmd/tempconv/ui"
	"tempconv/internal/config"
	"tempconv/internal/labels"
	"tempconv/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runInteractive runs the TUI and, next to it, the config watcher. Leaving
// the TUI stops the watcher.
func runInteractive(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	app := ui.NewApp(ui.Options{
		Catalog: catalog,
		Theme:   ui.ResolveTheme(cfg.UI.Theme),
		Logger:  logging.Get(logging.CategoryUI),
	})

	g, gctx := errgroup.WithContext(cmd.Context())
	ctx, cancel := context.WithCancel(gctx)
	defer cancel()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	watcher, err := config.NewWatcher(configPath, func(c *config.Config, err error) {
		if err != nil {
			return // keep the current config; the watcher already logged it
		}
		reloaded, err := loadCatalog(c)
		if err != nil {
			logging.Get(logging.CategoryConfig).Warn("labels reload failed", zap.Error(err))
			return
		}
		p.Send(ui.ConfigReloadedMsg{Catalog: reloaded, Theme: ui.ResolveTheme(c.UI.Theme)})
	}, cfg.LabelsPath(configPath))
	if err != nil {
		logger.Warn("config watcher unavailable", zap.Error(err))
	} else {
		g.Go(func() error { return watcher.Run(ctx) })
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
			return nil // interrupted
		}
		return err
	})

	return g.Wait()
}

// loadCatalog resolves the configured locale against the built-in labels
// plus the optional overlay file.
func loadCatalog(c *config.Config) (*labels.Catalog, error) {
	tables := labels.Builtin()
	if path := c.LabelsPath(configPath); path != "" {
		overlay, err := labels.LoadFile(path)
		switch {
		case err == nil:
			tables = tables.Merge(overlay)
		case errors.Is(err, os.ErrNotExist):
			logging.Get(logging.CategoryBoot).Warn("labels file missing", zap.String("path", path))
		default:
			return nil, err
		}
	}
	return tables.Resolve(c.UI.Locale), nil
}
