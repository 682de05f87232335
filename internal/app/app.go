package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/five82/platter/internal/config"
	"github.com/five82/platter/internal/mealdb"
	"github.com/five82/platter/internal/prefs"
	"github.com/five82/platter/internal/state"
	"github.com/five82/platter/internal/ui"
)

// Options configure the platter application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/platter/prefs.toml
}

// Run boots the platter TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := OpenLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	store, err := newStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := ui.NewProgram(ctx, ui.Options{
		Store:     store,
		LogPath:   cfg.Log.File,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})

	logger.Info("platter started", "endpoint", cfg.Source.Endpoint, "discard_stale", cfg.Source.DiscardStale)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		watchReady(gctx, store, func() { program.Send(ui.StoreReadyMsg{}) })
		return nil
	})

	err = g.Wait()
	logger.Info("platter stopped", "error", err)
	return err
}

// newStore builds the HTTP client from cfg and starts the store's initial fetch.
func newStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*state.Store, error) {
	client, err := mealdb.NewClient(mealdb.Options{
		Endpoint:  cfg.Source.Endpoint,
		UserAgent: cfg.Source.UserAgent,
		Timeout:   cfg.Source.RequestTimeout,
		Schema: mealdb.Schema{
			ListKey:    cfg.Source.ListKey,
			IDField:    cfg.Source.IDField,
			NameField:  cfg.Source.NameField,
			ImageField: cfg.Source.ImageField,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("init catalog client: %w", err)
	}

	return state.New(ctx, client,
		state.WithLogger(logger.With("component", "store")),
		state.WithDiscardStale(cfg.Source.DiscardStale),
	), nil
}
