package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/config"
)

// ListOptions configure a headless fetch.
type ListOptions struct {
	ConfigPath string
	Query      string
	JSON       bool
}

// List performs the initial fetch without the UI, applies the query and
// prints the filtered items to out.
func List(ctx context.Context, out io.Writer, opts ListOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := OpenLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := newStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if !watchReady(ctx, store, func() {}) {
		return ctx.Err()
	}

	store.SetQuery(opts.Query)
	snap := store.Snapshot()
	// The store's message is written for the TUI; print the cause instead.
	if snap.LastError != nil {
		return fmt.Errorf("fetch catalog: %w", errors.Unwrap(snap.LastError))
	}
	return writeItems(out, snap.Filtered(), opts.JSON)
}

func writeItems(out io.Writer, items []catalog.Item, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tIMAGE")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", item.ID, item.DisplayName, item.ImageURL)
	}
	return tw.Flush()
}
