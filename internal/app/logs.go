package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/platter/internal/config"
	"github.com/five82/platter/internal/logtail"
)

// LogsOptions configure the log tail command.
type LogsOptions struct {
	ConfigPath string
	Lines      int
	MinLevel   string
	Color      bool
}

// Logs prints the tail of the configured log file.
func Logs(out io.Writer, opts LogsOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := slog.LevelDebug
	if opts.MinLevel != "" {
		if level, err = config.ParseLevel(opts.MinLevel); err != nil {
			return fmt.Errorf("level: %w", err)
		}
	}

	lines, err := logtail.Read(cfg.Log.File, logtail.Options{Lines: opts.Lines, MinLevel: level})
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		_, err := fmt.Fprintf(out, "no log entries in %s\n", cfg.Log.File)
		return err
	}
	for _, line := range lines {
		if opts.Color {
			line = logtail.Highlight(line)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
