package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/platter/internal/app"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "platter: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "platter",
		Short:         "Browse and filter a remote recipe catalog",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			prefsPath, _ := cmd.Flags().GetString("prefs")
			return app.Run(cmd.Context(), app.Options{ConfigPath: configPath, PrefsPath: prefsPath})
		},
	}
	root.PersistentFlags().String("config", "", "config file (default ~/.config/platter/config.toml)")
	root.PersistentFlags().String("prefs", "", "preferences file (default ~/.config/platter/prefs.toml)")

	root.AddCommand(newListCmd(), newLogsCmd())
	return root
}
