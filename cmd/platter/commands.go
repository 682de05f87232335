package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/platter/internal/app"
)

// --- list ---

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch the catalog once and print it",
		Long: `Fetch the catalog once without the TUI and print the items whose
name contains the query (case-insensitive).

Examples:
  platter list
  platter list --query shrimp
  platter list --query SALMON --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			query, _ := cmd.Flags().GetString("query")
			asJSON, _ := cmd.Flags().GetBool("json")

			return app.List(cmd.Context(), cmd.OutOrStdout(), app.ListOptions{
				ConfigPath: configPath,
				Query:      query,
				JSON:       asJSON,
			})
		},
	}
	cmd.Flags().StringP("query", "q", "", "filter by display name")
	cmd.Flags().Bool("json", false, "print JSON instead of a table")
	return cmd
}

// --- logs ---

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the platter log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			lines, _ := cmd.Flags().GetInt("lines")
			level, _ := cmd.Flags().GetString("level")
			color, _ := cmd.Flags().GetBool("color")

			return app.Logs(cmd.OutOrStdout(), app.LogsOptions{
				ConfigPath: configPath,
				Lines:      lines,
				MinLevel:   level,
				Color:      color,
			})
		},
	}
	cmd.Flags().IntP("lines", "n", 50, "number of lines to show (0 for all)")
	cmd.Flags().String("level", "", "minimum level: debug, info, warn or error")
	cmd.Flags().Bool("color", true, "highlight levels")
	return cmd
}
