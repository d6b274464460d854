package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ysaito/tango/internal/app"
	"github.com/ysaito/tango/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tango",
	Short: "Personal vocabulary trainer",
	Long:  "Tango — spaced-repetition vocabulary trainer tracking recognition, production, and listening per word.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TANGO_DB env var)")
	rootCmd.PersistentFlags().String("tz", "", "IANA timezone for calendar dates (overrides TANGO_TZ env var, default Asia/Tokyo)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(trophiesCmd)
	rootCmd.AddCommand(intervalsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TANGO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func resolveTimezone(cmd *cobra.Command) string {
	if tz, _ := cmd.Flags().GetString("tz"); tz != "" {
		return tz
	}
	return os.Getenv("TANGO_TZ")
}

// openApp opens the store and engine services for a command run.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return app.Open(dbPath, resolveTimezone(cmd))
}
