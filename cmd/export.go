package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ysaito/tango/internal/port"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export all data to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		dump, err := port.Export(cmd.Context(), a.Repos)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return fmt.Errorf("encode dump: %w", err)
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items, %d attempts to %s\n",
			len(dump.Items), len(dump.Attempts), args[0])
		return nil
	},
}
