package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ysaito/tango/internal/port"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import data from a JSON dump or an xlsx word list",
	Long: "A .json file restores a full export (validated before anything is\n" +
		"written). An .xlsx file bulk-adds vocabulary from the first sheet\n" +
		"(columns: source, meaning, category, example, note).",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		path := args[0]
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			res, err := port.ImportXLSX(ctx, a.Repos.Items, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Imported %d entries (%d skipped)\n", res.Created, res.Skipped)
			for _, msg := range res.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var dump port.Dump
		if err := json.Unmarshal(data, &dump); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		if err := port.Import(ctx, a.Store, &dump); err != nil {
			return err
		}
		fmt.Fprintf(out, "Imported %d items, %d progress rows, %d attempts\n",
			len(dump.Items), len(dump.Progress), len(dump.Attempts))
		return nil
	},
}
