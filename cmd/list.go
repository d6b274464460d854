package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List vocabulary entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		items, err := a.Repos.Items.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No entries yet. Try: tango add")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SOURCE\tMEANING\tCATEGORY\tSTATUS\tADDED")
		for _, it := range items {
			meaning := ""
			if len(it.Meanings) > 0 {
				meaning = it.Meanings[0]
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				it.Source, meaning, it.Category, it.Status, it.CreatedAt.Format("2006-01-02"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d %s\n", len(items), plural(len(items), "entry", "entries"))
		return nil
	},
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
