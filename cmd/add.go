package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ysaito/tango/internal/catalog"
)

var addCmd = &cobra.Command{
	Use:   "add SOURCE MEANING [MEANING...]",
	Short: "Add a vocabulary entry",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		category, _ := cmd.Flags().GetString("category")
		tagsFlag, _ := cmd.Flags().GetString("tags")
		example, _ := cmd.Flags().GetString("example")
		note, _ := cmd.Flags().GetString("note")

		var tags []string
		if tagsFlag != "" {
			tags = strings.Split(tagsFlag, ",")
		}

		it, err := catalog.New(args[0], args[1:], category, tags, example, note)
		if err != nil {
			return err
		}
		if err := a.Repos.Items.Put(cmd.Context(), it); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", it.Source, it.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().String("category", catalog.CategoryWord, "word, idiom, or phrase")
	addCmd.Flags().String("tags", "", "Comma-separated tags")
	addCmd.Flags().String("example", "", "Example sentence")
	addCmd.Flags().String("note", "", "Free-form note")
}
