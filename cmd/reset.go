package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all words, progress, and history",
	Long:  "Deletes every word, progress record, attempt, trophy, and saved session, and restores the default review intervals.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to wipe data without --yes")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store.Wipe(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All data deleted. Intervals restored to defaults.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm deletion of all data")
}
