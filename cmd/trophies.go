package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trophiesCmd = &cobra.Command{
	Use:   "trophies",
	Short: "Show earned trophies and check for new ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		sum, err := a.Stats.Compute(ctx)
		if err != nil {
			return err
		}
		newly, err := a.Trophies.Evaluate(ctx, sum)
		if err != nil {
			return err
		}
		for _, code := range newly {
			fmt.Fprintf(out, "New: %s\n", code)
		}

		earned, err := a.Repos.Trophies.List(ctx)
		if err != nil {
			return err
		}
		if len(earned) == 0 {
			fmt.Fprintln(out, "No trophies yet.")
			return nil
		}
		for _, t := range earned {
			fmt.Fprintf(out, "%s\t%s\n", t.AchievedAt.Format("2006-01-02"), t.Code)
		}
		return nil
	},
}
