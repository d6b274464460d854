package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		sum, err := a.Stats.Compute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Entries:          %d\n", sum.TotalItems)
		fmt.Fprintf(out, "Due now:          %d\n", sum.DueCount)
		fmt.Fprintf(out, "Mastered (read):  %d\n", sum.MasteredA)
		fmt.Fprintf(out, "Mastered (say):   %d\n", sum.MasteredB)
		fmt.Fprintf(out, "Mastered (hear):  %d\n", sum.MasteredC)
		fmt.Fprintf(out, "Complete masters: %d\n", sum.CompleteMaster)
		fmt.Fprintf(out, "Attempts:         %d (%d correct)\n", sum.TotalAttempts, sum.TotalCorrect)
		fmt.Fprintf(out, "Today:            %d (%d correct, %.0f%%)\n",
			sum.TodayAttempts, sum.TodayCorrect, sum.TodayAccuracy*100)
		return nil
	},
}
