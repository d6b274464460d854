package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ysaito/tango/internal/ladder"
)

var intervalsCmd = &cobra.Command{
	Use:   "intervals [DAYS,DAYS,...]",
	Short: "Show or set the review interval ladder",
	Long: "Without arguments, prints the current ladder. With a comma-separated\n" +
		"list of day counts, validates and stores a new one (at least 3\n" +
		"distinct positive values).",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			raw, err := a.Repos.Settings.Intervals(ctx)
			if err != nil {
				return err
			}
			norm, err := ladder.Normalize(raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatIntervals(norm))
			return nil
		}

		raw, err := parseIntervals(args[0])
		if err != nil {
			return err
		}
		norm, err := ladder.Normalize(raw)
		if err != nil {
			return err
		}
		if err := a.Repos.Settings.SetIntervals(ctx, norm); err != nil {
			return err
		}
		fmt.Fprintf(out, "Ladder set to %s\n", formatIntervals(norm))
		return nil
	},
}

func parseIntervals(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("not a day count: %q", p)
		}
		out = append(out, n)
	}
	return out, nil
}

func formatIntervals(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}
