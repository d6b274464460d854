package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ysaito/tango/internal/app"
	"github.com/ysaito/tango/internal/session"
	"github.com/ysaito/tango/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review everything due today",
	Long: "Runs the daily review loop. An interrupted session resumes where it\n" +
		"left off; newly due entries are merged in without duplicating work.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		return runReview(cmd, a, limit)
	},
}

func init() {
	reviewCmd.Flags().Int("limit", 0, "Maximum queue size for a new session (default 30)")
}

func runReview(cmd *cobra.Command, a *app.App, limit int) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	state, err := loadOrStartSession(ctx, a, limit)
	if err != nil {
		return err
	}
	if len(state.Queue) == 0 {
		fmt.Fprintln(out, "Nothing due today. Nice work.")
		return a.Sessions.Clear(ctx, session.ScheduleID)
	}

	fmt.Fprintf(out, "%d of %d to go. Enter reveals, y/n grades, q saves and quits.\n\n",
		len(state.Queue), state.TotalCount)

	for len(state.Queue) > 0 {
		key := state.Queue[0]
		it, err := a.Repos.Items.Get(ctx, key.ItemID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Item deleted mid-session: drop the entry.
				state.Queue = state.Queue[1:]
				if err := a.Sessions.Save(ctx, session.ScheduleID, state); err != nil {
					return err
				}
				continue
			}
			return err
		}

		quit, err := askOne(ctx, a, in, out, state, it, key.Skill)
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprintln(out, "Session saved. Run review again to resume.")
			return nil
		}
	}

	return finishSession(cmd, a, in, state)
}

// loadOrStartSession resumes a saved session, merging in anything newly
// due, or builds a fresh queue.
func loadOrStartSession(ctx context.Context, a *app.App, limit int) (*session.State, error) {
	due, err := a.Scheduler.BuildDueQueue(ctx, nil, limit)
	if err != nil {
		return nil, err
	}

	saved, err := a.Sessions.Load(ctx, session.ScheduleID)
	if err != nil {
		return nil, err
	}

	var state *session.State
	if saved != nil && len(saved.Queue) > 0 {
		state = session.Merge(saved, due)
	} else {
		state = session.NewState(due)
	}
	if err := a.Sessions.Save(ctx, session.ScheduleID, state); err != nil {
		return nil, err
	}
	return state, nil
}

func askOne(ctx context.Context, a *app.App, in *bufio.Reader, out io.Writer, state *session.State, it *store.Item, skill string) (quit bool, err error) {
	fmt.Fprintf(out, "[%s] %s\n", skillLabel(skill), promptText(it, skill))
	started := time.Now()

	line, err := readLine(in)
	if err != nil {
		return false, err
	}
	if line == "q" {
		return true, nil
	}

	fmt.Fprintf(out, "  -> %s\n", answerText(it, skill))

	var correct bool
	for {
		fmt.Fprint(out, "Correct? [y/n/q] ")
		line, err = readLine(in)
		if err != nil {
			return false, err
		}
		if line == "q" {
			return true, nil
		}
		if line == "y" || line == "n" {
			correct = line == "y"
			break
		}
	}
	elapsed := time.Since(started).Milliseconds()

	res, err := a.Recorder.RecordAnswer(ctx, it.ID, skill, correct, elapsed)
	if err != nil {
		return false, err
	}
	state.Advance(correct)
	if err := a.Sessions.Save(ctx, session.ScheduleID, state); err != nil {
		return false, err
	}

	if res.NewCompleteMaster {
		fmt.Fprintf(out, "  Complete mastery of %q!\n", it.Source)
	}
	fmt.Fprintf(out, "  (%d left)\n\n", len(state.Queue))
	return false, nil
}

func finishSession(cmd *cobra.Command, a *app.App, in *bufio.Reader, state *session.State) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	correct := 0
	for _, ans := range state.Answers {
		if ans.Correct {
			correct++
		}
	}
	wrong := state.WrongKeys()
	fmt.Fprintf(out, "Done: %d correct, %d wrong.\n", correct, len(wrong))

	if err := a.Sessions.Clear(ctx, session.ScheduleID); err != nil {
		return err
	}

	sum, err := a.Stats.Compute(ctx)
	if err != nil {
		return err
	}
	newly, err := a.Trophies.Evaluate(ctx, sum)
	if err != nil {
		return err
	}
	for _, code := range newly {
		fmt.Fprintf(out, "Trophy earned: %s\n", code)
	}

	if len(wrong) == 0 {
		return nil
	}
	fmt.Fprint(out, "Retry the wrong ones now? [y/N] ")
	line, err := readLine(in)
	if err != nil || line != "y" {
		return nil
	}
	retry := &session.State{ID: state.ID + "-retry", Queue: wrong, TotalCount: len(wrong)}
	if err := a.Sessions.Save(ctx, session.ScheduleID, retry); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return runReview(cmd, a, 0)
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func skillLabel(skill string) string {
	switch skill {
	case store.SkillRecognition:
		return "read"
	case store.SkillProduction:
		return "say"
	case store.SkillListening:
		return "hear"
	}
	return skill
}

// promptText picks the question side for the skill: recognition and
// listening show the source text, production shows the primary meaning.
func promptText(it *store.Item, skill string) string {
	if skill == store.SkillProduction && len(it.Meanings) > 0 {
		return it.Meanings[0]
	}
	return it.Source
}

func answerText(it *store.Item, skill string) string {
	if skill == store.SkillProduction {
		return it.Source
	}
	return strings.Join(it.Meanings, " / ")
}
