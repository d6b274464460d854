// Package ladder normalizes the user-configurable interval ladder: the
// ascending list of day counts governing review spacing. Stage N on a
// (item, skill) pair means the next review falls ladder[N] days out;
// ladder[0] is the reset interval after a wrong answer.
package ladder

import (
	"errors"
	"sort"
)

// MinLen is the minimum number of distinct positive intervals a usable
// ladder must have.
const MinLen = 3

// ErrTooFewIntervals is returned when a raw interval list normalizes to
// fewer than MinLen values. No scheduling or recording proceeds with such
// a configuration.
var ErrTooFewIntervals = errors.New("interval ladder needs at least 3 distinct positive values")

// Default returns the built-in ladder used until the learner configures
// their own.
func Default() []int {
	return []int{1, 2, 4, 7, 15, 30}
}

// Normalize turns a raw user-supplied list into a strictly ascending,
// deduplicated sequence of positive day counts. The input is not modified.
func Normalize(raw []int) ([]int, error) {
	seen := make(map[int]bool, len(raw))
	out := make([]int, 0, len(raw))
	for _, d := range raw {
		if d <= 0 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)

	if len(out) < MinLen {
		return nil, ErrTooFewIntervals
	}
	return out, nil
}

// NextStage returns the ladder position after one graded answer: a correct
// answer advances one rung and saturates at the top, a wrong answer resets
// to the bottom unconditionally. The ladder must be normalized.
func NextStage(stage int, ladderLen int, correct bool) int {
	if !correct {
		return 0
	}
	next := stage + 1
	if next > ladderLen-1 {
		return ladderLen - 1
	}
	return next
}

// IsMastered reports whether stage is the ladder's final rung.
func IsMastered(stage, ladderLen int) bool {
	return stage == ladderLen-1
}
