package trophy

import (
	"context"
	"testing"
	"time"

	"github.com/ysaito/tango/internal/stats"
	"github.com/ysaito/tango/internal/store"
)

var testClock = func() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func newTestEvaluator() (*Evaluator, store.TrophyRepo) {
	ms := store.NewMemStore()
	return NewEvaluator(ms, testClock), ms.Repos().Trophies
}

// countingTx wraps the in-memory store to observe how many transactions an
// evaluation opens.
type countingTx struct {
	*store.MemStore
	calls int
}

func (c *countingTx) RunTx(ctx context.Context, fn func(store.Repos) error) error {
	c.calls++
	return c.MemStore.RunTx(ctx, fn)
}

func codeSet(codes []string) map[string]bool {
	out := make(map[string]bool, len(codes))
	for _, c := range codes {
		out[c] = true
	}
	return out
}

func TestEvaluateCrossedThresholds(t *testing.T) {
	ev, _ := newTestEvaluator()

	newly, err := ev.Evaluate(context.Background(), &stats.Summary{TotalItems: 25})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	got := codeSet(newly)
	for _, want := range []string{"registered_10", "registered_20"} {
		if !got[want] {
			t.Errorf("missing %s in %v", want, newly)
		}
	}
	if got["registered_30"] {
		t.Errorf("registered_30 earned at 25 items: %v", newly)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	ev, _ := newTestEvaluator()
	ctx := context.Background()
	sum := &stats.Summary{TotalItems: 15, TotalAttempts: 60, TotalCorrect: 50}

	first, err := ev.Evaluate(ctx, sum)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("first evaluation earned nothing")
	}

	second, err := ev.Evaluate(ctx, sum)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second evaluation with unchanged summary earned %v, want none", second)
	}
}

func TestEvaluateIndependentMetrics(t *testing.T) {
	ev, _ := newTestEvaluator()

	newly, err := ev.Evaluate(context.Background(), &stats.Summary{
		MasteredA:     12,
		MasteredB:     3,
		TotalAttempts: 100,
		TotalCorrect:  80,
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	got := codeSet(newly)
	if !got["masterA_10"] {
		t.Errorf("masterA_10 not earned: %v", newly)
	}
	if got["masterB_10"] {
		t.Errorf("masterB_10 earned at 3: %v", newly)
	}
	if !got["attempts_100"] || !got["attempts_50"] || !got["attempts_10"] {
		t.Errorf("attempt rungs missing: %v", newly)
	}
	if !got["correct_50"] {
		t.Errorf("correct_50 not earned at 80: %v", newly)
	}
	if got["correct_100"] {
		t.Errorf("correct_100 earned at 80: %v", newly)
	}
}

func TestEvaluateOnlyNewCodesReported(t *testing.T) {
	ev, repo := newTestEvaluator()
	ctx := context.Background()

	if err := repo.Add(ctx, Code("registered", 10), testClock()); err != nil {
		t.Fatalf("seed trophy: %v", err)
	}

	newly, err := ev.Evaluate(ctx, &stats.Summary{TotalItems: 20})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	got := codeSet(newly)
	if got["registered_10"] {
		t.Errorf("already owned registered_10 reported again: %v", newly)
	}
	if !got["registered_20"] {
		t.Errorf("registered_20 not earned: %v", newly)
	}
}

func TestEvaluateWritesInOneTransaction(t *testing.T) {
	tx := &countingTx{MemStore: store.NewMemStore()}
	ev := NewEvaluator(tx, testClock)

	newly, err := ev.Evaluate(context.Background(), &stats.Summary{TotalItems: 30})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(newly) != 3 {
		t.Fatalf("newly = %v, want registered_10/20/30", newly)
	}
	if tx.calls != 1 {
		t.Errorf("transactions opened = %d, want 1 (all codes land together)", tx.calls)
	}
}

func TestEvaluateRecordsAchievedAt(t *testing.T) {
	ev, repo := newTestEvaluator()
	ctx := context.Background()

	if _, err := ev.Evaluate(ctx, &stats.Summary{TotalItems: 10}); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	owned, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list trophies: %v", err)
	}
	if len(owned) != 1 {
		t.Fatalf("owned = %d, want 1", len(owned))
	}
	if !owned[0].AchievedAt.Equal(testClock()) {
		t.Errorf("achieved at %v, want %v", owned[0].AchievedAt, testClock())
	}
}
