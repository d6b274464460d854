package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ysaito/tango/internal/ladder"
	"github.com/ysaito/tango/internal/store"
)

// testClock pins the calendar so due dates are deterministic.
var testClock = func() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func testConfig() Config {
	return Config{
		Location:   time.UTC,
		QueueLimit: DefaultQueueLimit,
		Now:        testClock,
	}
}

func addItem(t *testing.T, repos store.Repos, id string, created time.Time) {
	t.Helper()
	err := repos.Items.Put(context.Background(), &store.Item{
		ID:        id,
		Source:    "word-" + id,
		Meanings:  []string{"meaning"},
		Category:  "word",
		Status:    "NotYet",
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("put item %s: %v", id, err)
	}
}

func TestBuildDueQueueInitializesProgress(t *testing.T) {
	ms := store.NewMemStore()
	repos := ms.Repos()
	sched := NewScheduler(repos, testConfig())
	ctx := context.Background()

	base := testClock()
	addItem(t, repos, "a", base)
	addItem(t, repos, "b", base.Add(time.Minute))

	queue, err := sched.BuildDueQueue(ctx, nil, 0)
	if err != nil {
		t.Fatalf("BuildDueQueue: %v", err)
	}
	if len(queue) != 6 {
		t.Fatalf("queue length = %d, want 6 (2 items x 3 skills)", len(queue))
	}

	// Every pair got a persisted row: bottom of the ladder, due today.
	today := testConfig().Today()
	for _, id := range []string{"a", "b"} {
		for _, sk := range store.Skills() {
			p, err := repos.Progress.Get(ctx, id, sk)
			if err != nil {
				t.Fatalf("progress %s/%s not persisted: %v", id, sk, err)
			}
			if p.Stage != 0 || p.NextDue != today {
				t.Errorf("progress %s/%s = stage %d due %s, want stage 0 due %s", id, sk, p.Stage, p.NextDue, today)
			}
		}
	}
}

func TestBuildDueQueueNewestItemFirst(t *testing.T) {
	ms := store.NewMemStore()
	repos := ms.Repos()
	sched := NewScheduler(repos, testConfig())

	base := testClock()
	addItem(t, repos, "old", base)
	addItem(t, repos, "mid", base.Add(time.Minute))
	addItem(t, repos, "new", base.Add(2*time.Minute))

	queue, err := sched.BuildDueQueue(context.Background(), []string{store.SkillRecognition}, 0)
	if err != nil {
		t.Fatalf("BuildDueQueue: %v", err)
	}

	want := []string{"new", "mid", "old"}
	if len(queue) != len(want) {
		t.Fatalf("queue length = %d, want %d", len(queue), len(want))
	}
	for i, id := range want {
		if queue[i].Item.ID != id {
			t.Errorf("queue[%d].Item.ID = %s, want %s", i, queue[i].Item.ID, id)
		}
	}
}

func TestDueMembership(t *testing.T) {
	ms := store.NewMemStore()
	repos := ms.Repos()
	cfg := testConfig()
	sched := NewScheduler(repos, cfg)
	ctx := context.Background()

	today := cfg.Today()
	tests := []struct {
		id      string
		nextDue string
		due     bool
	}{
		{"past", "2026-03-01", true},
		{"today", today, true},
		{"unset", "", true},
		{"tomorrow", "2026-03-11", false},
		{"far", "2026-04-01", false},
	}

	base := testClock()
	for i, tt := range tests {
		addItem(t, repos, tt.id, base.Add(time.Duration(i)*time.Minute))
		for _, sk := range store.Skills() {
			err := repos.Progress.Put(ctx, &store.Progress{
				ItemID: tt.id, Skill: sk, Stage: 1, NextDue: tt.nextDue,
			})
			if err != nil {
				t.Fatalf("put progress: %v", err)
			}
		}
	}

	queue, err := sched.BuildDueQueue(ctx, []string{store.SkillRecognition}, 0)
	if err != nil {
		t.Fatalf("BuildDueQueue: %v", err)
	}
	got := make(map[string]bool)
	for _, e := range queue {
		got[e.Item.ID] = true
	}
	for _, tt := range tests {
		if got[tt.id] != tt.due {
			t.Errorf("item %s (next due %q): in queue = %v, want %v", tt.id, tt.nextDue, got[tt.id], tt.due)
		}
	}
}

func TestBuildDueQueueLimit(t *testing.T) {
	ms := store.NewMemStore()
	repos := ms.Repos()
	sched := NewScheduler(repos, testConfig())
	ctx := context.Background()

	base := testClock()
	for i := 0; i < 20; i++ {
		addItem(t, repos, string(rune('a'+i)), base.Add(time.Duration(i)*time.Second))
	}

	// 20 items x 3 skills = 60 due pairs; the default limit caps the queue.
	queue, err := sched.BuildDueQueue(ctx, nil, 0)
	if err != nil {
		t.Fatalf("BuildDueQueue: %v", err)
	}
	if len(queue) != DefaultQueueLimit {
		t.Errorf("queue length = %d, want %d", len(queue), DefaultQueueLimit)
	}

	n, err := sched.CountDue(ctx, nil)
	if err != nil {
		t.Fatalf("CountDue: %v", err)
	}
	if n != 60 {
		t.Errorf("CountDue = %d, want 60 (no limit applied)", n)
	}

	short, err := sched.BuildDueQueue(ctx, nil, 5)
	if err != nil {
		t.Fatalf("BuildDueQueue limit 5: %v", err)
	}
	if len(short) != 5 {
		t.Errorf("queue length = %d, want 5", len(short))
	}
}

func TestSkillFilter(t *testing.T) {
	ms := store.NewMemStore()
	repos := ms.Repos()
	sched := NewScheduler(repos, testConfig())

	addItem(t, repos, "a", testClock())

	queue, err := sched.BuildDueQueue(context.Background(), []string{store.SkillListening}, 0)
	if err != nil {
		t.Fatalf("BuildDueQueue: %v", err)
	}
	if len(queue) != 1 {
		t.Fatalf("queue length = %d, want 1", len(queue))
	}
	if queue[0].Skill != store.SkillListening {
		t.Errorf("queue[0].Skill = %s, want %s", queue[0].Skill, store.SkillListening)
	}
}

func TestSchedulingRejectsInvalidLadder(t *testing.T) {
	ms := store.NewMemStore()
	repos := ms.Repos()
	sched := NewScheduler(repos, testConfig())
	ctx := context.Background()

	addItem(t, repos, "a", testClock())
	if err := repos.Settings.SetIntervals(ctx, []int{5, 5}); err != nil {
		t.Fatalf("set intervals: %v", err)
	}

	if _, err := sched.BuildDueQueue(ctx, nil, 0); !errors.Is(err, ladder.ErrTooFewIntervals) {
		t.Errorf("BuildDueQueue error = %v, want ErrTooFewIntervals", err)
	}
	if _, err := sched.CountDue(ctx, nil); !errors.Is(err, ladder.ErrTooFewIntervals) {
		t.Errorf("CountDue error = %v, want ErrTooFewIntervals", err)
	}
}

func TestCountDueDoesNotPersistProgress(t *testing.T) {
	ms := store.NewMemStore()
	repos := ms.Repos()
	sched := NewScheduler(repos, testConfig())
	ctx := context.Background()

	addItem(t, repos, "a", testClock())

	n, err := sched.CountDue(ctx, nil)
	if err != nil {
		t.Fatalf("CountDue: %v", err)
	}
	if n != 3 {
		t.Errorf("CountDue = %d, want 3", n)
	}
	for _, sk := range store.Skills() {
		if _, err := repos.Progress.Get(ctx, "a", sk); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("CountDue persisted progress for skill %s", sk)
		}
	}

	// The queue builder is the one that materializes rows.
	if _, err := sched.BuildDueQueue(ctx, nil, 0); err != nil {
		t.Fatalf("BuildDueQueue: %v", err)
	}
	for _, sk := range store.Skills() {
		if _, err := repos.Progress.Get(ctx, "a", sk); err != nil {
			t.Errorf("BuildDueQueue did not persist progress for skill %s: %v", sk, err)
		}
	}
}

func TestBuildDueQueueIdempotent(t *testing.T) {
	ms := store.NewMemStore()
	repos := ms.Repos()
	sched := NewScheduler(repos, testConfig())
	ctx := context.Background()

	base := testClock()
	addItem(t, repos, "a", base)
	addItem(t, repos, "b", base.Add(time.Minute))

	first, err := sched.BuildDueQueue(ctx, nil, 0)
	if err != nil {
		t.Fatalf("BuildDueQueue: %v", err)
	}
	second, err := sched.BuildDueQueue(ctx, nil, 0)
	if err != nil {
		t.Fatalf("BuildDueQueue (again): %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("queue lengths differ: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Item.ID != second[i].Item.ID || first[i].Skill != second[i].Skill {
			t.Errorf("queue[%d] differs: %s/%s then %s/%s",
				i, first[i].Item.ID, first[i].Skill, second[i].Item.ID, second[i].Skill)
		}
	}
}

func TestCountDueMatchesUnlimitedQueue(t *testing.T) {
	ms := store.NewMemStore()
	repos := ms.Repos()
	cfg := testConfig()
	sched := NewScheduler(repos, cfg)
	ctx := context.Background()

	base := testClock()
	addItem(t, repos, "a", base)
	addItem(t, repos, "b", base.Add(time.Minute))
	addItem(t, repos, "c", base.Add(2*time.Minute))

	// Push some pairs into the future so the due set is a strict subset.
	for _, sk := range store.Skills() {
		err := repos.Progress.Put(ctx, &store.Progress{
			ItemID: "b", Skill: sk, Stage: 2, NextDue: "2026-04-01",
		})
		if err != nil {
			t.Fatalf("put progress: %v", err)
		}
	}

	queue, err := sched.BuildDueQueue(ctx, nil, 1000)
	if err != nil {
		t.Fatalf("BuildDueQueue: %v", err)
	}
	n, err := sched.CountDue(ctx, nil)
	if err != nil {
		t.Fatalf("CountDue: %v", err)
	}
	if n != len(queue) {
		t.Errorf("CountDue = %d, queue length = %d; must agree", n, len(queue))
	}
}
