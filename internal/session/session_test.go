package session

import (
	"context"
	"testing"

	"github.com/ysaito/tango/internal/schedule"
	"github.com/ysaito/tango/internal/store"
)

func entry(itemID, skill string) schedule.Entry {
	return schedule.Entry{
		Item:  &store.Item{ID: itemID, Source: "word-" + itemID},
		Skill: skill,
	}
}

func TestNewState(t *testing.T) {
	st := NewState([]schedule.Entry{
		entry("a", store.SkillRecognition),
		entry("a", store.SkillProduction),
		entry("b", store.SkillRecognition),
	})

	if st.ID == "" {
		t.Error("new state has empty id")
	}
	if st.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", st.TotalCount)
	}
	if len(st.Queue) != 3 {
		t.Fatalf("queue length = %d, want 3", len(st.Queue))
	}
	if st.Queue[0] != (Key{ItemID: "a", Skill: store.SkillRecognition}) {
		t.Errorf("queue[0] = %+v", st.Queue[0])
	}
}

func TestMergeSkipsQueuedAndAnswered(t *testing.T) {
	saved := &State{
		ID:    "s1",
		Queue: []Key{{ItemID: "a", Skill: "A"}, {ItemID: "b", Skill: "A"}},
		Answers: []Answer{
			{Key: Key{ItemID: "c", Skill: "A"}, Correct: true},
		},
		TotalCount: 3,
	}

	merged := Merge(saved, []schedule.Entry{
		entry("a", "A"), // already queued
		entry("c", "A"), // already answered
		entry("d", "A"), // genuinely new
		entry("a", "B"), // same item, different skill: new
	})

	if merged.ID != "s1" {
		t.Errorf("merged id = %s, want s1 (saved session keeps its identity)", merged.ID)
	}
	wantQueue := []Key{
		{ItemID: "a", Skill: "A"},
		{ItemID: "b", Skill: "A"},
		{ItemID: "d", Skill: "A"},
		{ItemID: "a", Skill: "B"},
	}
	if len(merged.Queue) != len(wantQueue) {
		t.Fatalf("merged queue = %v, want %v", merged.Queue, wantQueue)
	}
	for i, k := range wantQueue {
		if merged.Queue[i] != k {
			t.Errorf("merged.Queue[%d] = %+v, want %+v", i, merged.Queue[i], k)
		}
	}
	if len(merged.Answers) != 1 {
		t.Errorf("answers length = %d, want 1 (answers survive merge)", len(merged.Answers))
	}
	if merged.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", merged.TotalCount)
	}
}

func TestMergeEmptyDue(t *testing.T) {
	saved := &State{
		ID:         "s1",
		Queue:      []Key{{ItemID: "a", Skill: "A"}},
		TotalCount: 1,
	}
	merged := Merge(saved, nil)
	if len(merged.Queue) != 1 || merged.TotalCount != 1 {
		t.Errorf("merge with no due entries changed the state: %+v", merged)
	}
}

func TestAdvance(t *testing.T) {
	st := NewState([]schedule.Entry{
		entry("a", "A"),
		entry("b", "A"),
	})

	st.Advance(true)
	st.Advance(false)

	if len(st.Queue) != 0 {
		t.Errorf("queue length = %d, want 0", len(st.Queue))
	}
	if len(st.Answers) != 2 {
		t.Fatalf("answers length = %d, want 2", len(st.Answers))
	}
	if !st.Answers[0].Correct || st.Answers[0].ItemID != "a" {
		t.Errorf("answers[0] = %+v", st.Answers[0])
	}
	if st.Answers[1].Correct || st.Answers[1].ItemID != "b" {
		t.Errorf("answers[1] = %+v", st.Answers[1])
	}

	// Advancing an empty queue is a no-op.
	st.Advance(true)
	if len(st.Answers) != 2 {
		t.Errorf("Advance on empty queue appended an answer")
	}
}

func TestWrongKeys(t *testing.T) {
	st := NewState([]schedule.Entry{
		entry("a", "A"),
		entry("b", "B"),
		entry("c", "C"),
	})
	st.Advance(true)
	st.Advance(false)
	st.Advance(false)

	wrong := st.WrongKeys()
	if len(wrong) != 2 {
		t.Fatalf("wrong keys = %v, want 2 entries", wrong)
	}
	if wrong[0].ItemID != "b" || wrong[1].ItemID != "c" {
		t.Errorf("wrong keys = %v, want b then c", wrong)
	}
}

func TestManagerRoundTrip(t *testing.T) {
	ms := store.NewMemStore()
	mgr := NewManager(ms.Repos().Sessions)
	ctx := context.Background()

	// Nothing saved yet.
	st, err := mgr.Load(ctx, ScheduleID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st != nil {
		t.Fatalf("Load on empty store = %+v, want nil", st)
	}

	orig := NewState([]schedule.Entry{entry("a", "A"), entry("b", "C")})
	orig.Advance(true)
	if err := mgr.Save(ctx, ScheduleID, orig); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := mgr.Load(ctx, ScheduleID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil after Save")
	}
	if got.ID != orig.ID || got.TotalCount != 2 {
		t.Errorf("loaded state = %+v, want id %s total 2", got, orig.ID)
	}
	if len(got.Queue) != 1 || got.Queue[0].ItemID != "b" {
		t.Errorf("loaded queue = %v, want [b/C]", got.Queue)
	}
	if len(got.Answers) != 1 || !got.Answers[0].Correct {
		t.Errorf("loaded answers = %v", got.Answers)
	}

	if err := mgr.Clear(ctx, ScheduleID); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	st, err = mgr.Load(ctx, ScheduleID)
	if err != nil {
		t.Fatalf("Load after Clear: %v", err)
	}
	if st != nil {
		t.Errorf("Load after Clear = %+v, want nil", st)
	}
}
