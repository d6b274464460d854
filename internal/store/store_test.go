package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/ysaito/tango/internal/ladder"
)

// openTestStore opens a named shared in-memory database so each test gets
// its own isolated store across the connection pool.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testItem(id string) *Item {
	return &Item{
		ID:        id,
		Source:    "word-" + id,
		Meanings:  []string{"meaning one", "meaning two"},
		Category:  "word",
		Tags:      []string{"tag"},
		Example:   "example sentence",
		Note:      "a note",
		Status:    "NotYet",
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestItemRepoCRUD(t *testing.T) {
	repos := openTestStore(t).Repos()
	ctx := context.Background()

	if _, err := repos.Items.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing item error = %v, want ErrNotFound", err)
	}

	it := testItem("w1")
	if err := repos.Items.Put(ctx, it); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repos.Items.Get(ctx, "w1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Source != it.Source || !reflect.DeepEqual(got.Meanings, it.Meanings) {
		t.Errorf("got %+v, want %+v", got, it)
	}

	// Put on an existing id updates in place.
	it.Note = "revised note"
	if err := repos.Items.Put(ctx, it); err != nil {
		t.Fatalf("update put: %v", err)
	}
	got, _ = repos.Items.Get(ctx, "w1")
	if got.Note != "revised note" {
		t.Errorf("note after update = %q", got.Note)
	}
	n, err := repos.Items.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count after upsert = %d, want 1", n)
	}

	if err := repos.Items.SetStatus(ctx, "w1", "Readable"); err != nil {
		t.Fatalf("set status: %v", err)
	}
	got, _ = repos.Items.Get(ctx, "w1")
	if got.Status != "Readable" {
		t.Errorf("status = %q, want Readable", got.Status)
	}
	if err := repos.Items.SetStatus(ctx, "nope", "Readable"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetStatus missing item error = %v, want ErrNotFound", err)
	}

	if err := repos.Items.Delete(ctx, "w1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repos.Items.Get(ctx, "w1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
	// Deleting a missing item is not an error.
	if err := repos.Items.Delete(ctx, "w1"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestItemListOrderedByCreation(t *testing.T) {
	repos := openTestStore(t).Repos()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"b", "c", "a"} {
		it := testItem(id)
		it.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := repos.Items.Put(ctx, it); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}

	items, err := repos.Items.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := make([]string, len(items))
	for i, it := range items {
		got[i] = it.ID
	}
	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("list order = %v, want %v (oldest first)", got, want)
	}
}

func TestProgressRepoUpsert(t *testing.T) {
	repos := openTestStore(t).Repos()
	ctx := context.Background()

	if _, err := repos.Progress.Get(ctx, "w1", SkillRecognition); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing progress error = %v, want ErrNotFound", err)
	}

	p := &Progress{
		ItemID: "w1", Skill: SkillRecognition, Stage: 2, NextDue: "2026-03-14",
		CorrectCount: 5, WrongCount: 1, Accuracy: 5.0 / 6.0,
	}
	if err := repos.Progress.Put(ctx, p); err != nil {
		t.Fatalf("put: %v", err)
	}

	p.Stage = 3
	p.NextDue = "2026-03-17"
	if err := repos.Progress.Put(ctx, p); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repos.Progress.Get(ctx, "w1", SkillRecognition)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Stage != 3 || got.NextDue != "2026-03-17" {
		t.Errorf("got %+v after upsert", got)
	}

	// A second skill on the same item is a distinct row.
	q := &Progress{ItemID: "w1", Skill: SkillListening, Stage: 0, NextDue: "2026-03-10"}
	if err := repos.Progress.Put(ctx, q); err != nil {
		t.Fatalf("put second skill: %v", err)
	}
	rows, err := repos.Progress.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("row count = %d, want 2", len(rows))
	}
}

func TestAttemptRepoAppendOnly(t *testing.T) {
	repos := openTestStore(t).Repos()
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC).UnixMilli()
	for i := 0; i < 3; i++ {
		err := repos.Attempts.Append(ctx, &Attempt{
			ItemID: "w1", Skill: SkillRecognition,
			Result: i%2 == 0, TS: base + int64(i)*1000, ElapsedMs: 500,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	attempts, err := repos.Attempts.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("attempt count = %d, want 3", len(attempts))
	}
	for i := 1; i < len(attempts); i++ {
		if attempts[i].TS < attempts[i-1].TS {
			t.Errorf("attempts out of timestamp order at %d", i)
		}
	}
}

func TestSettingsDefaultAndRoundTrip(t *testing.T) {
	repos := openTestStore(t).Repos()
	ctx := context.Background()

	got, err := repos.Settings.Intervals(ctx)
	if err != nil {
		t.Fatalf("intervals (unset): %v", err)
	}
	if !reflect.DeepEqual(got, ladder.Default()) {
		t.Errorf("unset intervals = %v, want default %v", got, ladder.Default())
	}

	custom := []int{1, 3, 9, 27}
	if err := repos.Settings.SetIntervals(ctx, custom); err != nil {
		t.Fatalf("set intervals: %v", err)
	}
	got, err = repos.Settings.Intervals(ctx)
	if err != nil {
		t.Fatalf("intervals: %v", err)
	}
	if !reflect.DeepEqual(got, custom) {
		t.Errorf("intervals = %v, want %v", got, custom)
	}
}

func TestTrophyWriteOnce(t *testing.T) {
	repos := openTestStore(t).Repos()
	ctx := context.Background()

	first := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := repos.Trophies.Add(ctx, "registered_10", first); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Adding the same code again keeps the original record.
	if err := repos.Trophies.Add(ctx, "registered_10", first.AddDate(0, 0, 5)); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	owned, err := repos.Trophies.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(owned) != 1 {
		t.Fatalf("trophy count = %d, want 1", len(owned))
	}
	if !owned[0].AchievedAt.Equal(first) {
		t.Errorf("achieved at %v, want original %v", owned[0].AchievedAt, first)
	}
}

func TestSessionRepoRoundTrip(t *testing.T) {
	repos := openTestStore(t).Repos()
	ctx := context.Background()

	if _, err := repos.Sessions.Get(ctx, "schedule"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing session error = %v, want ErrNotFound", err)
	}

	blob := []byte(`{"id":"s1","queue":[]}`)
	if err := repos.Sessions.Put(ctx, "schedule", blob); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := repos.Sessions.Get(ctx, "schedule")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != string(blob) {
		t.Errorf("session blob = %s, want %s", got, blob)
	}

	blob2 := []byte(`{"id":"s2","queue":[]}`)
	if err := repos.Sessions.Put(ctx, "schedule", blob2); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = repos.Sessions.Get(ctx, "schedule")
	if string(got) != string(blob2) {
		t.Errorf("session blob after overwrite = %s", got)
	}

	if err := repos.Sessions.Delete(ctx, "schedule"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repos.Sessions.Get(ctx, "schedule"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
}

func TestRunTxRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sentinel := errors.New("boom")
	err := s.RunTx(ctx, func(r Repos) error {
		if err := r.Items.Put(ctx, testItem("w1")); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("RunTx error = %v, want sentinel", err)
	}

	if _, err := s.Repos().Items.Get(ctx, "w1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("item visible after rollback: %v", err)
	}
}

func TestWipe(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()

	if err := repos.Items.Put(ctx, testItem("w1")); err != nil {
		t.Fatalf("put item: %v", err)
	}
	if err := repos.Progress.Put(ctx, &Progress{ItemID: "w1", Skill: SkillRecognition, NextDue: "2026-03-10"}); err != nil {
		t.Fatalf("put progress: %v", err)
	}
	if err := repos.Attempts.Append(ctx, &Attempt{ItemID: "w1", Skill: SkillRecognition, TS: 1}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repos.Trophies.Add(ctx, "registered_10", time.Now()); err != nil {
		t.Fatalf("add trophy: %v", err)
	}
	if err := repos.Sessions.Put(ctx, "schedule", []byte("{}")); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := repos.Settings.SetIntervals(ctx, []int{2, 4, 8}); err != nil {
		t.Fatalf("set intervals: %v", err)
	}

	if err := s.Wipe(ctx); err != nil {
		t.Fatalf("Wipe: %v", err)
	}

	if n, _ := repos.Items.Count(ctx); n != 0 {
		t.Errorf("items after wipe = %d", n)
	}
	if rows, _ := repos.Progress.List(ctx); len(rows) != 0 {
		t.Errorf("progress after wipe = %d", len(rows))
	}
	if attempts, _ := repos.Attempts.List(ctx); len(attempts) != 0 {
		t.Errorf("attempts after wipe = %d", len(attempts))
	}
	if owned, _ := repos.Trophies.List(ctx); len(owned) != 0 {
		t.Errorf("trophies after wipe = %d", len(owned))
	}
	if _, err := repos.Sessions.Get(ctx, "schedule"); !errors.Is(err, ErrNotFound) {
		t.Errorf("session survived wipe: %v", err)
	}
	intervals, _ := repos.Settings.Intervals(ctx)
	if !reflect.DeepEqual(intervals, ladder.Default()) {
		t.Errorf("intervals after wipe = %v, want default", intervals)
	}
}
