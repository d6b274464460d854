package stats

import (
	"context"
	"testing"
	"time"

	"github.com/ysaito/tango/internal/schedule"
	"github.com/ysaito/tango/internal/store"
)

var testClock = func() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func newTestService() (*Service, store.Repos) {
	ms := store.NewMemStore()
	repos := ms.Repos()
	cfg := schedule.Config{Location: time.UTC, Now: testClock}
	sched := schedule.NewScheduler(repos, cfg)
	return NewService(repos, sched, cfg), repos
}

func putItem(t *testing.T, repos store.Repos, id string) {
	t.Helper()
	err := repos.Items.Put(context.Background(), &store.Item{
		ID: id, Source: "word-" + id, Meanings: []string{"m"},
		Category: "word", Status: "NotYet", CreatedAt: testClock(),
	})
	if err != nil {
		t.Fatalf("put item: %v", err)
	}
}

func TestComputeEmpty(t *testing.T) {
	svc, _ := newTestService()
	sum, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if sum.TotalItems != 0 || sum.TotalAttempts != 0 || sum.DueCount != 0 {
		t.Errorf("empty summary = %+v, want zeros", sum)
	}
}

func TestComputeMasteryCounts(t *testing.T) {
	svc, repos := newTestService()
	ctx := context.Background()

	putItem(t, repos, "a")
	putItem(t, repos, "b")

	put := func(itemID, skill string, mastered bool) {
		err := repos.Progress.Put(ctx, &store.Progress{
			ItemID: itemID, Skill: skill, Stage: 5,
			NextDue: "2026-05-01", Mastered: mastered,
		})
		if err != nil {
			t.Fatalf("put progress: %v", err)
		}
	}

	// Item a: all three mastered. Item b: recognition only.
	put("a", store.SkillRecognition, true)
	put("a", store.SkillProduction, true)
	put("a", store.SkillListening, true)
	put("b", store.SkillRecognition, true)
	put("b", store.SkillProduction, false)
	put("b", store.SkillListening, false)

	sum, err := svc.Compute(ctx)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if sum.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", sum.TotalItems)
	}
	if sum.MasteredA != 2 || sum.MasteredB != 1 || sum.MasteredC != 1 {
		t.Errorf("mastered A/B/C = %d/%d/%d, want 2/1/1", sum.MasteredA, sum.MasteredB, sum.MasteredC)
	}
	if sum.CompleteMaster != 1 {
		t.Errorf("CompleteMaster = %d, want 1", sum.CompleteMaster)
	}
}

func TestComputeTodayWindow(t *testing.T) {
	svc, repos := newTestService()
	ctx := context.Background()

	now := testClock()
	add := func(ts time.Time, correct bool) {
		err := repos.Attempts.Append(ctx, &store.Attempt{
			ItemID: "a", Skill: store.SkillRecognition,
			Result: correct, TS: ts.UnixMilli(),
		})
		if err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	add(now, true)
	add(now.Add(-time.Hour), false)
	add(now.AddDate(0, 0, -1), true) // yesterday
	add(now.AddDate(0, 0, -30), true)

	sum, err := svc.Compute(ctx)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if sum.TotalAttempts != 4 || sum.TotalCorrect != 3 {
		t.Errorf("totals = %d/%d, want 4/3", sum.TotalAttempts, sum.TotalCorrect)
	}
	if sum.TodayAttempts != 2 || sum.TodayCorrect != 1 {
		t.Errorf("today = %d/%d, want 2/1", sum.TodayAttempts, sum.TodayCorrect)
	}
	if sum.TodayAccuracy != 0.5 {
		t.Errorf("today accuracy = %f, want 0.5", sum.TodayAccuracy)
	}
}

func TestComputeDueCount(t *testing.T) {
	svc, repos := newTestService()
	ctx := context.Background()

	putItem(t, repos, "a")

	sum, err := svc.Compute(ctx)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// One new item: all three skills due today.
	if sum.DueCount != 3 {
		t.Errorf("DueCount = %d, want 3", sum.DueCount)
	}
}
