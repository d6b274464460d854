package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/ysaito/tango/internal/ladder"
	"github.com/ysaito/tango/internal/status"
	"github.com/ysaito/tango/internal/store"
)

func newTestRecorder() (*Recorder, store.Repos) {
	ms := store.NewMemStore()
	return NewRecorder(ms, testConfig()), ms.Repos()
}

func TestRecordAnswerAdvanceAndReset(t *testing.T) {
	rec, repos := newTestRecorder()
	ctx := context.Background()
	addItem(t, repos, "w1", testClock())

	// First correct answer: one rung up, due ladder[1] = 2 days out.
	res, err := rec.RecordAnswer(ctx, "w1", store.SkillRecognition, true, 1200)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	p := res.Progress
	if p.Stage != 1 {
		t.Errorf("stage = %d, want 1", p.Stage)
	}
	if p.NextDue != "2026-03-12" {
		t.Errorf("next due = %s, want 2026-03-12", p.NextDue)
	}
	if p.CorrectCount != 1 || p.WrongCount != 0 {
		t.Errorf("counters = %d/%d, want 1/0", p.CorrectCount, p.WrongCount)
	}
	if p.Accuracy != 1.0 {
		t.Errorf("accuracy = %f, want 1.0", p.Accuracy)
	}

	// Wrong answer: back to the bottom, due ladder[0] = 1 day out.
	res, err = rec.RecordAnswer(ctx, "w1", store.SkillRecognition, false, 3000)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	p = res.Progress
	if p.Stage != 0 {
		t.Errorf("stage after wrong = %d, want 0", p.Stage)
	}
	if p.NextDue != "2026-03-11" {
		t.Errorf("next due after wrong = %s, want 2026-03-11", p.NextDue)
	}
	if p.CorrectCount != 1 || p.WrongCount != 1 {
		t.Errorf("counters = %d/%d, want 1/1", p.CorrectCount, p.WrongCount)
	}
	if p.Accuracy != 0.5 {
		t.Errorf("accuracy = %f, want 0.5", p.Accuracy)
	}
}

func TestRecordAnswerSaturatesAtTop(t *testing.T) {
	rec, repos := newTestRecorder()
	ctx := context.Background()
	addItem(t, repos, "w1", testClock())

	var p *store.Progress
	for i := 0; i < 10; i++ {
		res, err := rec.RecordAnswer(ctx, "w1", store.SkillProduction, true, 500)
		if err != nil {
			t.Fatalf("RecordAnswer #%d: %v", i+1, err)
		}
		p = res.Progress
	}

	if p.Stage != 5 {
		t.Errorf("stage = %d, want 5 (top of default ladder)", p.Stage)
	}
	if !p.Mastered {
		t.Error("mastered = false, want true at top rung")
	}
	if p.NextDue != "2026-04-09" {
		t.Errorf("next due = %s, want 2026-04-09 (30 days out)", p.NextDue)
	}
	if p.CorrectCount != 10 {
		t.Errorf("correct count = %d, want 10", p.CorrectCount)
	}
}

func TestRecordAnswerLogsAttempt(t *testing.T) {
	rec, repos := newTestRecorder()
	ctx := context.Background()
	addItem(t, repos, "w1", testClock())

	if _, err := rec.RecordAnswer(ctx, "w1", store.SkillListening, false, 4500); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	attempts, err := repos.Attempts.List(ctx)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("attempt count = %d, want 1", len(attempts))
	}
	a := attempts[0]
	if a.ItemID != "w1" || a.Skill != store.SkillListening || a.Result {
		t.Errorf("attempt = %+v, want w1/C/false", a)
	}
	if a.TS != testClock().UnixMilli() {
		t.Errorf("attempt ts = %d, want %d", a.TS, testClock().UnixMilli())
	}
	if a.ElapsedMs != 4500 {
		t.Errorf("attempt elapsed = %d, want 4500", a.ElapsedMs)
	}
}

func TestRecordAnswerRejectsUnknownSkill(t *testing.T) {
	rec, _ := newTestRecorder()
	if _, err := rec.RecordAnswer(context.Background(), "w1", "D", true, 0); err == nil {
		t.Error("RecordAnswer with unknown skill: expected error")
	}
}

func TestRecordAnswerAbortsOnInvalidLadder(t *testing.T) {
	rec, repos := newTestRecorder()
	ctx := context.Background()
	addItem(t, repos, "w1", testClock())

	if err := repos.Settings.SetIntervals(ctx, []int{1}); err != nil {
		t.Fatalf("set intervals: %v", err)
	}

	_, err := rec.RecordAnswer(ctx, "w1", store.SkillRecognition, true, 0)
	if !errors.Is(err, ladder.ErrTooFewIntervals) {
		t.Fatalf("RecordAnswer error = %v, want ErrTooFewIntervals", err)
	}

	// Nothing was written.
	if _, err := repos.Progress.Get(ctx, "w1", store.SkillRecognition); !errors.Is(err, store.ErrNotFound) {
		t.Error("progress written despite invalid ladder")
	}
	attempts, _ := repos.Attempts.List(ctx)
	if len(attempts) != 0 {
		t.Errorf("attempt count = %d despite invalid ladder, want 0", len(attempts))
	}
}

func TestRecordAnswerDerivesStatus(t *testing.T) {
	rec, repos := newTestRecorder()
	ctx := context.Background()
	addItem(t, repos, "w1", testClock())

	res, err := rec.RecordAnswer(ctx, "w1", store.SkillRecognition, true, 0)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if res.Status != status.NotYet {
		t.Errorf("status = %s, want NotYet (nothing mastered)", res.Status)
	}

	// Push recognition to the top rung; the item becomes readable.
	err = repos.Progress.Put(ctx, &store.Progress{
		ItemID: "w1", Skill: store.SkillRecognition, Stage: 4, NextDue: "2026-03-10",
	})
	if err != nil {
		t.Fatalf("put progress: %v", err)
	}
	res, err = rec.RecordAnswer(ctx, "w1", store.SkillRecognition, true, 0)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if res.Status != status.Readable {
		t.Errorf("status = %s, want Readable", res.Status)
	}
	if !res.StatusChanged {
		t.Error("StatusChanged = false, want true on NotYet -> Readable")
	}

	it, err := repos.Items.Get(ctx, "w1")
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if it.Status != string(status.Readable) {
		t.Errorf("stored item status = %s, want Readable", it.Status)
	}
}

func TestCompleteMasterIsSticky(t *testing.T) {
	rec, repos := newTestRecorder()
	ctx := context.Background()
	addItem(t, repos, "w1", testClock())

	// Production and listening already mastered; recognition one rung below.
	for _, sk := range []string{store.SkillProduction, store.SkillListening} {
		err := repos.Progress.Put(ctx, &store.Progress{
			ItemID: "w1", Skill: sk, Stage: 5, NextDue: "2026-05-01", Mastered: true,
		})
		if err != nil {
			t.Fatalf("put progress: %v", err)
		}
	}
	err := repos.Progress.Put(ctx, &store.Progress{
		ItemID: "w1", Skill: store.SkillRecognition, Stage: 4, NextDue: "2026-03-10",
	})
	if err != nil {
		t.Fatalf("put progress: %v", err)
	}

	// Mastering the last skill completes the item.
	res, err := rec.RecordAnswer(ctx, "w1", store.SkillRecognition, true, 0)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if res.Status != status.Master {
		t.Fatalf("status = %s, want Master", res.Status)
	}
	if !res.NewCompleteMaster {
		t.Error("NewCompleteMaster = false, want true on first full mastery")
	}
	for _, sk := range store.Skills() {
		p, err := repos.Progress.Get(ctx, "w1", sk)
		if err != nil {
			t.Fatalf("get progress %s: %v", sk, err)
		}
		if !p.CompleteMaster {
			t.Errorf("complete_master not stamped on skill %s", sk)
		}
	}

	// A later wrong answer drops the status but never the flag.
	res, err = rec.RecordAnswer(ctx, "w1", store.SkillRecognition, false, 0)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if res.Status != status.Listenable {
		t.Errorf("status after losing A = %s, want Listenable", res.Status)
	}
	if res.NewCompleteMaster {
		t.Error("NewCompleteMaster = true on a wrong answer")
	}
	p, err := repos.Progress.Get(ctx, "w1", store.SkillRecognition)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if !p.CompleteMaster {
		t.Error("complete_master cleared by a wrong answer; it is sticky")
	}

	// Re-mastering does not report a second completion.
	err = repos.Progress.Put(ctx, &store.Progress{
		ItemID: "w1", Skill: store.SkillRecognition, Stage: 4, NextDue: "2026-03-10",
		CompleteMaster: true,
	})
	if err != nil {
		t.Fatalf("put progress: %v", err)
	}
	res, err = rec.RecordAnswer(ctx, "w1", store.SkillRecognition, true, 0)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if res.Status != status.Master {
		t.Fatalf("status = %s, want Master", res.Status)
	}
	if res.NewCompleteMaster {
		t.Error("NewCompleteMaster = true on re-mastery, want false")
	}
}

func TestRecordAnswerToleratesDeletedItem(t *testing.T) {
	rec, repos := newTestRecorder()
	ctx := context.Background()

	// No item exists; progress and the attempt still land.
	res, err := rec.RecordAnswer(ctx, "ghost", store.SkillRecognition, true, 100)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if res.StatusChanged {
		t.Error("StatusChanged = true for a deleted item")
	}
	if _, err := repos.Progress.Get(ctx, "ghost", store.SkillRecognition); err != nil {
		t.Errorf("progress for deleted item not written: %v", err)
	}
	attempts, _ := repos.Attempts.List(ctx)
	if len(attempts) != 1 {
		t.Errorf("attempt count = %d, want 1", len(attempts))
	}
}

func TestRecordAnswerIdempotentCounters(t *testing.T) {
	rec, repos := newTestRecorder()
	ctx := context.Background()
	addItem(t, repos, "w1", testClock())

	answers := []bool{true, true, false, true, false}
	wantCorrect, wantWrong := 0, 0
	for _, correct := range answers {
		if correct {
			wantCorrect++
		} else {
			wantWrong++
		}
		res, err := rec.RecordAnswer(ctx, "w1", store.SkillRecognition, correct, 0)
		if err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
		p := res.Progress
		if p.CorrectCount != wantCorrect || p.WrongCount != wantWrong {
			t.Errorf("counters = %d/%d, want %d/%d", p.CorrectCount, p.WrongCount, wantCorrect, wantWrong)
		}
	}

	attempts, _ := repos.Attempts.List(ctx)
	if len(attempts) != len(answers) {
		t.Errorf("attempt count = %d, want %d", len(attempts), len(answers))
	}
}
