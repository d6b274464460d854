package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ysaito/tango/internal/ladder"
	"github.com/ysaito/tango/internal/status"
	"github.com/ysaito/tango/internal/store"
)

// Result reports what a recorded answer changed.
type Result struct {
	// Progress is the updated row for the answered pair.
	Progress *store.Progress

	// Status is the item's overall status after the answer.
	Status status.Status

	// StatusChanged is true when the item's stored status was rewritten.
	StatusChanged bool

	// NewCompleteMaster is true when this answer completed mastery of all
	// three skills for the first time.
	NewCompleteMaster bool
}

// Recorder applies graded answers: ladder movement, counters, the attempt
// log, cross-skill status, and the sticky complete-master flag, all inside
// one store transaction.
type Recorder struct {
	tx  store.TxRunner
	cfg Config

	// mu serializes recording. The UI can fire the next answer before the
	// previous one's writes settle; a single in-process lock is enough for
	// one learner.
	mu sync.Mutex
}

// NewRecorder creates a recorder writing through tx.
func NewRecorder(tx store.TxRunner, cfg Config) *Recorder {
	return &Recorder{tx: tx, cfg: cfg}
}

// RecordAnswer applies one graded answer for (itemID, skill). The interval
// ladder is read once; an invalid ladder configuration aborts before any
// state change.
func (r *Recorder) RecordAnswer(ctx context.Context, itemID, skill string, correct bool, elapsedMs int64) (*Result, error) {
	if !store.ValidSkill(skill) {
		return nil, fmt.Errorf("unknown skill %q", skill)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var res *Result
	err := r.tx.RunTx(ctx, func(repos store.Repos) error {
		var err error
		res, err = r.record(ctx, repos, itemID, skill, correct, elapsedMs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Recorder) record(ctx context.Context, repos store.Repos, itemID, skill string, correct bool, elapsedMs int64) (*Result, error) {
	raw, err := repos.Settings.Intervals(ctx)
	if err != nil {
		return nil, fmt.Errorf("read intervals: %w", err)
	}
	intervals, err := ladder.Normalize(raw)
	if err != nil {
		return nil, err
	}

	today := r.cfg.Today()
	p, err := repos.Progress.Get(ctx, itemID, skill)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("get progress %s/%s: %w", itemID, skill, err)
		}
		p = defaultProgress(itemID, skill, today)
	}

	p.Stage = ladder.NextStage(p.Stage, len(intervals), correct)
	p.NextDue = r.cfg.DueDate(intervals[p.Stage])
	if correct {
		p.CorrectCount++
	} else {
		p.WrongCount++
	}
	p.Accuracy = float64(p.CorrectCount) / float64(p.CorrectCount+p.WrongCount)
	p.Mastered = ladder.IsMastered(p.Stage, len(intervals))

	if err := repos.Progress.Put(ctx, p); err != nil {
		return nil, err
	}

	// The attempt is historical fact, recorded whatever the ladder outcome.
	att := &store.Attempt{
		ItemID:    itemID,
		Skill:     skill,
		Result:    correct,
		TS:        r.cfg.now().UnixMilli(),
		ElapsedMs: elapsedMs,
	}
	if err := repos.Attempts.Append(ctx, att); err != nil {
		return nil, err
	}

	mastery, rows, err := r.masteryBySkill(ctx, repos, itemID, p)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Progress: p,
		Status: status.Derive(
			mastery[store.SkillRecognition],
			mastery[store.SkillProduction],
			mastery[store.SkillListening],
		),
	}

	changed, err := r.writeStatus(ctx, repos, itemID, res.Status)
	if err != nil {
		return nil, err
	}
	res.StatusChanged = changed

	if res.Status == status.Master {
		newly, err := r.propagateCompleteMaster(ctx, repos, rows)
		if err != nil {
			return nil, err
		}
		res.NewCompleteMaster = newly
	}
	return res, nil
}

// masteryBySkill collects the per-skill mastered flags for the item, using
// the just-computed row for the answered skill.
func (r *Recorder) masteryBySkill(ctx context.Context, repos store.Repos, itemID string, current *store.Progress) (map[string]bool, []*store.Progress, error) {
	mastery := make(map[string]bool, 3)
	rows := make([]*store.Progress, 0, 3)
	for _, sk := range store.Skills() {
		if sk == current.Skill {
			mastery[sk] = current.Mastered
			rows = append(rows, current)
			continue
		}
		p, err := repos.Progress.Get(ctx, itemID, sk)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				mastery[sk] = false
				continue
			}
			return nil, nil, fmt.Errorf("get progress %s/%s: %w", itemID, sk, err)
		}
		mastery[sk] = p.Mastered
		rows = append(rows, p)
	}
	return mastery, rows, nil
}

// writeStatus updates the item's stored status only when it changed. A
// deleted item is tolerated: the progress and attempt stand as history.
func (r *Recorder) writeStatus(ctx context.Context, repos store.Repos, itemID string, st status.Status) (bool, error) {
	it, err := repos.Items.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get item %s: %w", itemID, err)
	}
	if it.Status == string(st) {
		return false, nil
	}
	if err := repos.Items.SetStatus(ctx, itemID, string(st)); err != nil {
		return false, err
	}
	return true, nil
}

// propagateCompleteMaster stamps the sticky flag on all three rows the
// first time every skill is mastered at once. It reports whether any row
// was newly stamped.
func (r *Recorder) propagateCompleteMaster(ctx context.Context, repos store.Repos, rows []*store.Progress) (bool, error) {
	pending := false
	for _, p := range rows {
		if !p.CompleteMaster {
			pending = true
			break
		}
	}
	if !pending {
		return false, nil
	}

	for _, p := range rows {
		if p.CompleteMaster {
			continue
		}
		p.CompleteMaster = true
		if err := repos.Progress.Put(ctx, p); err != nil {
			return false, err
		}
	}
	return true, nil
}
