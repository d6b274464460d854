package store

import (
	"context"
	"fmt"

	"github.com/ysaito/tango/ent"
	"github.com/ysaito/tango/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, itemID, skill string) (*Progress, error) {
	e, err := r.client.Progress.Query().
		Where(progress.ItemID(itemID), progress.Skill(skill)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query progress %s/%s: %w", itemID, skill, err)
	}
	return entProgressToProgress(e), nil
}

func (r *progressRepo) Put(ctx context.Context, p *Progress) error {
	n, err := r.client.Progress.Update().
		Where(progress.ItemID(p.ItemID), progress.Skill(p.Skill)).
		SetStage(p.Stage).
		SetNextDue(p.NextDue).
		SetCorrectCount(p.CorrectCount).
		SetWrongCount(p.WrongCount).
		SetAccuracy(p.Accuracy).
		SetMastered(p.Mastered).
		SetCompleteMaster(p.CompleteMaster).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress %s/%s: %w", p.ItemID, p.Skill, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Progress.Create().
		SetItemID(p.ItemID).
		SetSkill(p.Skill).
		SetStage(p.Stage).
		SetNextDue(p.NextDue).
		SetCorrectCount(p.CorrectCount).
		SetWrongCount(p.WrongCount).
		SetAccuracy(p.Accuracy).
		SetMastered(p.Mastered).
		SetCompleteMaster(p.CompleteMaster).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create progress %s/%s: %w", p.ItemID, p.Skill, err)
	}
	return nil
}

func (r *progressRepo) List(ctx context.Context) ([]*Progress, error) {
	rows, err := r.client.Progress.Query().
		Order(ent.Asc(progress.FieldItemID), ent.Asc(progress.FieldSkill)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	out := make([]*Progress, len(rows))
	for i, e := range rows {
		out[i] = entProgressToProgress(e)
	}
	return out, nil
}

func entProgressToProgress(e *ent.Progress) *Progress {
	return &Progress{
		ItemID:         e.ItemID,
		Skill:          e.Skill,
		Stage:          e.Stage,
		NextDue:        e.NextDue,
		CorrectCount:   e.CorrectCount,
		WrongCount:     e.WrongCount,
		Accuracy:       e.Accuracy,
		Mastered:       e.Mastered,
		CompleteMaster: e.CompleteMaster,
	}
}
