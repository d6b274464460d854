package store

import (
	"context"
	"fmt"

	"github.com/ysaito/tango/ent"
	"github.com/ysaito/tango/ent/attempt"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, a *Attempt) error {
	_, err := r.client.Attempt.Create().
		SetItemID(a.ItemID).
		SetSkill(a.Skill).
		SetResult(a.Result).
		SetTs(a.TS).
		SetElapsedMs(a.ElapsedMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append attempt %s/%s: %w", a.ItemID, a.Skill, err)
	}
	return nil
}

func (r *attemptRepo) List(ctx context.Context) ([]*Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Order(ent.Asc(attempt.FieldTs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	out := make([]*Attempt, len(rows))
	for i, e := range rows {
		out[i] = &Attempt{
			ItemID:    e.ItemID,
			Skill:     e.Skill,
			Result:    e.Result,
			TS:        e.Ts,
			ElapsedMs: e.ElapsedMs,
		}
	}
	return out, nil
}
