package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ysaito/tango/ent"
	"github.com/ysaito/tango/ent/trophy"
)

// trophyRepo implements TrophyRepo using the ent client.
type trophyRepo struct {
	client *ent.Client
}

func (r *trophyRepo) List(ctx context.Context) ([]*Trophy, error) {
	rows, err := r.client.Trophy.Query().
		Order(ent.Asc(trophy.FieldAchievedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trophies: %w", err)
	}
	out := make([]*Trophy, len(rows))
	for i, e := range rows {
		out[i] = &Trophy{Code: e.Code, AchievedAt: e.AchievedAt}
	}
	return out, nil
}

func (r *trophyRepo) Add(ctx context.Context, code string, at time.Time) error {
	_, err := r.client.Trophy.Create().
		SetCode(code).
		SetAchievedAt(at).
		Save(ctx)
	if err != nil {
		// Write-once: an existing code stays as first earned.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("add trophy %s: %w", code, err)
	}
	return nil
}
