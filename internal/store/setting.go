package store

import (
	"context"
	"fmt"

	"github.com/ysaito/tango/ent"
	"github.com/ysaito/tango/ent/setting"

	"github.com/ysaito/tango/internal/ladder"
)

// spacingID is the settings row carrying the interval ladder.
const spacingID = "spacing"

// settingRepo implements SettingsRepo using the ent client.
type settingRepo struct {
	client *ent.Client
}

func (r *settingRepo) Intervals(ctx context.Context) ([]int, error) {
	e, err := r.client.Setting.Query().
		Where(setting.ID(spacingID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ladder.Default(), nil
		}
		return nil, fmt.Errorf("query spacing setting: %w", err)
	}
	out := make([]int, len(e.Intervals))
	copy(out, e.Intervals)
	return out, nil
}

func (r *settingRepo) SetIntervals(ctx context.Context, intervals []int) error {
	n, err := r.client.Setting.Update().
		Where(setting.ID(spacingID)).
		SetIntervals(intervals).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update spacing setting: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Setting.Create().
		SetID(spacingID).
		SetIntervals(intervals).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create spacing setting: %w", err)
	}
	return nil
}
