// Package port moves the underlying stores in and out of the database as a
// whole: JSON dump/reload and bulk vocabulary import from spreadsheets.
// Reload re-validates the invariants the engine relies on.
package port

import (
	"context"
	"fmt"

	"github.com/ysaito/tango/internal/catalog"
	"github.com/ysaito/tango/internal/ladder"
	"github.com/ysaito/tango/internal/store"
)

// Dump is the JSON shape of a full export.
type Dump struct {
	Version   int               `json:"version"`
	Intervals []int             `json:"intervals"`
	Items     []*store.Item     `json:"items"`
	Progress  []*store.Progress `json:"progress"`
	Attempts  []*store.Attempt  `json:"attempts"`
	Trophies  []*store.Trophy   `json:"trophies"`
}

// DumpVersion is the current export format version.
const DumpVersion = 1

// Export reads every store into a Dump.
func Export(ctx context.Context, repos store.Repos) (*Dump, error) {
	d := &Dump{Version: DumpVersion}

	var err error
	if d.Intervals, err = repos.Settings.Intervals(ctx); err != nil {
		return nil, err
	}
	if d.Items, err = repos.Items.List(ctx); err != nil {
		return nil, err
	}
	if d.Progress, err = repos.Progress.List(ctx); err != nil {
		return nil, err
	}
	if d.Attempts, err = repos.Attempts.List(ctx); err != nil {
		return nil, err
	}
	if d.Trophies, err = repos.Trophies.List(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

// Import writes a Dump into the stores after validating it. Items are
// validated against the catalog limits; progress rows with a stage outside
// the imported ladder, unknown skills, or negative counters are rejected.
// Orphaned progress and attempts (item deleted) are allowed through,
// matching what the engine tolerates at runtime. All writes happen in one
// transaction: a rejected dump or a storage failure leaves the stores
// untouched.
func Import(ctx context.Context, tx store.TxRunner, d *Dump) error {
	intervals, err := ladder.Normalize(d.Intervals)
	if err != nil {
		return err
	}

	for _, it := range d.Items {
		if err := catalog.Validate(it); err != nil {
			return fmt.Errorf("item %s: %w", it.ID, err)
		}
	}
	for _, p := range d.Progress {
		if !store.ValidSkill(p.Skill) {
			return fmt.Errorf("progress %s: unknown skill %q", p.ItemID, p.Skill)
		}
		if p.Stage < 0 || p.Stage >= len(intervals) {
			return fmt.Errorf("progress %s/%s: stage %d outside ladder of %d", p.ItemID, p.Skill, p.Stage, len(intervals))
		}
		if p.CorrectCount < 0 || p.WrongCount < 0 {
			return fmt.Errorf("progress %s/%s: negative counters", p.ItemID, p.Skill)
		}
	}
	for _, a := range d.Attempts {
		if !store.ValidSkill(a.Skill) {
			return fmt.Errorf("attempt for %s: unknown skill %q", a.ItemID, a.Skill)
		}
	}

	return tx.RunTx(ctx, func(repos store.Repos) error {
		if err := repos.Settings.SetIntervals(ctx, intervals); err != nil {
			return err
		}
		for _, it := range d.Items {
			if err := repos.Items.Put(ctx, it); err != nil {
				return err
			}
		}
		for _, p := range d.Progress {
			if err := repos.Progress.Put(ctx, p); err != nil {
				return err
			}
		}
		for _, a := range d.Attempts {
			if err := repos.Attempts.Append(ctx, a); err != nil {
				return err
			}
		}
		for _, t := range d.Trophies {
			if err := repos.Trophies.Add(ctx, t.Code, t.AchievedAt); err != nil {
				return err
			}
		}
		return nil
	})
}
