package store

import (
	"context"
	"fmt"

	"github.com/ysaito/tango/internal/ladder"
)

// Wipe deletes every record and restores the default interval ladder.
// Used by explicit data-reset tooling only; the engine never calls it.
func (s *Store) Wipe(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	c := tx.Client()
	wipe := func() error {
		if _, err := c.Attempt.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("wipe attempts: %w", err)
		}
		if _, err := c.Progress.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("wipe progress: %w", err)
		}
		if _, err := c.Item.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("wipe items: %w", err)
		}
		if _, err := c.Trophy.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("wipe trophies: %w", err)
		}
		if _, err := c.Session.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("wipe sessions: %w", err)
		}
		if _, err := c.Setting.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("wipe settings: %w", err)
		}
		return reposFor(c).Settings.SetIntervals(ctx, ladder.Default())
	}

	if err := wipe(); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
