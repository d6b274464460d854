package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/ysaito/tango/internal/ladder"
	"github.com/ysaito/tango/internal/store"
)

// Entry is one unit of review work: an item, the skill under review, and
// the pair's current progress.
type Entry struct {
	Item     *store.Item
	Skill    string
	Progress *store.Progress
}

// Scheduler builds the bounded queue of (item, skill) pairs due today.
type Scheduler struct {
	repos store.Repos
	cfg   Config
}

// NewScheduler creates a scheduler over the given repositories.
func NewScheduler(repos store.Repos, cfg Config) *Scheduler {
	return &Scheduler{repos: repos, cfg: cfg}
}

// BuildDueQueue returns the due entries, most recently created item first,
// truncated to limit (<=0 means the configured queue limit). Progress rows
// missing for an (item, skill) pair are created with stage 0, due today.
func (s *Scheduler) BuildDueQueue(ctx context.Context, skills []string, limit int) ([]Entry, error) {
	var queue []Entry
	err := s.forEachDue(ctx, skills, true, func(e Entry) {
		queue = append(queue, e)
	})
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.cfg.queueLimit()
	}
	if len(queue) > limit {
		queue = queue[:limit]
	}
	return queue, nil
}

// CountDue reports how many entries BuildDueQueue would consider due, with
// no limit applied. It shares BuildDueQueue's membership test exactly but
// writes nothing: a missing row defaults to due today either way, so the
// count matches what the queue builder would materialize.
func (s *Scheduler) CountDue(ctx context.Context, skills []string) (int, error) {
	n := 0
	err := s.forEachDue(ctx, skills, false, func(Entry) { n++ })
	if err != nil {
		return 0, err
	}
	return n, nil
}

// forEachDue walks item x skill newest-item-first and calls fn for every
// due pair. Missing progress rows default to stage 0, due today; they are
// persisted only when persist is set. The interval ladder is read and
// validated once at the start so the due test cannot drift if settings
// change mid-operation.
func (s *Scheduler) forEachDue(ctx context.Context, skills []string, persist bool, fn func(Entry)) error {
	raw, err := s.repos.Settings.Intervals(ctx)
	if err != nil {
		return fmt.Errorf("read intervals: %w", err)
	}
	if _, err := ladder.Normalize(raw); err != nil {
		return err
	}

	if len(skills) == 0 {
		skills = store.Skills()
	}

	items, err := s.repos.Items.List(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	today := s.cfg.Today()

	// Items.List is oldest first; walking it backwards gives the deliberate
	// recency bias, stable for items created the same instant.
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		for _, skill := range skills {
			p, err := s.progressFor(ctx, it.ID, skill, today, persist)
			if err != nil {
				return err
			}
			if isDue(p.NextDue, today) {
				fn(Entry{Item: it, Skill: skill, Progress: p})
			}
		}
	}
	return nil
}

func (s *Scheduler) progressFor(ctx context.Context, itemID, skill, today string, persist bool) (*store.Progress, error) {
	p, err := s.repos.Progress.Get(ctx, itemID, skill)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("get progress %s/%s: %w", itemID, skill, err)
	}

	p = defaultProgress(itemID, skill, today)
	if !persist {
		return p, nil
	}
	if err := s.repos.Progress.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("init progress %s/%s: %w", itemID, skill, err)
	}
	return p, nil
}

// defaultProgress is the lazily-initialized row for a pair never reviewed:
// bottom of the ladder, due immediately.
func defaultProgress(itemID, skill, today string) *store.Progress {
	return &store.Progress{
		ItemID:  itemID,
		Skill:   skill,
		Stage:   0,
		NextDue: today,
	}
}
