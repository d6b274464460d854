// Package stats aggregates the progress store and the attempt log into the
// summary the dashboard and the trophy evaluator consume. Pure reads, no
// side effects.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/ysaito/tango/internal/schedule"
	"github.com/ysaito/tango/internal/store"
)

// Summary is the aggregate view over all items, progress rows, and
// attempts.
type Summary struct {
	TotalItems     int
	MasteredA      int
	MasteredB      int
	MasteredC      int
	CompleteMaster int

	TotalAttempts int
	TotalCorrect  int

	TodayAttempts int
	TodayCorrect  int
	TodayAccuracy float64

	DueCount int
}

// Service computes summaries over the given repositories.
type Service struct {
	repos store.Repos
	sched *schedule.Scheduler
	cfg   schedule.Config
}

// NewService creates a stats service. The scheduler supplies the due count
// with the same membership test the review queue uses.
func NewService(repos store.Repos, sched *schedule.Scheduler, cfg schedule.Config) *Service {
	return &Service{repos: repos, sched: sched, cfg: cfg}
}

// Compute aggregates the current state.
func (s *Service) Compute(ctx context.Context) (*Summary, error) {
	sum := &Summary{}

	var err error
	sum.TotalItems, err = s.repos.Items.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	progress, err := s.repos.Progress.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	masteredByItem := make(map[string]map[string]bool)
	for _, p := range progress {
		if p.Mastered {
			switch p.Skill {
			case store.SkillRecognition:
				sum.MasteredA++
			case store.SkillProduction:
				sum.MasteredB++
			case store.SkillListening:
				sum.MasteredC++
			}
		}
		m := masteredByItem[p.ItemID]
		if m == nil {
			m = make(map[string]bool, 3)
			masteredByItem[p.ItemID] = m
		}
		m[p.Skill] = p.Mastered
	}
	for _, m := range masteredByItem {
		if m[store.SkillRecognition] && m[store.SkillProduction] && m[store.SkillListening] {
			sum.CompleteMaster++
		}
	}

	attempts, err := s.repos.Attempts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	today := s.cfg.Today()
	loc := attemptLocation(s.cfg)
	for _, a := range attempts {
		sum.TotalAttempts++
		if a.Result {
			sum.TotalCorrect++
		}
		if time.UnixMilli(a.TS).In(loc).Format(schedule.DateLayout) == today {
			sum.TodayAttempts++
			if a.Result {
				sum.TodayCorrect++
			}
		}
	}
	if sum.TodayAttempts > 0 {
		sum.TodayAccuracy = float64(sum.TodayCorrect) / float64(sum.TodayAttempts)
	}

	sum.DueCount, err = s.sched.CountDue(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count due: %w", err)
	}

	return sum, nil
}

func attemptLocation(cfg schedule.Config) *time.Location {
	if cfg.Location != nil {
		return cfg.Location
	}
	return time.Local
}
