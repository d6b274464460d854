// Package app wires the store and the engine services together for the
// command layer.
package app

import (
	"fmt"
	"time"

	"github.com/ysaito/tango/internal/schedule"
	"github.com/ysaito/tango/internal/session"
	"github.com/ysaito/tango/internal/stats"
	"github.com/ysaito/tango/internal/store"
	"github.com/ysaito/tango/internal/trophy"
)

// App bundles the opened store and the engine services.
type App struct {
	Store     *store.Store
	Repos     store.Repos
	Config    schedule.Config
	Scheduler *schedule.Scheduler
	Recorder  *schedule.Recorder
	Sessions  *session.Manager
	Stats     *stats.Service
	Trophies  *trophy.Evaluator
}

// Open opens the database at dbPath and constructs the services. An empty
// timezone keeps the default (JST).
func Open(dbPath, timezone string) (*App, error) {
	cfg := schedule.DefaultConfig()
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
		}
		cfg.Location = loc
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	repos := st.Repos()
	sched := schedule.NewScheduler(repos, cfg)
	return &App{
		Store:     st,
		Repos:     repos,
		Config:    cfg,
		Scheduler: sched,
		Recorder:  schedule.NewRecorder(st, cfg),
		Sessions:  session.NewManager(repos.Sessions),
		Stats:     stats.NewService(repos, sched, cfg),
		Trophies:  trophy.NewEvaluator(st, nil),
	}, nil
}

// Close closes the underlying store.
func (a *App) Close() error {
	return a.Store.Close()
}
