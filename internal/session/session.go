// Package session persists an in-flight review session so an interrupted
// run resumes with the remaining queue and prior answers intact.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ysaito/tango/internal/schedule"
	"github.com/ysaito/tango/internal/store"
)

// ScheduleID is the standing session slot for the daily review loop.
const ScheduleID = "schedule"

// Key identifies one unit of review work. Using a composite type instead
// of a concatenated string keeps the merge logic honest.
type Key struct {
	ItemID string `json:"item_id"`
	Skill  string `json:"skill"`
}

// Answer is one graded answer taken during the session.
type Answer struct {
	Key
	Correct bool `json:"correct"`
}

// State is the persist-able session: the remaining queue and the answers
// recorded so far. Queue entries hold keys only; items are re-fetched on
// resume so deletions don't resurrect stale data.
type State struct {
	ID         string   `json:"id"`
	Queue      []Key    `json:"queue"`
	Answers    []Answer `json:"answers"`
	TotalCount int      `json:"total_count"`
}

// NewState starts a session over the given due entries.
func NewState(entries []schedule.Entry) *State {
	st := &State{
		ID:    uuid.NewString(),
		Queue: keysOf(entries),
	}
	st.TotalCount = len(st.Queue)
	return st
}

// Merge unions newly due entries into a saved session, keyed by
// (itemID, skill). Entries already queued or already answered are not
// duplicated; saved queue order is preserved and new entries keep their
// due-queue order at the tail.
func Merge(saved *State, due []schedule.Entry) *State {
	seen := make(map[Key]bool, len(saved.Queue)+len(saved.Answers))
	for _, k := range saved.Queue {
		seen[k] = true
	}
	for _, a := range saved.Answers {
		seen[a.Key] = true
	}

	merged := &State{
		ID:      saved.ID,
		Queue:   append([]Key(nil), saved.Queue...),
		Answers: append([]Answer(nil), saved.Answers...),
	}
	for _, e := range due {
		k := Key{ItemID: e.Item.ID, Skill: e.Skill}
		if seen[k] {
			continue
		}
		seen[k] = true
		merged.Queue = append(merged.Queue, k)
	}
	merged.TotalCount = len(merged.Queue) + len(merged.Answers)
	return merged
}

// Advance records the answer for the queue head and pops it.
func (s *State) Advance(correct bool) {
	if len(s.Queue) == 0 {
		return
	}
	head := s.Queue[0]
	s.Queue = s.Queue[1:]
	s.Answers = append(s.Answers, Answer{Key: head, Correct: correct})
}

// WrongKeys returns the keys answered incorrectly, in answer order.
func (s *State) WrongKeys() []Key {
	var out []Key
	for _, a := range s.Answers {
		if !a.Correct {
			out = append(out, a.Key)
		}
	}
	return out
}

func keysOf(entries []schedule.Entry) []Key {
	keys := make([]Key, len(entries))
	for i, e := range entries {
		keys[i] = Key{ItemID: e.Item.ID, Skill: e.Skill}
	}
	return keys
}

// Manager loads and saves session state through the opaque blob store.
type Manager struct {
	sessions store.SessionRepo
}

// NewManager creates a session manager.
func NewManager(sessions store.SessionRepo) *Manager {
	return &Manager{sessions: sessions}
}

// Load returns the saved state for id, or nil if none exists.
func (m *Manager) Load(ctx context.Context, id string) (*State, error) {
	data, err := m.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &st, nil
}

// Save persists the state under id. Called after every single answer so a
// crash loses nothing already graded.
func (m *Manager) Save(ctx context.Context, id string, st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	if err := m.sessions.Put(ctx, id, data); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}

// Clear removes the saved state for id.
func (m *Manager) Clear(ctx context.Context, id string) error {
	if err := m.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("clear session %s: %w", id, err)
	}
	return nil
}
