package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ysaito/tango/internal/ladder"
)

// MemStore is an in-memory implementation of the repository bundle, used by
// engine unit tests in place of the SQLite store. It applies RunTx functions
// directly: with a single writer there is nothing to roll back in tests.
type MemStore struct {
	mu        sync.Mutex
	items     map[string]*Item
	itemOrder []string
	progress  map[string]*Progress // keyed itemID + "\x00" + skill
	attempts  []*Attempt
	intervals []int
	trophies  map[string]*Trophy
	sessions  map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		items:    make(map[string]*Item),
		progress: make(map[string]*Progress),
		trophies: make(map[string]*Trophy),
		sessions: make(map[string][]byte),
	}
}

// Repos returns the repository bundle backed by this store.
func (m *MemStore) Repos() Repos {
	return Repos{
		Items:    (*memItemRepo)(m),
		Progress: (*memProgressRepo)(m),
		Attempts: (*memAttemptRepo)(m),
		Settings: (*memSettingRepo)(m),
		Trophies: (*memTrophyRepo)(m),
		Sessions: (*memSessionRepo)(m),
	}
}

// RunTx applies fn against the live bundle.
func (m *MemStore) RunTx(ctx context.Context, fn func(Repos) error) error {
	return fn(m.Repos())
}

func progressKey(itemID, skill string) string {
	return itemID + "\x00" + skill
}

type memItemRepo MemStore

func (m *memItemRepo) Put(ctx context.Context, it *Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *it
	if _, ok := m.items[it.ID]; !ok {
		m.itemOrder = append(m.itemOrder, it.ID)
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = time.Now()
		}
	}
	m.items[it.ID] = &cp
	return nil
}

func (m *memItemRepo) Get(ctx context.Context, id string) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (m *memItemRepo) List(ctx context.Context) ([]*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Item, 0, len(m.items))
	for _, id := range m.itemOrder {
		if it, ok := m.items[id]; ok {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memItemRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *memItemRepo) SetStatus(ctx context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return ErrNotFound
	}
	it.Status = status
	return nil
}

func (m *memItemRepo) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items), nil
}

type memProgressRepo MemStore

func (m *memProgressRepo) Get(ctx context.Context, itemID, skill string) (*Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.progress[progressKey(itemID, skill)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProgressRepo) Put(ctx context.Context, p *Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.progress[progressKey(p.ItemID, p.Skill)] = &cp
	return nil
}

func (m *memProgressRepo) List(ctx context.Context) ([]*Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Progress, 0, len(m.progress))
	for _, p := range m.progress {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemID != out[j].ItemID {
			return out[i].ItemID < out[j].ItemID
		}
		return out[i].Skill < out[j].Skill
	})
	return out, nil
}

type memAttemptRepo MemStore

func (m *memAttemptRepo) Append(ctx context.Context, a *Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.attempts = append(m.attempts, &cp)
	return nil
}

func (m *memAttemptRepo) List(ctx context.Context) ([]*Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Attempt, len(m.attempts))
	for i, a := range m.attempts {
		cp := *a
		out[i] = &cp
	}
	return out, nil
}

type memSettingRepo MemStore

func (m *memSettingRepo) Intervals(ctx context.Context) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.intervals == nil {
		return ladder.Default(), nil
	}
	out := make([]int, len(m.intervals))
	copy(out, m.intervals)
	return out, nil
}

func (m *memSettingRepo) SetIntervals(ctx context.Context, intervals []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intervals = make([]int, len(intervals))
	copy(m.intervals, intervals)
	return nil
}

type memTrophyRepo MemStore

func (m *memTrophyRepo) List(ctx context.Context) ([]*Trophy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Trophy, 0, len(m.trophies))
	for _, t := range m.trophies {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (m *memTrophyRepo) Add(ctx context.Context, code string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trophies[code]; ok {
		return nil
	}
	m.trophies[code] = &Trophy{Code: code, AchievedAt: at}
	return nil
}

type memSessionRepo MemStore

func (m *memSessionRepo) Get(ctx context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *memSessionRepo) Put(ctx context.Context, id string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.sessions[id] = cp
	return nil
}

func (m *memSessionRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
