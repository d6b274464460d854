package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get-style lookups when no record exists.
var ErrNotFound = errors.New("record not found")

// Skills are the three independent learning modalities tracked per item.
const (
	SkillRecognition = "A"
	SkillProduction  = "B"
	SkillListening   = "C"
)

// Skills returns the fixed skill set in canonical order.
func Skills() []string {
	return []string{SkillRecognition, SkillProduction, SkillListening}
}

// ValidSkill reports whether s is one of the three tracked skills.
func ValidSkill(s string) bool {
	return s == SkillRecognition || s == SkillProduction || s == SkillListening
}

// Item is a vocabulary entry as seen by the engine and the catalog.
type Item struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Meanings  []string  `json:"meanings"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags,omitempty"`
	Example   string    `json:"example,omitempty"`
	Note      string    `json:"note,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Progress is the ladder position and lifetime counters for one
// (item, skill) pair.
type Progress struct {
	ItemID         string  `json:"item_id"`
	Skill          string  `json:"skill"`
	Stage          int     `json:"stage"`
	NextDue        string  `json:"next_due"`
	CorrectCount   int     `json:"correct_count"`
	WrongCount     int     `json:"wrong_count"`
	Accuracy       float64 `json:"accuracy"`
	Mastered       bool    `json:"mastered"`
	CompleteMaster bool    `json:"complete_master"`
}

// Attempt is one graded answer, recorded as historical fact.
type Attempt struct {
	ItemID    string `json:"item_id"`
	Skill     string `json:"skill"`
	Result    bool   `json:"result"`
	TS        int64  `json:"ts"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// Trophy is an earned achievement code with its first-earned time.
type Trophy struct {
	Code       string    `json:"code"`
	AchievedAt time.Time `json:"achieved_at"`
}

// ItemRepo provides catalog access keyed by item id.
type ItemRepo interface {
	Put(ctx context.Context, it *Item) error
	Get(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]*Item, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) error
	Count(ctx context.Context) (int, error)
}

// ProgressRepo provides access to progress rows keyed by (itemID, skill).
type ProgressRepo interface {
	Get(ctx context.Context, itemID, skill string) (*Progress, error)
	Put(ctx context.Context, p *Progress) error
	List(ctx context.Context) ([]*Progress, error)
}

// AttemptRepo provides append-only access to the attempt log.
type AttemptRepo interface {
	Append(ctx context.Context, a *Attempt) error
	List(ctx context.Context) ([]*Attempt, error)
}

// SettingsRepo stores the interval ladder. Intervals returns the raw stored
// values (or the built-in default when unset); callers normalize.
type SettingsRepo interface {
	Intervals(ctx context.Context) ([]int, error)
	SetIntervals(ctx context.Context, intervals []int) error
}

// TrophyRepo stores write-once achievement records.
type TrophyRepo interface {
	List(ctx context.Context) ([]*Trophy, error)
	Add(ctx context.Context, code string, at time.Time) error
}

// SessionRepo stores opaque session blobs by id.
type SessionRepo interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, id string, data []byte) error
	Delete(ctx context.Context, id string) error
}

// Repos bundles all repositories backed by a single store (or a single
// transaction of it).
type Repos struct {
	Items    ItemRepo
	Progress ProgressRepo
	Attempts AttemptRepo
	Settings SettingsRepo
	Trophies TrophyRepo
	Sessions SessionRepo
}

// TxRunner executes a function against a repository bundle with
// all-or-nothing visibility.
type TxRunner interface {
	RunTx(ctx context.Context, fn func(Repos) error) error
}
