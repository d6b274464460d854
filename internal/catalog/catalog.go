// Package catalog owns vocabulary entry construction and validation. The
// scheduling engine never validates items; everything entering the item
// store passes through here.
package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ysaito/tango/internal/status"
	"github.com/ysaito/tango/internal/store"
)

// Field limits, in runes.
const (
	MaxSourceLen  = 200
	MaxMeaningLen = 500
	MaxExampleLen = 500
	MaxNoteLen    = 2000
	MaxTags       = 10
	MaxTagLen     = 20
)

// Categories an item may carry.
const (
	CategoryWord   = "word"
	CategoryIdiom  = "idiom"
	CategoryPhrase = "phrase"
)

// New builds a validated item with a fresh UUID and NotYet status.
func New(source string, meanings []string, category string, tags []string, example, note string) (*store.Item, error) {
	if category == "" {
		category = CategoryWord
	}
	it := &store.Item{
		ID:       uuid.NewString(),
		Source:   strings.TrimSpace(source),
		Meanings: trimAll(meanings),
		Category: category,
		Tags:     trimAll(tags),
		Example:  strings.TrimSpace(example),
		Note:     strings.TrimSpace(note),
		Status:   string(status.NotYet),
	}
	if err := Validate(it); err != nil {
		return nil, err
	}
	return it, nil
}

// Validate checks field presence and limits.
func Validate(it *store.Item) error {
	if it.Source == "" {
		return fmt.Errorf("source text is required")
	}
	if utf8.RuneCountInString(it.Source) > MaxSourceLen {
		return fmt.Errorf("source text exceeds %d characters", MaxSourceLen)
	}
	if len(it.Meanings) == 0 || it.Meanings[0] == "" {
		return fmt.Errorf("at least one meaning is required")
	}
	for _, m := range it.Meanings {
		if utf8.RuneCountInString(m) > MaxMeaningLen {
			return fmt.Errorf("meaning exceeds %d characters", MaxMeaningLen)
		}
	}
	switch it.Category {
	case CategoryWord, CategoryIdiom, CategoryPhrase:
	default:
		return fmt.Errorf("unknown category %q", it.Category)
	}
	if len(it.Tags) > MaxTags {
		return fmt.Errorf("at most %d tags allowed", MaxTags)
	}
	for _, t := range it.Tags {
		if utf8.RuneCountInString(t) > MaxTagLen {
			return fmt.Errorf("tag %q exceeds %d characters", t, MaxTagLen)
		}
	}
	if utf8.RuneCountInString(it.Example) > MaxExampleLen {
		return fmt.Errorf("example exceeds %d characters", MaxExampleLen)
	}
	if utf8.RuneCountInString(it.Note) > MaxNoteLen {
		return fmt.Errorf("note exceeds %d characters", MaxNoteLen)
	}
	return nil
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
