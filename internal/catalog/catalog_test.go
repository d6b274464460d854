package catalog

import (
	"strings"
	"testing"

	"github.com/ysaito/tango/internal/status"
)

func TestNew(t *testing.T) {
	it, err := New("  apple ", []string{" fruit ", "", "tech company"}, "", []string{"food", " "}, " I ate an apple. ", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if it.ID == "" {
		t.Error("new item has empty id")
	}
	if it.Source != "apple" {
		t.Errorf("source = %q, want trimmed apple", it.Source)
	}
	if len(it.Meanings) != 2 || it.Meanings[0] != "fruit" {
		t.Errorf("meanings = %v, want trimmed non-empty entries", it.Meanings)
	}
	if it.Category != CategoryWord {
		t.Errorf("category = %q, want default word", it.Category)
	}
	if len(it.Tags) != 1 || it.Tags[0] != "food" {
		t.Errorf("tags = %v, want [food]", it.Tags)
	}
	if it.Example != "I ate an apple." {
		t.Errorf("example = %q", it.Example)
	}
	if it.Status != string(status.NotYet) {
		t.Errorf("status = %q, want NotYet", it.Status)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	long := func(n int) string { return strings.Repeat("x", n) }

	tests := []struct {
		name     string
		source   string
		meanings []string
		category string
		tags     []string
		example  string
		note     string
	}{
		{"empty source", "", []string{"m"}, "", nil, "", ""},
		{"blank source", "   ", []string{"m"}, "", nil, "", ""},
		{"no meanings", "w", nil, "", nil, "", ""},
		{"blank meanings", "w", []string{"  ", ""}, "", nil, "", ""},
		{"long source", long(MaxSourceLen + 1), []string{"m"}, "", nil, "", ""},
		{"long meaning", "w", []string{long(MaxMeaningLen + 1)}, "", nil, "", ""},
		{"bad category", "w", []string{"m"}, "sentence", nil, "", ""},
		{"too many tags", "w", []string{"m"}, "", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}, "", ""},
		{"long tag", "w", []string{"m"}, "", []string{long(MaxTagLen + 1)}, "", ""},
		{"long example", "w", []string{"m"}, "", nil, long(MaxExampleLen + 1), ""},
		{"long note", "w", []string{"m"}, "", nil, "", long(MaxNoteLen + 1)},
	}

	for _, tt := range tests {
		if _, err := New(tt.source, tt.meanings, tt.category, tt.tags, tt.example, tt.note); err == nil {
			t.Errorf("%s: New succeeded, want error", tt.name)
		}
	}
}

func TestNewAcceptsAllCategories(t *testing.T) {
	for _, cat := range []string{CategoryWord, CategoryIdiom, CategoryPhrase} {
		if _, err := New("w", []string{"m"}, cat, nil, "", ""); err != nil {
			t.Errorf("category %s rejected: %v", cat, err)
		}
	}
}

func TestRuneLimitsNotByteLimits(t *testing.T) {
	// 200 multibyte runes is within the source limit even though the byte
	// count is far larger.
	src := strings.Repeat("語", MaxSourceLen)
	if _, err := New(src, []string{"m"}, "", nil, "", ""); err != nil {
		t.Errorf("New with %d-rune source: %v", MaxSourceLen, err)
	}
}
