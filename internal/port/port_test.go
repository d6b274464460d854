package port

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ysaito/tango/internal/catalog"
	"github.com/ysaito/tango/internal/ladder"
	"github.com/ysaito/tango/internal/store"
)

func seedStore(t *testing.T) store.Repos {
	t.Helper()
	repos := store.NewMemStore().Repos()
	ctx := context.Background()

	require.NoError(t, repos.Items.Put(ctx, &store.Item{
		ID: "w1", Source: "apple", Meanings: []string{"fruit"},
		Category: "word", Status: "NotYet",
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, repos.Progress.Put(ctx, &store.Progress{
		ItemID: "w1", Skill: store.SkillRecognition, Stage: 2,
		NextDue: "2026-03-14", CorrectCount: 5, WrongCount: 1,
	}))
	require.NoError(t, repos.Attempts.Append(ctx, &store.Attempt{
		ItemID: "w1", Skill: store.SkillRecognition, Result: true, TS: 1767000000000,
	}))
	require.NoError(t, repos.Trophies.Add(ctx, "registered_10",
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
	return repos
}

func TestExportImportRoundTrip(t *testing.T) {
	src := seedStore(t)
	ctx := context.Background()

	dump, err := Export(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, DumpVersion, dump.Version)

	dstStore := store.NewMemStore()
	require.NoError(t, Import(ctx, dstStore, dump))
	dst := dstStore.Repos()

	it, err := dst.Items.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "apple", it.Source)

	p, err := dst.Progress.Get(ctx, "w1", store.SkillRecognition)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Stage)
	assert.Equal(t, "2026-03-14", p.NextDue)

	attempts, err := dst.Attempts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, attempts, 1)

	trophies, err := dst.Trophies.List(ctx)
	require.NoError(t, err)
	require.Len(t, trophies, 1)
	assert.Equal(t, "registered_10", trophies[0].Code)

	intervals, err := dst.Settings.Intervals(ctx)
	require.NoError(t, err)
	assert.Equal(t, ladder.Default(), intervals)
}

func TestImportRejectsBadDumps(t *testing.T) {
	valid := func() *Dump {
		return &Dump{
			Version:   DumpVersion,
			Intervals: ladder.Default(),
			Items: []*store.Item{
				{ID: "w1", Source: "apple", Meanings: []string{"fruit"}, Category: "word", Status: "NotYet"},
			},
			Progress: []*store.Progress{
				{ItemID: "w1", Skill: store.SkillRecognition, Stage: 2},
			},
			Attempts: []*store.Attempt{
				{ItemID: "w1", Skill: store.SkillListening, Result: true},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Dump)
	}{
		{"short ladder", func(d *Dump) { d.Intervals = []int{1, 2} }},
		{"unknown progress skill", func(d *Dump) { d.Progress[0].Skill = "Z" }},
		{"stage beyond ladder", func(d *Dump) { d.Progress[0].Stage = 6 }},
		{"negative stage", func(d *Dump) { d.Progress[0].Stage = -1 }},
		{"negative counter", func(d *Dump) { d.Progress[0].WrongCount = -1 }},
		{"unknown attempt skill", func(d *Dump) { d.Attempts[0].Skill = "x" }},
		{"empty item source", func(d *Dump) { d.Items[0].Source = "" }},
		{"overlong item source", func(d *Dump) { d.Items[0].Source = strings.Repeat("x", catalog.MaxSourceLen+1) }},
		{"unknown item category", func(d *Dump) { d.Items[0].Category = "noun" }},
		{"item without meanings", func(d *Dump) { d.Items[0].Meanings = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(d)
			require.Error(t, Import(context.Background(), store.NewMemStore(), d))
		})
	}
}

func TestImportRejectsBeforeWriting(t *testing.T) {
	ctx := context.Background()
	dstStore := store.NewMemStore()

	d := &Dump{
		Version:   DumpVersion,
		Intervals: ladder.Default(),
		Items: []*store.Item{
			{ID: "w1", Source: "apple", Meanings: []string{"fruit"}, Category: "word", Status: "NotYet"},
		},
		Progress: []*store.Progress{
			{ItemID: "w1", Skill: "bogus", Stage: 0},
		},
	}
	require.Error(t, Import(ctx, dstStore, d))

	n, err := dstStore.Repos().Items.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "nothing is written before validation passes")
}

func TestImportRollsBackOnStorageFailure(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	// The second item passes catalog validation but fails the store's
	// non-empty id constraint mid-transaction.
	d := &Dump{
		Version:   DumpVersion,
		Intervals: ladder.Default(),
		Items: []*store.Item{
			{ID: "w1", Source: "apple", Meanings: []string{"fruit"}, Category: "word", Status: "NotYet"},
			{ID: "", Source: "pear", Meanings: []string{"fruit"}, Category: "word", Status: "NotYet"},
		},
	}
	require.Error(t, Import(ctx, s, d))

	n, err := s.Repos().Items.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "partial import rolled back")
}

func TestImportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"source", "meaning", "category", "example", "note"},
		{"apple", "fruit", "word", "I ate an apple.", ""},
		{"run", "to move fast", "", "", "irregular verb"},
		{"", "orphan meaning"}, // no source: skipped
		{"lonely"},             // no meaning: skipped
		{strings.Repeat("x", catalog.MaxSourceLen+1), "too long"}, // fails validation
		{"cat", "animal", "noun"},                                 // unknown category
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))

	repos := store.NewMemStore().Repos()
	res, err := ImportXLSX(context.Background(), repos.Items, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 4, res.Skipped)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "exceeds")
	assert.Contains(t, res.Errors[1], "category")

	items, err := repos.Items.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	bySource := make(map[string]*store.Item)
	for _, it := range items {
		bySource[it.Source] = it
	}
	run, ok := bySource["run"]
	require.True(t, ok, "item 'run' imported")
	assert.Equal(t, "word", run.Category, "empty category defaults to word")
	assert.Equal(t, "irregular verb", run.Note)
	assert.Equal(t, "NotYet", run.Status)
	assert.NotEmpty(t, run.ID)
}

func TestImportXLSXMissingFile(t *testing.T) {
	repos := store.NewMemStore().Repos()
	_, err := ImportXLSX(context.Background(), repos.Items, filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
}
