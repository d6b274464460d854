package port

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ysaito/tango/internal/catalog"
	"github.com/ysaito/tango/internal/store"
)

// XLSXResult summarizes a spreadsheet import.
type XLSXResult struct {
	Created int
	Skipped int
	Errors  []string
}

// ImportXLSX reads vocabulary from the first sheet of an xlsx file.
// Expected columns: source, meaning, category, example, note. The first
// row is treated as a header when its first cell is not empty text
// followed by data rows. Rows missing source or meaning are skipped;
// rows failing catalog validation are skipped with a reported error.
func ImportXLSX(ctx context.Context, items store.ItemRepo, path string) (*XLSXResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	res := &XLSXResult{}
	for i, row := range rows {
		if i == 0 && looksLikeHeader(row) {
			continue
		}
		source := cell(row, 0)
		meaning := cell(row, 1)
		if source == "" || meaning == "" {
			res.Skipped++
			continue
		}

		category := cell(row, 2)
		if category == "" {
			category = "word"
		}
		it := &store.Item{
			ID:       uuid.NewString(),
			Source:   source,
			Meanings: []string{meaning},
			Category: category,
			Example:  cell(row, 3),
			Note:     cell(row, 4),
			Status:   "NotYet",
		}
		if err := catalog.Validate(it); err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if err := items.Put(ctx, it); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		res.Created++
	}
	return res, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func looksLikeHeader(row []string) bool {
	first := strings.ToLower(cell(row, 0))
	return first == "source" || first == "word" || first == "english"
}
