// Package trophy detects threshold achievements over the learning summary.
// Codes are write-once: a trophy is recorded the first time its metric
// crosses the threshold and never revoked.
package trophy

import (
	"context"
	"fmt"
	"time"

	"github.com/ysaito/tango/internal/stats"
	"github.com/ysaito/tango/internal/store"
)

// Threshold tables per code prefix. Each threshold is checked
// independently against the live value, so a missed lower rung still
// unlocks alongside a higher one.
var (
	collectionThresholds = []int{
		10, 20, 30, 40, 50, 75, 100, 150, 200, 250, 300, 400, 500,
		750, 1000, 1250, 1500, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 10000,
	}
	attemptThresholds = []int{
		10, 50, 100, 200, 300, 400, 500, 750, 1000, 1500, 2000, 3000,
		4000, 5000, 6000, 7000, 8000, 10000, 12500, 15000, 17500, 20000,
		30000, 40000, 50000,
	}
)

// rule ties a code prefix to the summary metric it measures.
type rule struct {
	prefix     string
	thresholds []int
	metric     func(*stats.Summary) int
}

func rules() []rule {
	return []rule{
		{"registered", collectionThresholds, func(s *stats.Summary) int { return s.TotalItems }},
		{"masterA", collectionThresholds, func(s *stats.Summary) int { return s.MasteredA }},
		{"masterB", collectionThresholds, func(s *stats.Summary) int { return s.MasteredB }},
		{"masterC", collectionThresholds, func(s *stats.Summary) int { return s.MasteredC }},
		{"masterAll", collectionThresholds, func(s *stats.Summary) int { return s.CompleteMaster }},
		{"attempts", attemptThresholds, func(s *stats.Summary) int { return s.TotalAttempts }},
		{"correct", attemptThresholds, func(s *stats.Summary) int { return s.TotalCorrect }},
	}
}

// Code builds the trophy code for a prefix and threshold, e.g. masterA_50.
func Code(prefix string, threshold int) string {
	return fmt.Sprintf("%s_%d", prefix, threshold)
}

// Evaluator records newly crossed thresholds.
type Evaluator struct {
	tx  store.TxRunner
	now func() time.Time
}

// NewEvaluator creates an evaluator writing through tx. now may be nil for
// time.Now.
func NewEvaluator(tx store.TxRunner, now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}
	return &Evaluator{tx: tx, now: now}
}

// Evaluate records a trophy for every threshold the summary meets that is
// not yet owned, and returns the newly earned codes. All codes from one
// evaluation land in a single transaction. Re-running with an unchanged
// summary yields nothing.
func (e *Evaluator) Evaluate(ctx context.Context, sum *stats.Summary) ([]string, error) {
	at := e.now()
	var newly []string
	err := e.tx.RunTx(ctx, func(repos store.Repos) error {
		owned, err := repos.Trophies.List(ctx)
		if err != nil {
			return fmt.Errorf("list trophies: %w", err)
		}
		have := make(map[string]bool, len(owned))
		for _, t := range owned {
			have[t.Code] = true
		}

		for _, r := range rules() {
			value := r.metric(sum)
			for _, th := range r.thresholds {
				code := Code(r.prefix, th)
				if have[code] || value < th {
					continue
				}
				if err := repos.Trophies.Add(ctx, code, at); err != nil {
					return err
				}
				newly = append(newly, code)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newly, nil
}
