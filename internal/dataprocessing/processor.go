package dataprocessing

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"zeitkarte/internal/config"
	"zeitkarte/internal/infrastructure"
	"zeitkarte/pkg/contracts/domain"
)

// ErrNoRows is returned when an upload carries no rows at all.
var ErrNoRows = errors.New("upload contains no rows")

// Processor runs the pipeline for one upload: normalize, group, gap-fill,
// classify. Each run is independent; a new upload entirely replaces the
// previous result.
type Processor struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewProcessor creates a processor. A nil logger falls back to slog.Default.
func NewProcessor(cfg *config.Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{cfg: cfg, logger: logger}
}

// Result is the immutable outcome of one processed upload.
type Result struct {
	RunID       string
	Table       Table
	Days        []domain.DayRecord
	Diagnostics []domain.Diagnostic

	cfg *config.Config
}

// Process runs the pipeline over a raw string table. Past the empty-input
// check nothing fails: missing columns degrade to an empty day set.
func (p *Processor) Process(ctx context.Context, raw [][]string) (*Result, error) {
	if len(raw) == 0 {
		return nil, ErrNoRows
	}

	runID := uuid.NewString()
	ctx = infrastructure.WithRunID(ctx, runID)

	p.logger.InfoContext(ctx, "processing upload",
		slog.Int("rows", len(raw)))

	table := Normalize(raw, p.cfg.Format, p.logger)
	table = GroupByDay(table, p.logger)
	table = FillCalendarGaps(table)

	result := &Result{
		RunID: runID,
		Table: table,
		Days:  DayRecords(table),
		cfg:   p.cfg,
	}

	for _, day := range result.Days {
		if _, diag := Classify(day, p.cfg.Format); diag != nil {
			result.Diagnostics = append(result.Diagnostics, *diag)
			p.logger.WarnContext(ctx, "day not classifiable, recorded as other",
				slog.Time("date", diag.Date),
				slog.Any("codes", diag.Codes))
		}
	}

	p.logger.InfoContext(ctx, "upload processed",
		slog.Int("days", len(result.Days)),
		slog.Int("diagnostics", len(result.Diagnostics)))

	return result, nil
}

// Config returns the configuration snapshot the result was produced with.
func (r *Result) Config() *config.Config {
	return r.cfg
}

// Aggregate computes statistics for the given selection over this result.
func (r *Result) Aggregate(sel domain.Selection) domain.AggregateStats {
	return Aggregate(r.Days, sel, r.cfg.Format, r.cfg.Report)
}

// Years lists the distinct years present in the day set, ascending.
func (r *Result) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, day := range r.Days {
		if !seen[day.Date.Year()] {
			seen[day.Date.Year()] = true
			years = append(years, day.Date.Year())
		}
	}
	sort.Ints(years)
	return years
}

// Months lists the distinct months of the given year present in the day set,
// ascending.
func (r *Result) Months(year int) []time.Month {
	seen := make(map[time.Month]bool)
	var months []time.Month
	for _, day := range r.Days {
		if day.Date.Year() != year {
			continue
		}
		if !seen[day.Date.Month()] {
			seen[day.Date.Month()] = true
			months = append(months, day.Date.Month())
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}
