package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zeitkarte/internal/dataprocessing"
	"zeitkarte/pkg/contracts/domain"
)

// StatsReport is the JSON export shape for one aggregation.
type StatsReport struct {
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Selection   domain.Selection      `json:"selection"`
	Stats       domain.AggregateStats `json:"stats"`
	Diagnostics []domain.Diagnostic   `json:"diagnostics,omitempty"`
}

// NewStatsReport aggregates the result under the given selection and wraps it
// with run metadata.
func NewStatsReport(res *dataprocessing.Result, sel domain.Selection) StatsReport {
	return StatsReport{
		RunID:       res.RunID,
		GeneratedAt: time.Now().UTC(),
		Selection:   sel,
		Stats:       res.Aggregate(sel),
		Diagnostics: res.Diagnostics,
	}
}

// WriteJSON writes the report to the given path, indented.
func (r StatsReport) WriteJSON(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode stats report: %w", err)
	}
	return nil
}
