package store

import (
	"context"
	"encoding/json"
	"fmt"

	"agentic_analyst/pkg/core/report"

	"github.com/google/uuid"
)

// ReportArchive persists finished equity reports as JSON rows in the
// equity_reports table (id, run_id, company, ticker, report_date,
// payload, created_at).
type ReportArchive struct{}

func NewReportArchive() *ReportArchive {
	return &ReportArchive{}
}

// Enabled reports whether the archive can accept writes.
func (a *ReportArchive) Enabled() bool {
	return GetPool() != nil
}

// Save inserts one report row tagged with the batch run ID.
func (a *ReportArchive) Save(ctx context.Context, runID string, ticker string, rep *report.EquityReport) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database not initialized")
	}

	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO equity_reports (id, run_id, company, ticker, report_date, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err = pool.Exec(ctx, query, uuid.New().String(), runID, rep.Company, ticker, rep.ReportDate, payload)
	if err != nil {
		return fmt.Errorf("failed to archive report: %w", err)
	}
	return nil
}
