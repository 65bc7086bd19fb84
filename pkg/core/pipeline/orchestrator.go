// Package pipeline drives the batch: one company at a time through
// research, report compilation and report writing, with a fixed pacing
// delay between companies.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"agentic_analyst/pkg/core/company"
	"agentic_analyst/pkg/core/report"
	"agentic_analyst/pkg/core/research"

	"github.com/google/uuid"
)

// Status tracks a company through the run.
type Status string

const (
	StatusPending        Status = "PENDING"
	StatusResearched     Status = "RESEARCHED"
	StatusReported       Status = "REPORTED"
	StatusDone           Status = "DONE"
	StatusResearchFailed Status = "RESEARCH_FAILED"
	StatusReportFailed   Status = "REPORT_FAILED"
)

// ResultKind tags the outcome of one company so callers branch on kind
// rather than on error strings.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultResearchFailure
	ResultReportFailure
)

// CompanyResult is the terminal record for one company.
type CompanyResult struct {
	Company  company.Record
	Kind     ResultKind
	Status   Status
	FilePath string // written report, empty on failure
	Facts    string // consolidated research facts, or the error placeholder
	Err      error
}

// ReportCompiler produces the structured report from research facts.
type ReportCompiler interface {
	Compile(ctx context.Context, companyLabel string, facts string) (*report.EquityReport, error)
}

// ReportWriter persists a finished report and returns the file path.
type ReportWriter interface {
	Write(companyLabel string, rep *report.EquityReport) (string, error)
}

// Archiver is the optional database archive for finished reports.
type Archiver interface {
	Enabled() bool
	Save(ctx context.Context, runID string, ticker string, rep *report.EquityReport) error
}

// Orchestrator sequences the per-company steps. Strictly sequential:
// one company is fully processed before the next begins, and no retries
// exist at any step.
type Orchestrator struct {
	researcher research.Researcher
	compiler   ReportCompiler
	writer     ReportWriter
	archive    Archiver
	delay      time.Duration
	sleep      func(time.Duration)
}

func NewOrchestrator(r research.Researcher, c ReportCompiler, w ReportWriter, delay time.Duration) *Orchestrator {
	return &Orchestrator{
		researcher: r,
		compiler:   c,
		writer:     w,
		delay:      delay,
		sleep:      time.Sleep,
	}
}

// SetArchive enables the optional report archive.
func (o *Orchestrator) SetArchive(a Archiver) {
	o.archive = a
}

// RunAll processes every company in order and returns one result per
// company. The pacing delay applies after every company, success or
// failure: it exists to stay under the provider's rate limit, not as
// backoff.
func (o *Orchestrator) RunAll(ctx context.Context, companies []company.Record) []CompanyResult {
	runID := uuid.New().String()
	fmt.Printf("[RUN %s] Processing %d companies\n", runID[:8], len(companies))

	results := make([]CompanyResult, 0, len(companies))
	for _, rec := range companies {
		fmt.Printf("\n=======================================================\n")
		fmt.Printf("| 📊 STARTING ANALYSIS: %s\n", rec.Label())
		fmt.Printf("=======================================================\n")

		result := o.runOne(ctx, runID, rec)
		results = append(results, result)

		fmt.Printf("[DELAY] ⏱️ Waiting %v to stay under the API quota...\n", o.delay)
		o.sleep(o.delay)
	}

	o.printSummary(runID, results)
	return results
}

// runOne walks one company through the state machine:
// PENDING → RESEARCHED → REPORTED → DONE, with RESEARCH_FAILED and
// REPORT_FAILED as terminal error exits. A failure is terminal for that
// company for this run.
func (o *Orchestrator) runOne(ctx context.Context, runID string, rec company.Record) CompanyResult {
	label := rec.Label()
	result := CompanyResult{Company: rec, Status: StatusPending}

	facts, err := o.researcher.Research(ctx, label, rec.ReportURL)
	if err != nil {
		fmt.Printf("❌ [RESEARCH ERROR] Data collection failed for %s.\n", label)
		result.Status = StatusResearchFailed
		result.Kind = ResultResearchFailure
		result.Facts = fmt.Sprintf("Web research error for %s: %v", label, err)
		result.Err = err
		return result
	}
	result.Status = StatusResearched
	result.Facts = facts

	rep, err := o.compiler.Compile(ctx, label, facts)
	if err != nil {
		fmt.Printf("❌ [REPORT ERROR] Report structuring failed for %s: %v\n", label, err)
		result.Status = StatusReportFailed
		result.Kind = ResultReportFailure
		result.Err = err
		return result
	}

	path, err := o.writer.Write(label, rep)
	if err != nil {
		fmt.Printf("❌ [REPORT ERROR] Report write failed for %s: %v\n", label, err)
		result.Status = StatusReportFailed
		result.Kind = ResultReportFailure
		result.Err = err
		return result
	}
	result.Status = StatusReported

	// Archive failures are logged only; the Markdown file already
	// exists and the company still counts as done.
	if o.archive != nil && o.archive.Enabled() {
		if err := o.archive.Save(ctx, runID, rec.Ticker, rep); err != nil {
			fmt.Printf("⚠️ [ARCHIVE] Could not archive report for %s: %v\n", label, err)
		}
	}

	fmt.Printf("✅ REPORT DONE! Saved as '%s'\n", path)
	result.Status = StatusDone
	result.Kind = ResultSuccess
	result.FilePath = path
	return result
}

func (o *Orchestrator) printSummary(runID string, results []CompanyResult) {
	var done, researchFailed, reportFailed int
	for _, r := range results {
		switch r.Kind {
		case ResultSuccess:
			done++
		case ResultResearchFailure:
			researchFailed++
		case ResultReportFailure:
			reportFailed++
		}
	}
	fmt.Printf("\n=======================================================\n")
	fmt.Printf("| ✨ ALL COMPANIES PROCESSED! ✨\n")
	fmt.Printf("| Run %s: %d done, %d research failures, %d report failures\n",
		runID[:8], done, researchFailed, reportFailed)
	fmt.Printf("=======================================================\n")
}
