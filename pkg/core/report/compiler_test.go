package report

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

type stubGenerator struct {
	output string
	err    error
	prompt string
	system string
}

func (s *stubGenerator) ExecutePrompt(ctx context.Context, agentType, rawPrompt, rawSystemPrompt string, options map[string]interface{}) (string, error) {
	s.prompt = rawPrompt
	s.system = rawSystemPrompt
	return s.output, s.err
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}

func TestCompile(t *testing.T) {
	gen := &stubGenerator{output: `{
		"report_date": "1999-01-01",
		"company": "Netflix (NFLX)",
		"share_price": "$550.20",
		"executive_summary": "Strong quarter.",
		"top_news": ["Subscriber growth beat", "Ad tier expansion", "Content slate praised"],
		"financial_summary": "Revenue $33.7B, net income $5.4B, FCF $6.9B.",
		"sentiment": "Positive - solid fundamentals",
		"recommendation": "Buy"
	}`}
	c := &Compiler{Agents: gen, Now: fixedNow}

	rep, err := c.Compile(context.Background(), "Netflix (NFLX)", "facts here")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	// The date field must reflect generation day, not the model's value.
	if rep.ReportDate != "2024-03-15" {
		t.Errorf("ReportDate = %q, want generation day", rep.ReportDate)
	}
	if len(rep.TopNews) != 3 {
		t.Errorf("expected 3 news items, got %d", len(rep.TopNews))
	}
	if rep.Recommendation != "Buy" {
		t.Errorf("Recommendation = %q", rep.Recommendation)
	}
	if !strings.Contains(gen.prompt, "facts here") {
		t.Error("research facts not forwarded to the generator")
	}
	if !strings.Contains(gen.system, "financial_summary") {
		t.Error("system prompt does not describe the schema")
	}
}

func TestCompile_RepairsSloppyJSON(t *testing.T) {
	// Trailing comma and markdown fence: typical model output defects.
	gen := &stubGenerator{output: "```json\n" + `{
		"company": "Tesla (TSLA)",
		"share_price": "$180",
		"executive_summary": "Margins under pressure.",
		"top_news": ["Price cuts continue",],
		"financial_summary": "Revenue $96.8B.",
		"sentiment": "Mixed",
		"recommendation": "Hold",
	}` + "\n```"}
	c := &Compiler{Agents: gen, Now: fixedNow}

	rep, err := c.Compile(context.Background(), "Tesla (TSLA)", "facts")
	if err != nil {
		t.Fatalf("Compile should repair sloppy JSON, got: %v", err)
	}
	if rep.Company != "Tesla (TSLA)" {
		t.Errorf("Company = %q", rep.Company)
	}
}

func TestCompile_SentinelBackfill(t *testing.T) {
	gen := &stubGenerator{output: `{
		"company": "Netflix (NFLX)",
		"share_price": "$550",
		"executive_summary": "News-only view.",
		"top_news": ["a", "b", "c"],
		"financial_summary": "",
		"sentiment": "Mixed",
		"recommendation": "Hold"
	}`}
	c := &Compiler{Agents: gen, Now: fixedNow}

	rep, err := c.Compile(context.Background(), "Netflix (NFLX)", "facts")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if rep.FinancialSummary != NoFundamentalsSentinel {
		t.Errorf("empty financial summary should become the sentinel, got %q", rep.FinancialSummary)
	}
}

func TestCompile_ProviderError(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("schema validation failed")}
	c := &Compiler{Agents: gen, Now: fixedNow}

	if _, err := c.Compile(context.Background(), "Netflix (NFLX)", "facts"); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestCompile_UnparseableOutput(t *testing.T) {
	gen := &stubGenerator{output: "I'm sorry, I cannot produce a report."}
	c := &Compiler{Agents: gen, Now: fixedNow}

	if _, err := c.Compile(context.Background(), "Netflix (NFLX)", "facts"); err == nil {
		t.Fatal("expected parse error for non-JSON output")
	}
}
