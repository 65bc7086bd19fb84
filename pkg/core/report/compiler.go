package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agentic_analyst/pkg/core/utils"
)

// Generator is the structured-generation capability behind the
// compiler. agent.Manager satisfies it; tests inject stubs.
type Generator interface {
	ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error)
}

const compilerRole = "reporter"

const compilerSystemPrompt = `You are a Senior Investment Analyst. Your task is to compile the RESEARCH FACTS
provided about a company into a professional report.

Respond with a single JSON object with exactly these fields:
- report_date: report generation date (YYYY-MM-DD)
- company: company name and ticker (e.g. "Netflix (NFLX)")
- share_price: the current trading price of the share
- executive_summary: concise summary of the main investment conclusions (max 4 sentences)
- top_news: list of the 3 main market news items and their impact, each summarized in one sentence
- financial_summary: summary of the key financial data (revenue, net income, FCF) extracted from the official document
- sentiment: market sentiment based on facts (Positive/Negative/Mixed) with a brief rationale
- recommendation: simple investment recommendation (Hold, Buy or Sell)

Fill every field. If there is no fundamental document data, set financial_summary to '` + NoFundamentalsSentinel + `'.
Do not add any text outside the JSON object.`

// Compiler turns consolidated research facts into an EquityReport via
// a structured-generation call on the configured provider.
type Compiler struct {
	Agents Generator
	// Now is injected for tests; defaults to time.Now.
	Now func() time.Time
}

func NewCompiler(agents Generator) *Compiler {
	return &Compiler{Agents: agents}
}

// Compile requests a schema-conforming report for the company. Any
// provider or parse error is returned to the caller; it must be logged
// with the company label and never abort the batch.
func (c *Compiler) Compile(ctx context.Context, companyLabel string, facts string) (*EquityReport, error) {
	prompt := fmt.Sprintf("Company: %s\n\nRESEARCH FACTS (web and document data):\n%s", companyLabel, facts)

	options := map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
	raw, err := c.Agents.ExecutePrompt(ctx, compilerRole, prompt, compilerSystemPrompt, options)
	if err != nil {
		return nil, fmt.Errorf("report generation failed for %s: %w", companyLabel, err)
	}

	var rep EquityReport
	if _, err := utils.SmartParse(raw, &rep); err != nil {
		return nil, fmt.Errorf("report output for %s is not valid JSON: %w", companyLabel, err)
	}

	// The date field reflects generation day regardless of what the
	// model put there.
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	rep.ReportDate = now().Format("2006-01-02")

	if strings.TrimSpace(rep.Company) == "" {
		rep.Company = companyLabel
	}
	if strings.TrimSpace(rep.FinancialSummary) == "" {
		rep.FinancialSummary = NoFundamentalsSentinel
	}

	return &rep, nil
}
