// Package research implements the fact-finding step: a tool-calling
// Gemini agent that gathers share price, recent news and filing facts
// for one company and returns consolidated free text.
package research

import (
	"context"
	"fmt"
)

// Researcher produces the consolidated research facts for a company.
// The pipeline only supplies the task inputs and consumes the final
// text; tool-call count and ordering are up to the model.
type Researcher interface {
	Research(ctx context.Context, companyLabel string, reportURL string) (string, error)
}

// BuildTask formats the research request handed to the agent. It names
// both tools explicitly so the model knows what it may call.
func BuildTask(companyLabel string, reportURL string) string {
	return fmt.Sprintf(`For the company %s, produce a consolidated analysis.
1. Use the 'web_search' tool to find the CURRENT share price and the three most recent news items.
2. Use the 'consult_filing_summary' tool with the input '%s' to extract the financial summary from official documents.
3. Consolidate ALL the information (share price, web news and document facts) into your final answer.`,
		companyLabel, reportURL)
}
