// Package ragdoc simulates the filing-document extraction tool.
//
// It deliberately performs no network or file access: the research
// agent treats its output as an authoritative document summary, but the
// text is fixed per ticker. Replacing this with a real fetcher would
// change the system's behavior, so it must stay a stub.
package ragdoc

import (
	"fmt"
	"strings"
)

// NoDataSentence is returned when the company has no usable filing URL.
const NoDataSentence = "No valid financial report URL was provided. Fundamental data unavailable."

const nflxSummary = `10-K (2023) extraction: revenue totaled $33.7 billion, up 6.7% YoY.
Net income was $5.4 billion. Free cash flow (FCF) was robust at $6.9 billion,
indicating strong cash generation and financial health.`

const tslaSummary = `10-K (2023) extraction: revenue reached $96.8 billion. Net income: $15.0 billion.
FCF was $4.4 billion. The report highlights profit margins under pressure from price cuts.`

const genericSummary = `Simulated extraction: revenue of $150 billion in the last year. Net income of $40 billion.
The company reported heavy share buybacks and is focusing on services for future growth.`

// Consult returns a fixed financial summary for the given report URL.
// Pure function: the same input always yields the same text.
func Consult(reportURL string) string {
	fmt.Printf("[RAG TOOL] Analyzing URL: %.50s...\n", reportURL)

	if reportURL == "" || strings.Contains(reportURL, "N/A") || strings.Contains(reportURL, "Sem URL") {
		return NoDataSentence
	}

	switch {
	case strings.Contains(reportURL, "NFLX"):
		return nflxSummary
	case strings.Contains(reportURL, "TSLA"):
		return tslaSummary
	default:
		return genericSummary
	}
}
