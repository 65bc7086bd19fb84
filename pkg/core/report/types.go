// Package report compiles research facts into a fixed-schema equity
// report and renders it to Markdown.
package report

// NoFundamentalsSentinel fills the financial summary when no document
// data was available for the company.
const NoFundamentalsSentinel = "N/A - News focus only"

// EquityReport is the structured-generation target schema. One per
// company; serialized to Markdown (and optionally archived) right after
// generation. Field content is model-produced and not validated for
// non-emptiness.
type EquityReport struct {
	ReportDate       string   `json:"report_date"`       // YYYY-MM-DD, generation day
	Company          string   `json:"company"`           // name and ticker, e.g. "Netflix (NFLX)"
	SharePrice       string   `json:"share_price"`       // current trading price
	ExecutiveSummary string   `json:"executive_summary"` // concise conclusions, max 4 sentences
	TopNews          []string `json:"top_news"`          // 3 recent news items, one sentence each (not enforced)
	FinancialSummary string   `json:"financial_summary"` // revenue/net income/FCF from the document
	Sentiment        string   `json:"sentiment"`         // Positive/Negative/Mixed with brief rationale
	Recommendation   string   `json:"recommendation"`    // Hold/Buy/Sell
}
