package research

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"agentic_analyst/pkg/core/ragdoc"
	"agentic_analyst/pkg/core/search"
)

type stubSearcher struct {
	results []search.Result
	err     error
	queries []string
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]search.Result, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

func TestBuildTask(t *testing.T) {
	task := BuildTask("Netflix (NFLX)", "https://ir.netflix.net/NFLX-10k.pdf")
	for _, want := range []string{"Netflix (NFLX)", "web_search", "consult_filing_summary", "https://ir.netflix.net/NFLX-10k.pdf"} {
		if !strings.Contains(task, want) {
			t.Errorf("task prompt missing %q:\n%s", want, task)
		}
	}
}

func TestCallTool_WebSearch(t *testing.T) {
	searcher := &stubSearcher{results: []search.Result{{Title: "T", URL: "u", Content: "NFLX at $550"}}}
	r := &GeminiResearcher{Searcher: searcher}

	out, err := r.callTool(context.Background(), toolWebSearch, map[string]any{"query": "NFLX price"})
	if err != nil {
		t.Fatalf("callTool error: %v", err)
	}
	if !strings.Contains(out, "NFLX at $550") {
		t.Errorf("search results not in observation: %q", out)
	}
	if len(searcher.queries) != 1 || searcher.queries[0] != "NFLX price" {
		t.Errorf("query not forwarded: %v", searcher.queries)
	}
}

func TestCallTool_WebSearchErrors(t *testing.T) {
	r := &GeminiResearcher{Searcher: &stubSearcher{err: fmt.Errorf("quota exceeded")}}
	if _, err := r.callTool(context.Background(), toolWebSearch, map[string]any{"query": "x"}); err == nil {
		t.Fatal("expected backend error to propagate")
	}
	if _, err := r.callTool(context.Background(), toolWebSearch, map[string]any{}); err == nil {
		t.Fatal("expected error for missing query")
	}
}

func TestCallTool_ConsultDoc(t *testing.T) {
	r := &GeminiResearcher{ConsultDoc: ragdoc.Consult}

	out, err := r.callTool(context.Background(), toolConsultDoc, map[string]any{"report_url": "report containing NFLX"})
	if err != nil {
		t.Fatalf("callTool error: %v", err)
	}
	if !strings.Contains(out, "$33.7 billion") {
		t.Errorf("expected NFLX filing summary, got: %q", out)
	}
}

func TestCallTool_UnknownTool(t *testing.T) {
	r := &GeminiResearcher{}
	if _, err := r.callTool(context.Background(), "launch_missiles", nil); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}
