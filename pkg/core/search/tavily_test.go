package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Query != "NFLX share price" {
			t.Errorf("unexpected query: %q", req.Query)
		}
		if req.MaxResults != 3 {
			t.Errorf("expected max_results=3, got %d", req.MaxResults)
		}
		json.NewEncoder(w).Encode(searchResponse{
			Results: []Result{
				{Title: "Netflix stock", URL: "https://example.com/a", Content: "<p>NFLX trades at <b>$550</b></p>"},
				{Title: "Q4 earnings", URL: "https://example.com/b", Content: "Plain text snippet"},
			},
		})
	}))
	defer server.Close()

	client := &Client{APIKey: "test-key", BaseURL: server.URL}
	results, err := client.Search(context.Background(), "NFLX share price")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Content != "NFLX trades at $550" {
		t.Errorf("HTML not flattened: %q", results[0].Content)
	}
	if results[1].Content != "Plain text snippet" {
		t.Errorf("plain text mangled: %q", results[1].Content)
	}
}

func TestSearch_MissingAPIKey(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "")
	client := &Client{}
	if _, err := client.Search(context.Background(), "anything"); err == nil {
		t.Fatal("expected error when API key is missing")
	}
}

func TestSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := &Client{APIKey: "test-key", BaseURL: server.URL}
	_, err := client.Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error on 429 response")
	}
	if !strings.Contains(err.Error(), "TAVILY_API_ERROR") {
		t.Errorf("error not tagged: %v", err)
	}
}

func TestFormatResults(t *testing.T) {
	out := FormatResults([]Result{{Title: "A", URL: "u", Content: "c"}})
	if !strings.Contains(out, "1. A (u)") {
		t.Errorf("unexpected formatting:\n%s", out)
	}
	if FormatResults(nil) != "No search results found." {
		t.Error("empty results should yield fixed sentence")
	}
}
