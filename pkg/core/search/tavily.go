// Package search provides the web-search backend for the research
// agent's web_search tool.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const defaultBaseURL = "https://api.tavily.com/search"

// Client calls the Tavily search API. The zero value reads
// TAVILY_API_KEY from the environment and returns at most 3 results.
type Client struct {
	APIKey     string
	BaseURL    string
	MaxResults int
	HTTPClient *http.Client
}

// Result is a single search hit, with any HTML already flattened to text.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Search runs a query and returns up to MaxResults hits.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	apiKey := c.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("TAVILY_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("TAVILY_API_KEY_MISSING: Please set TAVILY_API_KEY env var")
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	maxResults := c.MaxResults
	if maxResults <= 0 {
		maxResults = 3
	}

	reqBody := searchRequest{
		APIKey:     apiKey,
		Query:      query,
		MaxResults: maxResults,
	}
	jsonBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("TAVILY_MARSHAL_ERROR: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", baseURL, bytes.NewBuffer(jsonBytes))
	if err != nil {
		return nil, fmt.Errorf("TAVILY_REQ_CREATE_ERROR: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TAVILY_API_CALL_ERROR: %v", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("TAVILY_READ_BODY_ERROR: %v", err)
	}
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("TAVILY_API_ERROR: status=%d body=%s", res.StatusCode, string(body))
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("TAVILY_UNMARSHAL_ERROR: %v", err)
	}

	results := response.Results
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	for i := range results {
		results[i].Content = flattenHTML(results[i].Content)
	}
	return results, nil
}

// FormatResults renders hits as the plain-text observation fed back to
// the model.
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return "No search results found."
	}
	var sb strings.Builder
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s (%s)\n%s\n", i+1, r.Title, r.URL, r.Content)
	}
	return sb.String()
}

// flattenHTML extracts readable text from snippets that arrive as HTML
// fragments. Plain-text snippets pass through unchanged.
func flattenHTML(content string) string {
	if !strings.Contains(content, "<") {
		return content
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return content
	}
	return strings.Join(strings.Fields(text), " ")
}
