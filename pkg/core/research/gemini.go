package research

import (
	"context"
	"fmt"
	"os"
	"strings"

	"agentic_analyst/pkg/core/search"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	toolWebSearch  = "web_search"
	toolConsultDoc = "consult_filing_summary"
)

// systemPrompt keeps the agent on facts; report prose comes later from
// the compiler.
const systemPrompt = `You are a helpful agent, proficient in financial analysis, focused on fact finding.
Your only task is to use the available tools to collect the requested information.
Call the tools as needed, then give a final, detailed answer that includes
the facts from the web and from the document.`

// WebSearcher is the backend for the web_search tool.
type WebSearcher interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
}

// GeminiResearcher runs the tool-calling chat loop against Gemini.
type GeminiResearcher struct {
	ModelName  string
	Searcher   WebSearcher
	ConsultDoc func(reportURL string) string
	// MaxRounds bounds the tool-call exchange; the model usually needs
	// two rounds (search, then document).
	MaxRounds int
}

var _ Researcher = (*GeminiResearcher)(nil)

func toolDeclarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        toolWebSearch,
			Description: "Search the web. Use it to find the current share price and the most recent news for a company.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type:        genai.TypeString,
						Description: "The search query, e.g. 'Netflix NFLX share price today'.",
					},
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        toolConsultDoc,
			Description: "Read and summarize the key financial data (revenue, net income, FCF) from the official financial report at the given URL.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"report_url": {
						Type:        genai.TypeString,
						Description: "URL of the official financial report.",
					},
				},
				Required: []string{"report_url"},
			},
		},
	}
}

// Research runs the agent for one company and returns its final text.
func (r *GeminiResearcher) Research(ctx context.Context, companyLabel string, reportURL string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	modelName := r.ModelName
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.0)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.Tools = []*genai.Tool{
		{FunctionDeclarations: toolDeclarations()},
	}

	session := model.StartChat()
	resp, err := session.SendMessage(ctx, genai.Text(BuildTask(companyLabel, reportURL)))
	if err != nil {
		return "", fmt.Errorf("research request failed: %w", err)
	}

	maxRounds := r.MaxRounds
	if maxRounds <= 0 {
		maxRounds = 8
	}

	for round := 0; round < maxRounds; round++ {
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", fmt.Errorf("empty response from model")
		}

		var replies []genai.Part
		var text strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			switch p := part.(type) {
			case genai.FunctionCall:
				fmt.Printf("[AGENT] Tool call: %s\n", p.Name)
				output, err := r.callTool(ctx, p.Name, p.Args)
				if err != nil {
					// Surface tool failures as observations so the model
					// can still answer from what it has.
					output = fmt.Sprintf("tool error: %v", err)
				}
				replies = append(replies, genai.FunctionResponse{
					Name:     p.Name,
					Response: map[string]any{"content": output},
				})
			case genai.Text:
				text.WriteString(string(p))
			}
		}

		if len(replies) == 0 {
			final := strings.TrimSpace(text.String())
			if final == "" {
				return "", fmt.Errorf("model returned no final answer")
			}
			return final, nil
		}

		resp, err = session.SendMessage(ctx, replies...)
		if err != nil {
			return "", fmt.Errorf("tool response exchange failed: %w", err)
		}
	}

	return "", fmt.Errorf("tool loop did not converge after %d rounds", maxRounds)
}

// callTool dispatches a single tool invocation requested by the model.
func (r *GeminiResearcher) callTool(ctx context.Context, name string, args map[string]any) (string, error) {
	switch name {
	case toolWebSearch:
		query, _ := args["query"].(string)
		if query == "" {
			return "", fmt.Errorf("web_search called without a query")
		}
		if r.Searcher == nil {
			return "", fmt.Errorf("no search backend configured")
		}
		results, err := r.Searcher.Search(ctx, query)
		if err != nil {
			return "", err
		}
		return search.FormatResults(results), nil

	case toolConsultDoc:
		url, _ := args["report_url"].(string)
		if r.ConsultDoc == nil {
			return "", fmt.Errorf("no document tool configured")
		}
		return r.ConsultDoc(url), nil

	default:
		return "", fmt.Errorf("unknown tool %q", name)
	}
}
