package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"agentic_analyst/pkg/core/agent"
	"agentic_analyst/pkg/core/company"
	"agentic_analyst/pkg/core/config"
	"agentic_analyst/pkg/core/pipeline"
	"agentic_analyst/pkg/core/ragdoc"
	"agentic_analyst/pkg/core/report"
	"agentic_analyst/pkg/core/research"
	"agentic_analyst/pkg/core/search"
	"agentic_analyst/pkg/core/store"

	"gopkg.in/yaml.v2"
)

func main() {
	ctx := context.Background()

	settings := config.Load()
	fmt.Println("Environment and keys loaded.")

	if settings.GeminiAPIKey == "" {
		log.Fatal("Error: GEMINI_API_KEY is not set.")
	}

	// Provider selection config; Gemini is the default when the file
	// is absent.
	var agentCfg agent.Config
	if configData, err := os.ReadFile("config/models.yaml"); err == nil {
		yaml.Unmarshal(configData, &agentCfg)
	}
	if agentCfg.ActiveProvider == "" {
		agentCfg.ActiveProvider = "gemini"
	}
	agentMgr := agent.NewManager(agentCfg)

	// CSV permission errors and the like are fatal: no list, no run.
	companies, err := company.Load(settings.CompaniesCSV)
	if err != nil {
		log.Fatalf("Critical: could not load company list: %v", err)
	}

	researcher := &research.GeminiResearcher{
		Searcher:   &search.Client{APIKey: settings.TavilyAPIKey, MaxResults: 3},
		ConsultDoc: ragdoc.Consult,
	}

	orch := pipeline.NewOrchestrator(
		researcher,
		report.NewCompiler(agentMgr),
		report.NewWriter(settings.OutputDir),
		settings.PacingDelay,
	)

	if settings.DatabaseURL != "" {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("⚠️ [ARCHIVE] Disabled: %v\n", err)
		} else {
			defer store.Close()
			orch.SetArchive(store.NewReportArchive())
		}
	}

	orch.RunAll(ctx, companies)
}
