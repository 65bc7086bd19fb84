package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"agentic_analyst/pkg/core/utils"
)

// FilePrefix is the fixed literal prepended to every report filename.
const FilePrefix = "Relatorio_"

// Writer renders finished reports to Markdown files in OutputDir,
// overwriting any existing file of the same name.
type Writer struct {
	OutputDir string
}

func NewWriter(outputDir string) *Writer {
	if outputDir == "" {
		outputDir = "."
	}
	return &Writer{OutputDir: outputDir}
}

// SanitizeLabel derives the filename stem from a company label: spaces
// become underscores and parentheses are stripped. Two labels that
// sanitize to the same stem will overwrite each other's file.
func SanitizeLabel(label string) string {
	clean := strings.ReplaceAll(label, " ", "_")
	clean = strings.ReplaceAll(clean, "(", "")
	clean = strings.ReplaceAll(clean, ")", "")
	return clean
}

// Write renders the report and persists it, returning the file path.
// The filename comes from the loop's company label, not from the
// model-filled company field.
func (w *Writer) Write(companyLabel string, rep *EquityReport) (string, error) {
	markdown := Render(rep)
	if !utils.ValidateMarkdown(markdown) {
		return "", fmt.Errorf("rendered report for %s is not parseable markdown", companyLabel)
	}

	path := filepath.Join(w.OutputDir, FilePrefix+SanitizeLabel(companyLabel)+".md")
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}

// Render produces the fixed Markdown document. Section order is part of
// the report contract: header, executive summary, indicator table, news
// list, fundamental analysis, disclaimer.
func Render(rep *EquityReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# 📄 Equity Analysis Report: %s\n", rep.Company)
	fmt.Fprintf(&sb, "**Analysis Date:** %s\n\n---\n\n", rep.ReportDate)

	sb.WriteString("## I. Executive Summary\n")
	sb.WriteString(utils.CleanMarkdown(rep.ExecutiveSummary))
	sb.WriteString("\n\n")

	sb.WriteString("| Indicator | Detail |\n")
	sb.WriteString("| :--- | :--- |\n")
	fmt.Fprintf(&sb, "| **Current Share Price** | **%s** |\n", rep.SharePrice)
	fmt.Fprintf(&sb, "| **Recommendation** | **%s** |\n", strings.ToUpper(rep.Recommendation))
	fmt.Fprintf(&sb, "| **Overall Sentiment** | %s |\n\n---\n\n", rep.Sentiment)

	sb.WriteString("## II. Context and Relevant News\n")
	sb.WriteString("### Latest News Highlights\n")
	for _, item := range rep.TopNews {
		fmt.Fprintf(&sb, "* %s\n", item)
	}
	sb.WriteString("\n---\n\n")

	sb.WriteString("## III. Fundamental Analysis (Official Document Summary)\n")
	sb.WriteString(utils.CleanMarkdown(rep.FinancialSummary))
	sb.WriteString("\n\n---\n\n")

	sb.WriteString("**Note:** The fundamental analysis was extracted from the provided URL and processed by a simulated document-extraction tool.\n")

	return sb.String()
}
