package company

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_WellFormedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empresas.csv")
	content := "Empresa,Ticker,Relatorio_URL\n" +
		"Netflix,NFLX,https://ir.netflix.net/10k-2023\n" +
		"Tesla,TSLA,N/A - Sem URL\n" +
		"Apple,AAPL,https://investor.apple.com/10k\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	// File order must be preserved.
	expected := []Record{
		{Name: "Netflix", Ticker: "NFLX", ReportURL: "https://ir.netflix.net/10k-2023"},
		{Name: "Tesla", Ticker: "TSLA", ReportURL: "N/A - Sem URL"},
		{Name: "Apple", Ticker: "AAPL", ReportURL: "https://investor.apple.com/10k"},
	}
	for i, want := range expected {
		if records[i] != want {
			t.Errorf("record %d: got %+v, want %+v", i, records[i], want)
		}
	}
}

func TestLoad_MissingFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empresas.csv")

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 default records, got %d", len(records))
	}
	if records[0].Ticker != "NFLX" || records[1].Ticker != "TSLA" {
		t.Errorf("unexpected default tickers: %q, %q", records[0].Ticker, records[1].Ticker)
	}
	if records[0].ReportURL != NoURLMarker {
		t.Errorf("default URL should be the no-URL marker, got %q", records[0].ReportURL)
	}

	// The file must now exist on disk.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default file was not created: %v", err)
	}

	// A second load of the now-existing file returns the same rows.
	again, err := Load(path)
	if err != nil {
		t.Fatalf("second Load returned error: %v", err)
	}
	if len(again) != 2 {
		t.Fatalf("second load: expected 2 records, got %d", len(again))
	}
	for i := range records {
		if again[i] != records[i] {
			t.Errorf("second load record %d: got %+v, want %+v", i, again[i], records[i])
		}
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empresas.csv")
	content := "Empresa,Ticker\nNetflix,NFLX\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing Relatorio_URL column")
	}
}

func TestLabel(t *testing.T) {
	r := Record{Name: "Netflix", Ticker: "NFLX"}
	if got := r.Label(); got != "Netflix (NFLX)" {
		t.Errorf("Label() = %q", got)
	}
}
