// Package company loads the batch's company list from CSV.
package company

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// csvHeader is the expected header row of the company list file.
var csvHeader = []string{"Empresa", "Ticker", "Relatorio_URL"}

// NoURLMarker is the placeholder written when a company has no filing URL.
const NoURLMarker = "N/A - Sem URL"

// Record is one row of the company list. Read-only after load.
type Record struct {
	Name      string
	Ticker    string
	ReportURL string
}

// Label returns the display label used in prompts, logs and filenames,
// e.g. "Netflix (NFLX)".
func (r Record) Label() string {
	return fmt.Sprintf("%s (%s)", r.Name, r.Ticker)
}

// defaultRecords seeds the list file on first run.
func defaultRecords() []Record {
	return []Record{
		{Name: "Netflix", Ticker: "NFLX", ReportURL: NoURLMarker},
		{Name: "Tesla", Ticker: "TSLA", ReportURL: NoURLMarker},
	}
}

// Load reads the company list from path, in file order.
// If the file does not exist it is created with two placeholder rows and
// those rows are returned, so a second Load of the same path yields the
// same result. Any other I/O error is returned as-is: without a company
// list the run cannot proceed.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("[LIST] %s not found. Writing example list.\n", path)
			records := defaultRecords()
			if writeErr := writeList(path, records); writeErr != nil {
				return nil, fmt.Errorf("failed to create default company list: %w", writeErr)
			}
			return records, nil
		}
		return nil, fmt.Errorf("failed to open company list: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse company list: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("company list %s is empty (missing header)", path)
	}

	// Resolve columns by header name so extra columns are tolerated.
	idx := map[string]int{}
	for i, col := range rows[0] {
		idx[col] = i
	}
	for _, col := range csvHeader {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("company list %s is missing column %q", path, col)
		}
	}

	var records []Record
	for _, row := range rows[1:] {
		records = append(records, Record{
			Name:      row[idx["Empresa"]],
			Ticker:    row[idx["Ticker"]],
			ReportURL: row[idx["Relatorio_URL"]],
		})
	}

	fmt.Printf("[LIST] Loaded %d companies from %s\n", len(records), path)
	return records, nil
}

func writeList(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.Write([]string{r.Name, r.Ticker, r.ReportURL}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
