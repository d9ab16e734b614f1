package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM makes spreadsheet applications detect the encoding; without it
// Excel renders non-ASCII service names as mojibake.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"ServiceName", "PlanName", "MonthlyPrice", "NextPaymentDate"}

// CSVWriter renders reports as comma-separated values.
type CSVWriter struct{}

func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// ContentType returns the MIME type for CSV downloads
func (w *CSVWriter) ContentType() string {
	return "text/csv; charset=utf-8"
}

// Write renders the report rows to out, prefixed with a UTF-8 BOM.
func (w *CSVWriter) Write(out io.Writer, report *Report) error {
	if _, err := out.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(out)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.ServiceName,
			row.PlanName,
			row.MonthlyPrice.StringFixed(2),
			row.NextPaymentDate.Format("2006-01-02"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
