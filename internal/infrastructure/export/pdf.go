package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PDFWriter renders reports as a single-page A4 table with a total line.
type PDFWriter struct {
	printer *message.Printer
}

func NewPDFWriter() *PDFWriter {
	return &PDFWriter{
		printer: message.NewPrinter(language.English),
	}
}

// ContentType returns the MIME type for PDF downloads
func (w *PDFWriter) ContentType() string {
	return "application/pdf"
}

// Write renders the report to out.
func (w *PDFWriter) Write(out io.Writer, report *Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(report.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, report.Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	subtitle := fmt.Sprintf("%s - generated %s", report.Username,
		report.Generated.Format("2006-01-02"))
	pdf.CellFormat(0, 6, subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{60, 50, 40, 40}
	headers := []string{"Service", "Plan", "Monthly Price", "Next Payment"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range report.Rows {
		pdf.CellFormat(colWidths[0], 8, row.ServiceName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, row.PlanName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, w.formatPrice(row.MonthlyPrice.InexactFloat64(), report.Currency),
			"1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, row.NextPaymentDate.Format("2006-01-02"),
			"1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colWidths[0]+colWidths[1], 8, "Total Monthly Cost", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[2], 8, w.formatPrice(report.Total.InexactFloat64(), report.Currency),
		"1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, "", "1", 1, "C", false, 0, "")

	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

func (w *PDFWriter) formatPrice(amount float64, currency string) string {
	return w.printer.Sprintf("%v %s", number.Decimal(amount, number.MaxFractionDigits(2)), currency)
}
