package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCSVWriterWrite(t *testing.T) {
	report := &Report{
		Title:    "Subscription Report",
		Currency: "KRW",
		Username: "alice",
		Rows: []Row{
			{
				ServiceName:     "넷플릭스",
				PlanName:        "Premium",
				MonthlyPrice:    decimal.RequireFromString("17000"),
				NextPaymentDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			},
			{
				ServiceName:     "Spotify",
				PlanName:        "Annual",
				MonthlyPrice:    decimal.RequireFromString("9.99"),
				NextPaymentDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Total: decimal.RequireFromString("17009.99"),
	}

	var buf bytes.Buffer
	if err := NewCSVWriter().Write(&buf, report); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("output should start with UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimRight(string(out[3:]), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}

	if lines[0] != "ServiceName,PlanName,MonthlyPrice,NextPaymentDate" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "넷플릭스,Premium,17000.00,2025-03-15" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if lines[2] != "Spotify,Annual,9.99,2026-01-01" {
		t.Errorf("unexpected second row: %q", lines[2])
	}
}

func TestCSVWriterWriteEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVWriter().Write(&buf, &Report{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String()[3:], "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("empty report should produce only the header row, got %d lines", len(lines))
	}
}

func TestPDFWriterWrite(t *testing.T) {
	report := &Report{
		Title:     "Subscription Report",
		Currency:  "KRW",
		Username:  "alice",
		Generated: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Rows: []Row{
			{
				ServiceName:     "Netflix",
				PlanName:        "Premium",
				MonthlyPrice:    decimal.RequireFromString("17000"),
				NextPaymentDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		Total: decimal.RequireFromString("17000"),
	}

	var buf bytes.Buffer
	if err := NewPDFWriter().Write(&buf, report); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output should start with the PDF magic bytes")
	}
}
