package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func sampleSummary() Summary {
	return Summary{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Rows: []SummaryRow{
			{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Present: 18, Late: 2, TotalHours: 158.5},
			{FirstName: "John", LastName: "Smith", Email: "john@example.com", Absent: 1, HalfDays: 1, TotalHours: 120},
		},
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, FormatCSV, sampleSummary()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Employee,Email,Present,Late,Absent,Half Days,Total Hours" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "Jane Doe,jane@example.com,18,2,0,0,158.50" {
		t.Errorf("unexpected row: %s", lines[1])
	}
}

func TestExportPDFAndXLSXProduceOutput(t *testing.T) {
	for _, format := range []Format{FormatPDF, FormatXLSX} {
		var buf bytes.Buffer
		if err := Export(&buf, format, sampleSummary()); err != nil {
			t.Fatalf("Export(%s): %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Export(%s) wrote nothing", format)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatCSV, true},
		{"csv", FormatCSV, true},
		{"pdf", FormatPDF, true},
		{"xlsx", FormatXLSX, true},
		{"docx", "", false},
		{"CSV", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
