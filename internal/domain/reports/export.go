package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Employee", "Email", "Present", "Late", "Absent", "Half Days", "Total Hours"}

// Export renders the summary in the requested format.
func Export(w io.Writer, format Format, summary Summary) error {
	switch format {
	case FormatPDF:
		return exportPDF(w, summary)
	case FormatXLSX:
		return exportXLSX(w, summary)
	default:
		return exportCSV(w, summary)
	}
}

func exportCSV(w io.Writer, summary Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeaders); err != nil {
		return err
	}
	for _, row := range summary.Rows {
		if err := cw.Write(csvRow(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(row SummaryRow) []string {
	return []string{
		row.FirstName + " " + row.LastName,
		row.Email,
		fmt.Sprintf("%d", row.Present),
		fmt.Sprintf("%d", row.Late),
		fmt.Sprintf("%d", row.Absent),
		fmt.Sprintf("%d", row.HalfDays),
		fmt.Sprintf("%.2f", row.TotalHours),
	}
}

func exportPDF(w io.Writer, summary Summary) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Attendance Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		summary.StartDate.Format("2006-01-02"), summary.EndDate.Format("2006-01-02")))
	pdf.Ln(10)

	widths := []float64{70, 70, 22, 22, 22, 22, 28}
	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range exportHeaders {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range summary.Rows {
		for i, cell := range csvRow(row) {
			pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}

func exportXLSX(w io.Writer, summary Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	for r, row := range summary.Rows {
		values := []any{
			row.FirstName + " " + row.LastName, row.Email,
			row.Present, row.Late, row.Absent, row.HalfDays, row.TotalHours,
		}
		for c, value := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	if err := f.SetSheetName(sheet, "Attendance"); err != nil {
		return err
	}
	return f.Write(w)
}
