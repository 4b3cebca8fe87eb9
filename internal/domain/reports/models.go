package reports

import "time"

// SummaryRow aggregates one user's attendance over the requested range.
type SummaryRow struct {
	UserID     string  `json:"userId"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Present    int     `json:"present"`
	Late       int     `json:"late"`
	Absent     int     `json:"absent"`
	HalfDays   int     `json:"halfDays"`
	TotalHours float64 `json:"totalHours"`
}

type Summary struct {
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Rows      []SummaryRow `json:"rows"`
}

type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatCSV, FormatPDF, FormatXLSX:
		return Format(s), true
	case "":
		return FormatCSV, true
	}
	return "", false
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

func (f Format) Filename() string {
	return "attendance-report." + string(f)
}
