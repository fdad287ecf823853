// Package export renders claim results as downloadable CSV and XLSX reports.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"claimflow/internal/domain"
)

// columns defines the document table header row (13 columns).
var columns = []string{
	"Document #",
	"Document Type",
	"Patient Name",
	"Hospital Name",
	"Total Amount",
	"Date of Service",
	"Diagnosis",
	"Admission Date",
	"Discharge Date",
	"ID Number",
	"Insurance Provider",
	"Claim Status",
	"Claim Reason",
}

// Columns returns a copy of the document table header.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// recordToRow converts one record to a 13-element row. Columns that do not
// apply to the record's type are left empty.
func recordToRow(idx int, rec domain.Record, verdict domain.ClaimDecision) []string {
	row := make([]string, len(columns))
	row[0] = strconv.Itoa(idx + 1)
	row[11] = string(verdict.Status)
	row[12] = verdict.Reason
	if rec == nil {
		return row
	}
	row[1] = string(rec.DocumentType())

	switch r := rec.(type) {
	case domain.BillRecord:
		row[3] = r.HospitalName
		row[4] = strconv.Itoa(r.TotalAmount)
		row[5] = r.DateOfService
	case domain.DischargeSummaryRecord:
		row[2] = r.PatientName
		row[6] = r.Diagnosis
		row[7] = r.AdmissionDate
		row[8] = r.DischargeDate
	case domain.IDCardRecord:
		row[2] = r.PatientName
		row[9] = r.IDNumber
		row[10] = r.InsuranceProvider
	}
	return row
}

// resultRows returns one row per document. A result without documents still
// yields a single row carrying the decision.
func resultRows(result *domain.ClaimResult) [][]string {
	if len(result.Documents) == 0 {
		row := recordToRow(0, nil, result.ClaimDecision)
		row[0] = ""
		return [][]string{row}
	}
	rows := make([][]string, 0, len(result.Documents))
	for i, rec := range result.Documents {
		rows = append(rows, recordToRow(i, rec, result.ClaimDecision))
	}
	return rows
}

func joinMissing(types []domain.DocumentType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// BuildFilename returns the Content-Disposition filename for a claim report.
// Format: claim_report_{YYYY-MM-DD}.{ext}
func BuildFilename(format domain.ExportFormat, now time.Time) string {
	return fmt.Sprintf("claim_report_%s.%s", now.Format("2006-01-02"), format)
}

// ParseFormat validates a requested export format. Empty means CSV.
func ParseFormat(s string) (domain.ExportFormat, error) {
	switch domain.ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", domain.ExportFormatCSV:
		return domain.ExportFormatCSV, nil
	case domain.ExportFormatXLSX:
		return domain.ExportFormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, s)
	}
}

// Write renders result in the given format.
func Write(w io.Writer, format domain.ExportFormat, result *domain.ClaimResult) error {
	switch format {
	case domain.ExportFormatCSV:
		return WriteCSV(w, result)
	case domain.ExportFormatXLSX:
		return WriteXLSX(w, result)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, format)
	}
}
