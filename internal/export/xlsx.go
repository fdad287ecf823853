package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"claimflow/internal/domain"
)

// Sheet names of the XLSX report.
const (
	DocumentsSheet = "Documents"
	SummarySheet   = "Summary"
)

// WriteXLSX writes a workbook with a Documents sheet (one row per record) and
// a Summary sheet (decision, missing documents, discrepancies) to w.
func WriteXLSX(w io.Writer, result *domain.ClaimResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", DocumentsSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := setRow(f, DocumentsSheet, 1, columns); err != nil {
		return err
	}
	if err := f.SetRowStyle(DocumentsSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	for i, row := range resultRows(result) {
		if err := setRow(f, DocumentsSheet, i+2, row); err != nil {
			return err
		}
	}

	summary := [][]string{
		{"Claim Status", string(result.ClaimDecision.Status)},
		{"Claim Reason", result.ClaimDecision.Reason},
		{"Missing Documents", joinMissing(result.Validation.MissingDocuments)},
		{"Discrepancies", strings.Join(result.Validation.Discrepancies, ", ")},
		{"Document Count", fmt.Sprint(len(result.Documents))},
	}
	for i, row := range summary {
		if err := setRow(f, SummarySheet, i+1, row); err != nil {
			return err
		}
	}
	if err := f.SetColStyle(SummarySheet, "A", bold); err != nil {
		return fmt.Errorf("styling summary labels: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
