package tenders

import (
	"fmt"
	"govconnect/pkg/domain"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Saved tenders"

// cadFormat shows whole dollars with the en-CA currency symbol.
const cadFormat = `[$$-1009]#,##0`

var exportHeader = []any{ //nolint: gochecknoglobals
	"ID", "Title", "Department", "Buyer", "Deadline", "Closing date",
	"Min value (" + domain.CurrencyCode() + ")", "Max value (" + domain.CurrencyCode() + ")",
	"Value range", "NAICS codes", "Match score",
}

func writeWorkbook(w io.Writer, tenders []domain.Tender) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("could not name sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	for i, t := range tenders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("could not address row: %w", err)
		}

		row := []any{
			string(t.ID), t.Title, t.Department, t.Buyer,
			t.Deadline, t.ClosingDate,
			t.Value.Min, t.Value.Max, t.Value.String(),
			strings.Join(t.NAICSCodes, ", "), t.MatchScore,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("could not write tender %s: %w", t.ID, err)
		}
	}

	if err := styleColumns(f, len(tenders)); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}

	return nil
}

func styleColumns(f *excelize.File, rows int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("could not create header style: %w", err)
	}
	if err := f.SetRowStyle(exportSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("could not style header: %w", err)
	}

	if err := f.SetColWidth(exportSheet, "B", "D", 40); err != nil {
		return fmt.Errorf("could not size columns: %w", err)
	}
	if err := f.SetColWidth(exportSheet, "E", "J", 18); err != nil {
		return fmt.Errorf("could not size columns: %w", err)
	}

	if rows == 0 {
		return nil
	}

	numFmt := cadFormat
	cad, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("could not create currency style: %w", err)
	}
	if err := f.SetCellStyle(exportSheet, "G2", fmt.Sprintf("H%d", rows+1), cad); err != nil {
		return fmt.Errorf("could not style values: %w", err)
	}

	dateFmt := "yyyy-mm-dd"
	date, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return fmt.Errorf("could not create date style: %w", err)
	}
	if err := f.SetCellStyle(exportSheet, "E2", fmt.Sprintf("F%d", rows+1), date); err != nil {
		return fmt.Errorf("could not style dates: %w", err)
	}

	return nil
}
