package export

import (
	"bytes"
	"time"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "summary"
	rowsSheet    = "rows"
)

// XLSX writes a workbook with a summary sheet and a rows sheet. Amounts are stored as
// numbers so they can be summed in a spreadsheet.
func XLSX(table Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(rowsSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", table.Title)
	for i, line := range table.Details {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		_ = f.SetCellValue(summarySheet, cell, line)
	}

	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(rowsSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range table.Rows {
		if err := writeXLSXRow(f, i+2, row); err != nil {
			return nil, err
		}
	}
	if len(table.Footer) > 0 {
		if err := writeXLSXRow(f, len(table.Rows)+2, table.Footer); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXLSXRow(f *excelize.File, rowNum int, cells []any) error {
	values := make([]any, len(cells))
	for i, v := range cells {
		switch c := v.(type) {
		case decimal.Decimal:
			values[i] = c.Round(2).InexactFloat64()
		case time.Time:
			if c.IsZero() {
				values[i] = ""
			} else {
				values[i] = domain.FormatDay(c)
			}
		default:
			values[i] = c
		}
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(rowsSheet, cell, &values)
}
