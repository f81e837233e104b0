package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const pdfUsableWidth = 277.0 // A4 landscape minus 10mm margins

// PDF renders the table on A4 landscape pages.
func PDF(table Table, opts Options) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, table.Title)
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	for _, line := range table.Details {
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	widths := columnWidths(len(table.Columns))
	writeRow := func(cells []any, style string) {
		pdf.SetFont("Arial", style, 9)
		for i, w := range widths {
			var v any
			if i < len(cells) {
				v = cells[i]
			}
			align := "L"
			if _, ok := v.(decimal.Decimal); ok {
				align = "R"
			}
			pdf.CellFormat(w, 6, pretty(v, opts.CurrencySymbol), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	writeRow(header, "B")
	for _, row := range table.Rows {
		writeRow(row, "")
	}
	if len(table.Footer) > 0 {
		writeRow(table.Footer, "B")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// columnWidths gives descriptive columns more room when there are enough of them.
func columnWidths(n int) []float64 {
	if n == 0 {
		return nil
	}
	widths := make([]float64, n)
	if n < 3 {
		for i := range widths {
			widths[i] = pdfUsableWidth / float64(n)
		}
		return widths
	}
	narrow := pdfUsableWidth / float64(n+1)
	for i := range widths {
		widths[i] = narrow
	}
	// The third column is the description or name in every table.
	widths[2] = narrow * 2
	return widths
}
