// Package export renders reports as CSV, PDF and XLSX documents.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/SscSPs/property_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts a format name case-insensitively. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatPDF, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q", apperrors.ErrValidation, s)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json; charset=utf-8"
	}
}

// Table is a report flattened for export. Cells hold strings, decimals, ints or times.
type Table struct {
	Title   string
	Details []string // Printed under the title in PDF and XLSX
	Columns []string
	Rows    [][]any
	Footer  []any // Totals row, omitted from CSV
}

// Options tune rendering.
type Options struct {
	CurrencySymbol string
}

// Render encodes the table. JSON is not a table format and is rejected.
func Render(format Format, table Table, opts Options) ([]byte, error) {
	switch format {
	case FormatCSV:
		return CSV(table)
	case FormatPDF:
		return PDF(table, opts)
	case FormatXLSX:
		return XLSX(table)
	default:
		return nil, fmt.Errorf("%w: format %q is not a document format", apperrors.ErrValidation, format)
	}
}

// FileName builds a download name such as "ledger-10-2024-08-01_2024-09-30.pdf".
func FileName(base string, window domain.Window, format Format) string {
	name := fmt.Sprintf("%s-%s_%s", base, domain.FormatDay(window.Start), domain.FormatDay(window.End))
	return sanitize(name) + "." + string(format)
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '-'
		}
	}, s)
}

// plain renders a cell for CSV.
func plain(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case decimal.Decimal:
		return c.StringFixed(2)
	case time.Time:
		if c.IsZero() {
			return ""
		}
		return domain.FormatDay(c)
	default:
		return fmt.Sprint(c)
	}
}

// pretty renders a cell for print, with currency symbols on amounts.
func pretty(v any, symbol string) string {
	if d, ok := v.(decimal.Decimal); ok {
		return utils.FormatCurrency(d, symbol)
	}
	return plain(v)
}
