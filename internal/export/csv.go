package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSV writes the header and rows. Totals are left out so every line has the row shape.
func CSV(table Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = plain(row[i])
			}
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
