package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
)

// DecodeCSV reads an exported sheet into a Matrix. The first record supplies
// the header set; later records map positionally onto it, with short records
// leaving the trailing cells empty. Human-maintained sheets are full of
// ragged rows and stray quotes, hence the lax reader settings.
func DecodeCSV(r io.Reader) (Matrix, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return Matrix{}, fmt.Errorf("failed to read sheet csv: %w", err)
	}
	if len(records) == 0 {
		return Matrix{}, nil
	}

	m := Matrix{Headers: records[0]}
	for _, record := range records[1:] {
		row := make(Row, len(m.Headers))
		for i, header := range m.Headers {
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = ""
			}
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}
