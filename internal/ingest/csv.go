package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV turns a CSV document into header-keyed source rows. The first
// record is the header; short rows are padded by the csv reader settings
// below rather than rejected, since sheets exported by hand are ragged
// more often than not.
func ReadCSV(r io.Reader) ([]SourceRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []SourceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d: %w", len(rows)+2, err)
		}
		row := make(SourceRow, len(header))
		for i, col := range header {
			if col == "" || i >= len(record) {
				continue
			}
			row[col] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}
