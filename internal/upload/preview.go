package upload

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
)

// PreviewRows is the maximum number of rows kept for display, header included.
const PreviewRows = 5

func parseTable(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}
}

func head(rows [][]string, n int) [][]string {
	if len(rows) > n {
		rows = rows[:n]
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}

	return out
}
