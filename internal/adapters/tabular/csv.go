package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseCSV reads a table from CSV content with a header row.
// A blank first header marks the first column as row names.
func ParseCSV(content []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return NewTable(nil, nil)
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read header")
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read records")
	}

	hasRowNames := len(header) > 0 && header[0] == ""
	first := 0
	if hasRowNames {
		first = 1
	}

	raw := make([][]string, len(header))
	var rowNames []string
	if hasRowNames {
		rowNames = make([]string, 0, len(records))
	}
	for line, record := range records {
		if len(record) != len(header) {
			return nil, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrInvalidTable, "wrong number of fields"), "line", line+2),
				"fields", len(record),
			)
		}
		if hasRowNames {
			rowNames = append(rowNames, record[0])
		}
		for i := first; i < len(record); i++ {
			raw[i] = append(raw[i], record[i])
		}
	}

	columns := make([]Column, 0, len(header)-first)
	for i := first; i < len(header); i++ {
		cells := raw[i]
		if cells == nil {
			cells = []string{}
		}
		columns = append(columns, NewColumn(header[i], cells))
	}
	return NewTable(columns, rowNames)
}

// fingerprint hashes file content to detect unchanged reloads.
func fingerprint(content []byte) uint64 {
	return xxhash.Sum64(content)
}
