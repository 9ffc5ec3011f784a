// Package tabular is an in-process data engine over immutable tables.
package tabular

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/zerr"
)

// Kind is the value type of a column.
type Kind string

const (
	// KindNumeric holds numbers.
	KindNumeric Kind = "numeric"
	// KindBoolean holds TRUE and FALSE.
	KindBoolean Kind = "boolean"
	// KindCharacter holds text.
	KindCharacter Kind = "character"
)

// Column is one named column. Missing cells have an empty formatted value.
type Column struct {
	Name    string   `json:"name"`
	Kind    Kind     `json:"kind"`
	Cells   []string `json:"cells"`
	Missing []bool   `json:"missing"`

	numbers []float64
}

// NewColumn builds a column from raw cells, inferring its kind.
// Empty cells and "NA" are missing.
func NewColumn(name string, raw []string) Column {
	col := Column{
		Name:    name,
		Cells:   make([]string, len(raw)),
		Missing: make([]bool, len(raw)),
	}
	for i, cell := range raw {
		cell = strings.TrimSpace(cell)
		if cell == "" || cell == "NA" {
			col.Missing[i] = true
			continue
		}
		col.Cells[i] = cell
	}
	col.Kind = inferKind(col.Cells, col.Missing)
	col.index()
	return col
}

func inferKind(cells []string, missing []bool) Kind {
	numeric, boolean, seen := true, true, false
	for i, cell := range cells {
		if missing[i] {
			continue
		}
		seen = true
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numeric = false
		}
		if _, ok := parseBool(cell); !ok {
			boolean = false
		}
	}
	switch {
	case !seen:
		return KindCharacter
	case numeric:
		return KindNumeric
	case boolean:
		return KindBoolean
	default:
		return KindCharacter
	}
}

// index precomputes numeric values for sorting and range filters.
func (c *Column) index() {
	if c.Kind != KindNumeric {
		c.numbers = nil
		return
	}
	c.numbers = make([]float64, len(c.Cells))
	for i, cell := range c.Cells {
		if c.Missing[i] {
			continue
		}
		c.numbers[i], _ = strconv.ParseFloat(cell, 64)
	}
}

func (c *Column) isMissing(row int) bool {
	return row < len(c.Missing) && c.Missing[row]
}

func (c *Column) take(rows []int) Column {
	out := Column{
		Name:    c.Name,
		Kind:    c.Kind,
		Cells:   make([]string, len(rows)),
		Missing: make([]bool, len(rows)),
	}
	for i, r := range rows {
		out.Cells[i] = c.Cells[r]
		out.Missing[i] = c.isMissing(r)
	}
	out.index()
	return out
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// Table is an immutable data set of equally long columns.
type Table struct {
	id       domain.Identity
	columns  []Column
	rowNames []string
	rows     int
}

// NewTable creates a table. rowNames may be nil; otherwise it names every row.
func NewTable(columns []Column, rowNames []string) (*Table, error) {
	rows := len(rowNames)
	if len(columns) > 0 {
		rows = len(columns[0].Cells)
	}
	for _, col := range columns {
		if len(col.Cells) != rows || len(col.Missing) != rows {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTable, "column length differs"), "column", col.Name)
		}
	}
	if rowNames != nil && len(rowNames) != rows {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTable, "row name count differs"), "rows", rows)
	}

	t := &Table{
		columns:  make([]Column, len(columns)),
		rowNames: slices.Clone(rowNames),
		rows:     rows,
	}
	for i, col := range columns {
		col.index()
		t.columns[i] = col
	}
	return t, nil
}

// Identity implements domain.Dataset.
func (t *Table) Identity() domain.Identity {
	return t.id
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return t.rows
}

// Columns returns the columns of the table.
func (t *Table) Columns() []Column {
	return t.columns
}

// ColumnNames returns the names of all columns in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// RowNames returns the row names, or nil when rows are unnamed.
func (t *Table) RowNames() []string {
	return t.rowNames
}

// withIdentity returns a copy of t sharing its columns under a new identity.
func (t *Table) withIdentity(id domain.Identity) *Table {
	out := *t
	out.id = id
	return &out
}

// take returns a new table holding the given rows in order.
func (t *Table) take(rows []int) *Table {
	out := &Table{
		columns: make([]Column, len(t.columns)),
		rows:    len(rows),
	}
	for i := range t.columns {
		out.columns[i] = t.columns[i].take(rows)
	}
	if t.rowNames != nil {
		out.rowNames = make([]string, len(rows))
		for i, r := range rows {
			out.rowNames[i] = t.rowNames[r]
		}
	}
	return out
}

func asTable(data domain.Dataset) (*Table, error) {
	t, ok := data.(*Table)
	if !ok || t == nil {
		return nil, zerr.Wrap(domain.ErrForeignDataset, "unsupported dataset")
	}
	return t, nil
}
