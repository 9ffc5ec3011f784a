package tabular

import (
	"context"
	"slices"

	"go.trai.ch/gridview/internal/core/domain"
)

// maxFactorValues is the largest number of distinct values offered as a
// pick list for a text column.
const maxFactorValues = 20

// FormatColumnSlice implements ports.DataEngine.
func (e *Engine) FormatColumnSlice(
	_ context.Context, data domain.Dataset, column, start, length int,
) ([]string, bool, error) {
	t, err := asTable(data)
	if err != nil {
		return nil, false, err
	}
	if column < 1 || column > len(t.columns) {
		return nil, false, nil
	}
	col := &t.columns[column-1]
	lo, hi := window(t.rows, start, length)
	out := make([]string, 0, hi-lo)
	for r := lo; r < hi; r++ {
		out = append(out, col.Cells[r])
	}
	return out, true, nil
}

// FormatRowLabels implements ports.DataEngine.
func (e *Engine) FormatRowLabels(_ context.Context, data domain.Dataset, start, length int) ([]string, bool, error) {
	t, err := asTable(data)
	if err != nil {
		return nil, false, err
	}
	if t.rowNames == nil {
		return nil, false, nil
	}
	lo, hi := window(t.rows, start, length)
	return slices.Clone(t.rowNames[lo:hi]), true, nil
}

// window converts a one-based start and a length into bounds within rows.
func window(rows, start, length int) (int, int) {
	lo := min(max(start-1, 0), rows)
	hi := min(lo+max(length, 0), rows)
	return lo, hi
}

// DescribeColumns implements ports.DataEngine.
func (e *Engine) DescribeColumns(_ context.Context, data domain.Dataset) ([]domain.ColumnDescription, error) {
	t, err := asTable(data)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ColumnDescription, len(t.columns))
	for i := range t.columns {
		out[i] = describe(i+1, &t.columns[i])
	}
	return out, nil
}

func describe(index int, col *Column) domain.ColumnDescription {
	desc := domain.ColumnDescription{
		Index: index,
		Name:  col.Name,
		Type:  string(col.Kind),
	}

	switch col.Kind {
	case KindNumeric:
		desc.SearchType = "numeric"
		lo, hi, ok := numericBounds(col)
		if ok {
			desc.Min, desc.Max = &lo, &hi
		}
	case KindBoolean:
		desc.SearchType = "boolean"
		desc.Values = []string{"FALSE", "TRUE"}
	case KindCharacter:
		desc.SearchType = "character"
		if values := distinctValues(col); len(values) <= maxFactorValues {
			desc.SearchType = "factor"
			desc.Values = values
		}
	}
	return desc
}

func numericBounds(col *Column) (float64, float64, bool) {
	var lo, hi float64
	seen := false
	for i, v := range col.numbers {
		if col.Missing[i] {
			continue
		}
		if !seen {
			lo, hi, seen = v, v, true
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	return lo, hi, seen
}

// distinctValues returns the sorted distinct values of col, stopping once
// there are more than maxFactorValues.
func distinctValues(col *Column) []string {
	seen := make(map[string]struct{})
	for i, cell := range col.Cells {
		if col.Missing[i] {
			continue
		}
		seen[cell] = struct{}{}
		if len(seen) > maxFactorValues {
			break
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}
