package tabular

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/gridview/internal/core/domain"
)

var numericRange = regexp.MustCompile(`^\s*(-?[0-9]*\.?[0-9]+)\s*[-_]\s*(-?[0-9]*\.?[0-9]+)\s*$`)

// apply filters, searches and sorts t. The result never shares rows with t.
func apply(t *Table, spec domain.TransformSpec) *Table {
	matchers := make([]func(row int) bool, 0, len(spec.Filters))
	for i, filter := range spec.Filters {
		if filter == "" || i >= len(t.columns) {
			continue
		}
		matchers = append(matchers, columnMatcher(&t.columns[i], filter))
	}

	needle := strings.ToLower(spec.Search)
	rows := make([]int, 0, t.rows)
	for r := range t.rows {
		if needle != "" && !t.rowContains(r, needle) {
			continue
		}
		if !matchAll(matchers, r) {
			continue
		}
		rows = append(rows, r)
	}

	if spec.OrderColumn >= 1 && spec.OrderColumn <= len(t.columns) {
		sortRows(rows, &t.columns[spec.OrderColumn-1], spec.OrderDirection)
	}
	return t.take(rows)
}

func matchAll(matchers []func(int) bool, row int) bool {
	for _, match := range matchers {
		if !match(row) {
			return false
		}
	}
	return true
}

func (t *Table) rowContains(row int, needle string) bool {
	for i := range t.columns {
		col := &t.columns[i]
		if col.isMissing(row) {
			continue
		}
		if strings.Contains(strings.ToLower(col.Cells[row]), needle) {
			return true
		}
	}
	return false
}

// columnMatcher returns the predicate of one column filter. Numeric columns
// take an inclusive "lo-hi" range or an exact value, boolean columns an exact
// value; everything else matches case-insensitive substrings.
func columnMatcher(col *Column, filter string) func(int) bool {
	switch col.Kind {
	case KindNumeric:
		if m := numericRange.FindStringSubmatch(filter); m != nil {
			lo, _ := strconv.ParseFloat(m[1], 64)
			hi, _ := strconv.ParseFloat(m[2], 64)
			return func(row int) bool {
				return !col.isMissing(row) && col.numbers[row] >= lo && col.numbers[row] <= hi
			}
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(filter), 64); err == nil {
			return func(row int) bool {
				return !col.isMissing(row) && col.numbers[row] == v
			}
		}
	case KindBoolean:
		if want, ok := parseBool(strings.TrimSpace(filter)); ok {
			return func(row int) bool {
				if col.isMissing(row) {
					return false
				}
				got, _ := parseBool(col.Cells[row])
				return got == want
			}
		}
	case KindCharacter:
	}

	needle := strings.ToLower(filter)
	return func(row int) bool {
		return !col.isMissing(row) && strings.Contains(strings.ToLower(col.Cells[row]), needle)
	}
}

// sortRows orders rows by col, keeping ties in their current order.
// Missing values sort last in both directions.
func sortRows(rows []int, col *Column, dir domain.OrderDirection) {
	compare := func(a, b int) int {
		switch col.Kind {
		case KindNumeric:
			return cmp.Compare(col.numbers[a], col.numbers[b])
		case KindBoolean:
			x, _ := parseBool(col.Cells[a])
			y, _ := parseBool(col.Cells[b])
			return cmp.Compare(boolRank(x), boolRank(y))
		default:
			return cmp.Compare(strings.ToLower(col.Cells[a]), strings.ToLower(col.Cells[b]))
		}
	}

	slices.SortStableFunc(rows, func(a, b int) int {
		ma, mb := col.isMissing(a), col.isMissing(b)
		switch {
		case ma && mb:
			return 0
		case ma:
			return 1
		case mb:
			return -1
		}
		if dir == domain.OrderDescending {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
