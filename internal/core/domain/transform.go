package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// OrderDirection is the sort direction of a transform.
type OrderDirection string

const (
	// OrderAscending sorts from the smallest value to the largest.
	OrderAscending OrderDirection = "asc"
	// OrderDescending sorts from the largest value to the smallest.
	OrderDescending OrderDirection = "desc"
)

// ParseOrderDirection parses the wire form of a sort direction.
// An empty string means ascending.
func ParseOrderDirection(s string) (OrderDirection, error) {
	switch strings.ToLower(s) {
	case "", string(OrderAscending):
		return OrderAscending, nil
	case string(OrderDescending):
		return OrderDescending, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidOrderDirection, "failed to parse order direction"), "dir", s)
	}
}

// TransformSpec describes a filter, search and sort applied to a frame.
type TransformSpec struct {
	// Search is the global search string; empty means none.
	Search string
	// Filters holds one filter per column, index-aligned; empty means none.
	Filters []string
	// OrderColumn is the one-based column to order on; <= 0 means unordered.
	OrderColumn int
	// OrderDirection is the sort direction for OrderColumn.
	OrderDirection OrderDirection
}

// HasFilter reports whether any column filter is set.
func (t TransformSpec) HasFilter() bool {
	return slices.ContainsFunc(t.Filters, func(f string) bool { return f != "" })
}

// NeedsTransform reports whether the spec differs from the raw data.
func (t TransformSpec) NeedsTransform() bool {
	return t.OrderColumn > 0 || t.Search != "" || t.HasFilter()
}

// Equal reports whether both specs describe the same transform.
// A filter index missing on one side is equal to an empty filter.
func (t TransformSpec) Equal(other TransformSpec) bool {
	if t.Search != other.Search || t.OrderColumn != other.OrderColumn {
		return false
	}
	if t.direction() != other.direction() {
		return false
	}
	n := max(len(t.Filters), len(other.Filters))
	for i := range n {
		if filterAt(t.Filters, i) != filterAt(other.Filters, i) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the spec.
func (t TransformSpec) Clone() TransformSpec {
	out := t
	out.Filters = slices.Clone(t.Filters)
	return out
}

func (t TransformSpec) direction() OrderDirection {
	if t.OrderDirection == "" {
		return OrderAscending
	}
	return t.OrderDirection
}

func filterAt(filters []string, i int) string {
	if i < len(filters) {
		return filters[i]
	}
	return ""
}
