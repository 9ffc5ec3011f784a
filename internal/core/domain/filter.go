package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// numericRange matches a numeric range filter such as "2.71-3.14".
var numericRange = regexp.MustCompile(`(\d+\.?\d*)-(\d+\.?\d*)`)

// IsFilterSubset reports whether every row matching inner also matches outer.
//
// Numeric range filters compare their bounds; any other filter is treated as
// a prefix, so "abc" contains "abcd" but not the other way around.
func IsFilterSubset(outer, inner string) bool {
	if inner == outer {
		return true
	}

	innerMatch := numericRange.FindStringSubmatch(inner)
	outerMatch := numericRange.FindStringSubmatch(outer)
	if innerMatch != nil && outerMatch != nil {
		return parseBound(innerMatch[1]) >= parseBound(outerMatch[1]) &&
			parseBound(innerMatch[2]) <= parseBound(outerMatch[2])
	}

	return len(inner) >= len(outer) && strings.HasPrefix(inner, outer)
}

// parseBound converts a range bound to a number.
// An unparsable bound counts as zero; given the pattern above that only
// happens for values out of float64 range.
func parseBound(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsSupersetOf reports whether the frame's working transform contains every
// row that the given search and filters would select.
//
// A filter missing from the given list is an empty one. Filters past the
// working transform's list are not compared: a column added after the working
// transform was built is unconstrained there.
func (f CachedFrame) IsSupersetOf(search string, filters []string) bool {
	if !IsFilterSubset(f.Working.Search, search) {
		return false
	}

	for i, working := range f.Working.Filters {
		if !IsFilterSubset(working, filterAt(filters, i)) {
			return false
		}
	}

	return true
}
