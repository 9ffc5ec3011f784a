package httpapi

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/zerr"
)

// Values of the show parameter.
const (
	showData    = "data"
	showColumns = "cols"
)

// maxFilterColumn bounds the column index accepted in a filter parameter.
const maxFilterColumn = 1 << 16

var filterParam = regexp.MustCompile(`^columns\[(\d+)\]\[search\]\[value\]$`)

// gridQuery is a parsed grid_data request.
type gridQuery struct {
	show string
	page domain.PageRequest
}

// parseGridQuery reads the grid parameters. Absent parameters take their
// defaults: no draw token, an empty window, no order, no search.
func parseGridQuery(q url.Values) (gridQuery, error) {
	var gq gridQuery
	var err error

	gq.show = q.Get("show")
	if gq.show == "" {
		gq.show = showData
	}
	if gq.show != showData && gq.show != showColumns {
		return gq, invalidParam("show", gq.show)
	}

	gq.page.Scope = domain.NormalizeScope(q.Get("env"))
	gq.page.Object = q.Get("obj")
	gq.page.CacheKey = q.Get("cache_key")
	if gq.page.Object == "" && gq.page.CacheKey == "" {
		return gq, zerr.Wrap(domain.ErrInvalidParams, "obj or cache_key is required")
	}
	if gq.show == showColumns {
		return gq, nil
	}

	if gq.page.Draw, err = intParam(q, "draw", 0); err != nil {
		return gq, err
	}
	if gq.page.Window.Start, err = intParam(q, "start", 0); err != nil {
		return gq, err
	}
	if gq.page.Window.Length, err = intParam(q, "length", 0); err != nil {
		return gq, err
	}
	if gq.page.Spec.OrderColumn, err = intParam(q, "order[0][column]", -1); err != nil {
		return gq, err
	}
	if gq.page.Spec.OrderDirection, err = domain.ParseOrderDirection(q.Get("order[0][dir]")); err != nil {
		return gq, err
	}
	gq.page.Spec.Search = q.Get("search[value]")
	if gq.page.Spec.Filters, err = filters(q); err != nil {
		return gq, err
	}
	return gq, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParam(name, raw)
	}
	return v, nil
}

// filters collects the column filters, index-aligned from the first column.
// Columns without a filter parameter get an empty filter.
func filters(q url.Values) ([]string, error) {
	var out []string
	for key := range q {
		m := filterParam.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		col, err := strconv.Atoi(m[1])
		if err != nil || col > maxFilterColumn {
			return nil, invalidParam(key, m[1])
		}
		if col < 1 {
			continue
		}
		if col > len(out) {
			out = append(out, make([]string, col-len(out))...)
		}
		out[col-1] = q.Get(key)
	}
	return out, nil
}

func invalidParam(name, value string) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidParams, fmt.Sprintf("invalid value for %s", name)), "value", value)
}
