package domain

import "net/url"

// PageWindow is a zero-based row range requested by the client.
type PageWindow struct {
	Start  int
	Length int
}

// PageRequest asks for one page of a view.
type PageRequest struct {
	CacheKey string
	Scope    string
	Object   string
	// Draw is the client's sequence token, echoed verbatim.
	Draw   int
	Window PageWindow
	Spec   TransformSpec
}

// PageResponse is one page of a view in the grid wire format.
type PageResponse struct {
	Draw            int        `json:"draw"`
	RecordsTotal    int        `json:"recordsTotal"`
	RecordsFiltered int        `json:"recordsFiltered"`
	Data            [][]string `json:"data"`
}

// ColumnsRequest asks for the column descriptions of a view.
type ColumnsRequest struct {
	CacheKey string
	Scope    string
	Object   string
}

// ColumnDescription describes one column for the client's header and filter UI.
type ColumnDescription struct {
	Index      int      `json:"index"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	SearchType string   `json:"searchType"`
	Min        *float64 `json:"min,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	Values     []string `json:"values,omitempty"`
}

// OpenRequest asks to open a new view on an object.
type OpenRequest struct {
	Caption string
	Scope   string
	Object  string
}

// DuplicateRequest asks for a second, independent view on an object.
type DuplicateRequest struct {
	Caption  string
	Scope    string
	Object   string
	CacheKey string
}

// DataItem describes a view to the client. It is the payload of the
// show_data event and the result of duplicating a view.
type DataItem struct {
	Caption               string `json:"caption"`
	TotalObservations     int    `json:"totalObservations"`
	DisplayedObservations int    `json:"displayedObservations"`
	Variables             int    `json:"variables"`
	CacheKey              string `json:"cacheKey"`
	Object                string `json:"object"`
	Environment           string `json:"environment"`
	ContentURL            string `json:"contentUrl"`
}

// ViewChange is emitted when the object behind a view changed.
type ViewChange struct {
	CacheKey string `json:"cache_key"`
	// StructureChanged is true when the columns differ and the client must
	// reload the view instead of refreshing its rows.
	StructureChanged bool `json:"structure_changed"`
}

// ScanResult is the outcome of one change detection scan.
type ScanResult struct {
	Changes []ViewChange
	// Skipped is true when another scan was already in progress.
	Skipped bool
}

// ContentURL returns the client locator for a view.
func ContentURL(scope, object, cacheKey string) string {
	q := url.Values{}
	q.Set("env", scope)
	q.Set("obj", object)
	q.Set("cache_key", cacheKey)
	return GridResourcePath + "/gridviewer.html?" + q.Encode()
}
