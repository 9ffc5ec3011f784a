package viewer_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/gridview/internal/core/ports/mocks"
	"go.trai.ch/gridview/internal/engine/registry"
	"go.trai.ch/gridview/internal/engine/viewer"
	"go.uber.org/mock/gomock"
)

const cacheDir = "/tmp/viewer-cache"

// table is an in-test dataset. Its tag keeps otherwise equal tables apart
// when gomock compares arguments.
type table struct {
	tag  string
	id   domain.Identity
	rows int
	cols []string
}

func (t *table) Identity() domain.Identity { return t.id }

type harness struct {
	svc      *viewer.Service
	reg      *registry.Registry
	engine   *mocks.MockDataEngine
	notifier *mocks.MockNotifier
	logger   *mocks.MockLogger

	live    *table
	cached  map[string]domain.Dataset
	working map[string]domain.Dataset
	labels  func(start, length int) ([]string, bool)
	missing int
}

// setup creates a Service over a data engine that holds live under "fruit"
// in the global scope, plus the cached copies a test puts in h.cached.
// Transform expectations are left to each test.
func setup(t *testing.T, live *table) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		engine:   mocks.NewMockDataEngine(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		live:     live,
		cached:   make(map[string]domain.Dataset),
		working:  make(map[string]domain.Dataset),
		missing:  -1,
	}

	mockSpan := mocks.NewMockSpan(ctrl)
	mockSpan.EXPECT().End().AnyTimes()
	mockSpan.EXPECT().RecordError(gomock.Any()).AnyTimes()
	mockSpan.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, mockSpan
		},
	).AnyTimes()

	e := h.engine
	e.EXPECT().ResolveObject(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, scope, name string) (domain.Dataset, bool, error) {
			if h.live == nil || scope != "" || name != "fruit" {
				return nil, false, nil
			}
			return h.live, true, nil
		},
	).AnyTimes()
	e.EXPECT().FindCachedOrOriginal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), cacheDir).DoAndReturn(
		func(_ context.Context, _, name, key, _ string) (domain.Dataset, bool, error) {
			if h.live != nil && name == "fruit" {
				return h.live, true, nil
			}
			d, ok := h.cached[key]
			return d, ok, nil
		},
	).AnyTimes()
	e.EXPECT().RowCount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Dataset) (int, error) { return d.(*table).rows, nil },
	).AnyTimes()
	e.EXPECT().ColumnCount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Dataset) (int, error) { return len(d.(*table).cols), nil },
	).AnyTimes()
	e.EXPECT().ColumnNames(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Dataset) ([]string, error) { return d.(*table).cols, nil },
	).AnyTimes()
	e.EXPECT().FindWorkingTransform(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) (domain.Dataset, bool) {
			d, ok := h.working[key]
			return d, ok
		},
	).AnyTimes()
	e.EXPECT().SaveWorkingTransform(gomock.Any(), gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, key string, d domain.Dataset) { h.working[key] = d },
	).AnyTimes()
	e.EXPECT().FormatColumnSlice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Dataset, col, start, length int) ([]string, bool, error) {
			if col == h.missing {
				return nil, false, nil
			}
			tb := d.(*table)
			out := make([]string, 0, length)
			for row := start; row < start+length && row <= tb.rows; row++ {
				out = append(out, fmt.Sprintf("%s:r%dc%d", tb.tag, row, col))
			}
			return out, true, nil
		},
	).AnyTimes()
	e.EXPECT().FormatRowLabels(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.Dataset, start, length int) ([]string, bool, error) {
			if h.labels == nil {
				return nil, false, nil
			}
			labels, ok := h.labels(start, length)
			return labels, ok, nil
		},
	).AnyTimes()

	h.reg = registry.New(h.engine)
	h.svc = viewer.New(h.engine, h.reg, h.notifier, tracer, h.logger, cacheDir)
	return h
}

func fruit() *table {
	return &table{tag: "raw", id: 1, rows: 20, cols: []string{"name", "price"}}
}

func pageRequest(spec domain.TransformSpec) domain.PageRequest {
	return domain.PageRequest{
		CacheKey: "K1",
		Scope:    domain.GlobalScope,
		Object:   "fruit",
		Draw:     3,
		Window:   domain.PageWindow{Start: 0, Length: 10},
		Spec:     spec,
	}
}

func TestPage_BypassUsesRawRowCount(t *testing.T) {
	h := setup(t, fruit())

	resp, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{Filters: []string{"", ""}}))
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Draw)
	assert.Equal(t, 20, resp.RecordsTotal)
	assert.Equal(t, 20, resp.RecordsFiltered)
	require.Len(t, resp.Data, 10)
	assert.Equal(t, []string{"1", "raw:r1c1", "raw:r1c2"}, resp.Data[0])
	assert.Empty(t, h.working)

	frame, ok := h.reg.Lookup("K1")
	require.True(t, ok)
	assert.Equal(t, domain.Identity(1), frame.Identity)
	assert.Equal(t, 2, frame.Shape.ColumnCount)
}

func TestPage_IdenticalRequestReusesWorkingTransform(t *testing.T) {
	h := setup(t, fruit())
	filtered := &table{tag: "app", id: 2, rows: 3, cols: []string{"name", "price"}}

	h.engine.EXPECT().Transform(gomock.Any(), h.live, gomock.Any()).Return(filtered, nil).Times(1)

	req := pageRequest(domain.TransformSpec{Search: "app", Filters: []string{"", ""}})
	first, err := h.svc.Page(t.Context(), req)
	require.NoError(t, err)
	second, err := h.svc.Page(t.Context(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 20, second.RecordsTotal)
	assert.Equal(t, 3, second.RecordsFiltered)
	assert.Len(t, second.Data, 3)
	assert.Equal(t, "app:r1c1", second.Data[0][1])
}

func TestPage_NarrowingTransformsWorkingData(t *testing.T) {
	h := setup(t, fruit())
	searched := &table{tag: "app", id: 2, rows: 4, cols: []string{"name", "price"}}
	narrowed := &table{tag: "apple", id: 3, rows: 2, cols: []string{"name", "price"}}

	narrowSpec := domain.TransformSpec{
		Search:         "app",
		Filters:        []string{"apple", ""},
		OrderDirection: domain.OrderAscending,
	}
	gomock.InOrder(
		h.engine.EXPECT().Transform(gomock.Any(), h.live, gomock.Any()).Return(searched, nil),
		h.engine.EXPECT().Transform(gomock.Any(), searched, narrowSpec).Return(narrowed, nil),
	)

	_, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{Search: "app", Filters: []string{"", ""}}))
	require.NoError(t, err)

	resp, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{Search: "app", Filters: []string{"apple", ""}}))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.RecordsFiltered)

	frame, _ := h.reg.Lookup("K1")
	assert.Equal(t, []string{"apple", ""}, frame.Working.Filters)
	assert.Equal(t, narrowed, h.working["K1"])
}

func TestPage_WideningTransformsRawData(t *testing.T) {
	h := setup(t, fruit())
	apple := &table{tag: "apple", id: 2, rows: 2, cols: []string{"name", "price"}}
	app := &table{tag: "app", id: 3, rows: 4, cols: []string{"name", "price"}}

	gomock.InOrder(
		h.engine.EXPECT().Transform(gomock.Any(), h.live, gomock.Any()).Return(apple, nil),
		h.engine.EXPECT().Transform(gomock.Any(), h.live, gomock.Any()).Return(app, nil),
	)

	_, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{Filters: []string{"apple", ""}}))
	require.NoError(t, err)

	resp, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{Filters: []string{"app", ""}}))
	require.NoError(t, err)
	assert.Equal(t, 4, resp.RecordsFiltered)
}

func TestPage_ReorderingStartsFromWorkingData(t *testing.T) {
	h := setup(t, fruit())
	asc := &table{tag: "asc", id: 2, rows: 20, cols: []string{"name", "price"}}
	desc := &table{tag: "desc", id: 3, rows: 20, cols: []string{"name", "price"}}

	descSpec := domain.TransformSpec{OrderColumn: 2, OrderDirection: domain.OrderDescending, Filters: []string{"", ""}}
	gomock.InOrder(
		h.engine.EXPECT().Transform(gomock.Any(), h.live, gomock.Any()).Return(asc, nil),
		// An order change with no narrowing still starts from the working data.
		h.engine.EXPECT().Transform(gomock.Any(), asc, descSpec).Return(desc, nil),
	)

	_, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{OrderColumn: 2}))
	require.NoError(t, err)

	resp, err := h.svc.Page(t.Context(), pageRequest(descSpec))
	require.NoError(t, err)
	assert.Equal(t, "desc:r1c1", resp.Data[0][1])
}

func TestPage_ClampsWindowToFilteredRows(t *testing.T) {
	tests := []struct {
		name       string
		window     domain.PageWindow
		wantLabels []string
	}{
		{name: "window past the end", window: domain.PageWindow{Start: 0, Length: 10}, wantLabels: []string{"1", "2", "3", "4", "5"}},
		{name: "window overlapping the end", window: domain.PageWindow{Start: 3, Length: 10}, wantLabels: []string{"4", "5"}},
		{name: "window after the end", window: domain.PageWindow{Start: 9, Length: 10}, wantLabels: []string{}},
		{name: "empty window", window: domain.PageWindow{Start: 0, Length: 0}, wantLabels: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setup(t, fruit())
			five := &table{tag: "five", id: 2, rows: 5, cols: []string{"name", "price"}}
			h.engine.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any()).Return(five, nil)

			req := pageRequest(domain.TransformSpec{Search: "e"})
			req.Window = tt.window
			resp, err := h.svc.Page(t.Context(), req)
			require.NoError(t, err)

			assert.Equal(t, 5, resp.RecordsFiltered)
			require.NotNil(t, resp.Data)
			labels := make([]string, 0, len(resp.Data))
			for _, row := range resp.Data {
				require.Len(t, row, 3)
				labels = append(labels, row[0])
			}
			assert.Equal(t, tt.wantLabels, labels)
		})
	}
}

func TestPage_RowLabels(t *testing.T) {
	h := setup(t, fruit())
	h.labels = func(start, length int) ([]string, bool) {
		assert.Equal(t, 3, start)
		assert.Equal(t, 3, length)
		return []string{"apple", "", "cherry"}, true
	}

	req := pageRequest(domain.TransformSpec{})
	req.Window = domain.PageWindow{Start: 2, Length: 3}
	resp, err := h.svc.Page(t.Context(), req)
	require.NoError(t, err)

	require.Len(t, resp.Data, 3)
	assert.Equal(t, "apple", resp.Data[0][0])
	assert.Equal(t, "4", resp.Data[1][0])
	assert.Equal(t, "cherry", resp.Data[2][0])
}

func TestPage_MissingLabelsFallBackToRowNumbers(t *testing.T) {
	h := setup(t, &table{tag: "raw", id: 1, rows: 2, cols: []string{"a"}})
	h.labels = func(_, _ int) ([]string, bool) { return []string{"x"}, true }

	req := pageRequest(domain.TransformSpec{})
	resp, err := h.svc.Page(t.Context(), req)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"x", "raw:r1c1"}, {"2", "raw:r2c1"}}, resp.Data)
}

func TestPage_Errors(t *testing.T) {
	t.Run("object not found", func(t *testing.T) {
		h := setup(t, nil)

		_, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{}))
		require.ErrorIs(t, err, domain.ErrObjectNotFound)
	})

	t.Run("negative window is rejected", func(t *testing.T) {
		h := setup(t, fruit())

		req := pageRequest(domain.TransformSpec{})
		req.Window.Start = -1
		_, err := h.svc.Page(t.Context(), req)
		require.ErrorIs(t, err, domain.ErrInvalidParams)
		assert.Zero(t, h.reg.Len())
	})

	t.Run("transform error keeps the engine message", func(t *testing.T) {
		h := setup(t, fruit())
		h.engine.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("bad regex"))

		_, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{Search: "("}))
		require.ErrorIs(t, err, domain.ErrTransformFailed)
		require.ErrorContains(t, err, "bad regex")
		assert.Empty(t, h.working)
	})

	t.Run("transform without result", func(t *testing.T) {
		h := setup(t, fruit())
		h.engine.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{Search: "x"}))
		require.ErrorIs(t, err, domain.ErrTransformFailed)
	})

	t.Run("missing column", func(t *testing.T) {
		h := setup(t, fruit())
		h.missing = 2

		_, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{}))
		require.ErrorIs(t, err, domain.ErrColumnMissing)
	})
}

func TestPage_UnboundScopeIsNotTracked(t *testing.T) {
	h := setup(t, fruit())
	filtered := &table{tag: "f", id: 2, rows: 1, cols: []string{"name", "price"}}
	h.engine.EXPECT().Transform(gomock.Any(), h.live, gomock.Any()).Return(filtered, nil).Times(2)

	req := pageRequest(domain.TransformSpec{Search: "kiwi"})
	req.Scope = domain.UnboundScope
	for range 2 {
		resp, err := h.svc.Page(t.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.RecordsFiltered)
	}

	assert.Zero(t, h.reg.Len())
	assert.Equal(t, filtered, h.working["K1"])
}

func TestPage_FiltersPastTheLastColumnAreIgnored(t *testing.T) {
	h := setup(t, fruit())

	resp, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{Filters: []string{"", "", "extra"}}))
	require.NoError(t, err)
	assert.Equal(t, 20, resp.RecordsFiltered)
	assert.Empty(t, h.working)
}

func TestPage_ClearedFilterTransformsRawData(t *testing.T) {
	h := setup(t, fruit())
	banana := &table{tag: "banana", id: 2, rows: 1, cols: []string{"name", "price"}}
	withA := &table{tag: "a", id: 3, rows: 3, cols: []string{"name", "price"}}

	searchSpec := domain.TransformSpec{
		Search:         "a",
		Filters:        []string{"", ""},
		OrderDirection: domain.OrderAscending,
	}
	gomock.InOrder(
		h.engine.EXPECT().Transform(gomock.Any(), h.live, gomock.Any()).Return(banana, nil),
		h.engine.EXPECT().Transform(gomock.Any(), h.live, searchSpec).Return(withA, nil),
	)

	_, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{Filters: []string{"banana"}}))
	require.NoError(t, err)
	frame, _ := h.reg.Lookup("K1")
	assert.Equal(t, []string{"banana", ""}, frame.Working.Filters)

	// The request leaves out the name filter entirely.
	resp, err := h.svc.Page(t.Context(), pageRequest(domain.TransformSpec{Search: "a"}))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.RecordsFiltered)
	assert.Equal(t, "a:r1c1", resp.Data[0][1])

	frame, _ = h.reg.Lookup("K1")
	assert.Equal(t, searchSpec.Filters, frame.Working.Filters)
	assert.Equal(t, withA, h.working["K1"])
}

func TestPage_CachedCopyWithoutLiveObjectKeepsWorkingTransform(t *testing.T) {
	h := setup(t, nil)
	h.cached["K1"] = &table{tag: "copy", id: 5, rows: 8, cols: []string{"name", "price"}}
	kiwi := &table{tag: "kiwi", id: 6, rows: 2, cols: []string{"name", "price"}}
	h.engine.EXPECT().Transform(gomock.Any(), h.cached["K1"], gomock.Any()).Return(kiwi, nil).Times(1)

	req := pageRequest(domain.TransformSpec{Filters: []string{"kiwi", ""}})
	for range 2 {
		resp, err := h.svc.Page(t.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.RecordsFiltered)
	}

	frame, _ := h.reg.Lookup("K1")
	assert.Equal(t, domain.NoIdentity, frame.Identity)
	assert.Equal(t, []string{"kiwi", ""}, frame.Working.Filters)
	assert.Equal(t, kiwi, h.working["K1"])
}
