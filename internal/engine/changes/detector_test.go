package changes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/gridview/internal/core/ports/mocks"
	"go.trai.ch/gridview/internal/engine/changes"
	"go.trai.ch/gridview/internal/engine/registry"
	"go.uber.org/mock/gomock"
)

type table struct {
	id   domain.Identity
	cols []string
}

func (t *table) Identity() domain.Identity { return t.id }

type detectorTestMocks struct {
	engine   *mocks.MockDataEngine
	notifier *mocks.MockNotifier
	logger   *mocks.MockLogger
}

// setupDetector returns a Detector whose engine reports the shape of any table.
// Object resolution is left to each test.
func setupDetector(t *testing.T) (*changes.Detector, *registry.Registry, detectorTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := detectorTestMocks{
		engine:   mocks.NewMockDataEngine(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
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

	m.engine.EXPECT().ColumnCount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Dataset) (int, error) { return len(d.(*table).cols), nil },
	).AnyTimes()
	m.engine.EXPECT().ColumnNames(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Dataset) ([]string, error) { return d.(*table).cols, nil },
	).AnyTimes()

	reg := registry.New(m.engine)
	d := changes.New(m.engine, reg, m.notifier, tracer, m.logger)
	return d, reg, m
}

func track(t *testing.T, reg *registry.Registry, key, scope, object string, live *table) {
	t.Helper()
	var ds domain.Dataset
	if live != nil {
		ds = live
	}
	_, err := reg.GetOrCreate(t.Context(), key, scope, object, ds)
	require.NoError(t, err)
}

func TestScan_SameIdentityIsUnchanged(t *testing.T) {
	d, reg, m := setupDetector(t)
	live := &table{id: 1, cols: []string{"a", "b"}}
	track(t, reg, "K1", "", "df", live)

	m.engine.EXPECT().ResolveObject(gomock.Any(), "", "df").Return(live, true, nil)

	result := d.Scan(t.Context())
	assert.False(t, result.Skipped)
	assert.Empty(t, result.Changes)
}

func TestScan_StructureChanged(t *testing.T) {
	tests := []struct {
		name      string
		before    []string
		after     []string
		wantShape bool
	}{
		{name: "column added", before: []string{"a", "b"}, after: []string{"a", "b", "c"}, wantShape: true},
		{name: "column renamed", before: []string{"a", "b"}, after: []string{"a", "x"}, wantShape: true},
		{name: "same columns new content", before: []string{"a", "b"}, after: []string{"a", "b"}, wantShape: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, reg, m := setupDetector(t)
			track(t, reg, "K1", "", "df", &table{id: 1, cols: tt.before})
			require.NoError(t, reg.RecordTransform("K1", domain.TransformSpec{Search: "x"}))

			next := &table{id: 2, cols: tt.after}
			want := domain.ViewChange{CacheKey: "K1", StructureChanged: tt.wantShape}

			m.engine.EXPECT().ResolveObject(gomock.Any(), "", "df").Return(next, true, nil)
			gomock.InOrder(
				m.engine.EXPECT().DiscardWorkingTransform(gomock.Any(), "K1"),
				m.notifier.EXPECT().DataViewChanged(want),
			)

			result := d.Scan(t.Context())
			assert.Equal(t, []domain.ViewChange{want}, result.Changes)

			frame, ok := reg.Lookup("K1")
			require.True(t, ok)
			assert.Equal(t, domain.Identity(2), frame.Identity)
			assert.Equal(t, tt.after, frame.Shape.ColumnNames)
			assert.False(t, frame.HasWorkingTransform())
		})
	}
}

func TestScan_ObjectRemovedIsAChange(t *testing.T) {
	d, reg, m := setupDetector(t)
	track(t, reg, "K1", "", "df", &table{id: 1, cols: []string{"a"}})

	want := domain.ViewChange{CacheKey: "K1", StructureChanged: true}
	m.engine.EXPECT().ResolveObject(gomock.Any(), "", "df").Return(nil, false, nil)
	m.engine.EXPECT().DiscardWorkingTransform(gomock.Any(), "K1")
	m.notifier.EXPECT().DataViewChanged(want)

	result := d.Scan(t.Context())
	assert.Equal(t, []domain.ViewChange{want}, result.Changes)

	frame, _ := reg.Lookup("K1")
	assert.Equal(t, domain.NoIdentity, frame.Identity)

	// The frame now matches the missing object and stays quiet.
	m.engine.EXPECT().ResolveObject(gomock.Any(), "", "df").Return(nil, false, nil)
	assert.Empty(t, d.Scan(t.Context()).Changes)
}

func TestScan_SkipsUnboundFrames(t *testing.T) {
	d, reg, _ := setupDetector(t)
	track(t, reg, "K1", domain.UnboundScope, "df", nil)

	result := d.Scan(t.Context())
	assert.Empty(t, result.Changes)
}

func TestScan_EngineFailureLeavesFrameForNextScan(t *testing.T) {
	d, reg, m := setupDetector(t)
	track(t, reg, "K1", "", "broken", &table{id: 1, cols: []string{"a"}})
	track(t, reg, "K2", "", "fine", &table{id: 5, cols: []string{"a"}})

	m.engine.EXPECT().ResolveObject(gomock.Any(), "", "broken").Return(nil, false, errors.New("engine busy"))
	m.engine.EXPECT().ResolveObject(gomock.Any(), "", "fine").Return(&table{id: 6, cols: []string{"a"}}, true, nil)
	m.engine.EXPECT().DiscardWorkingTransform(gomock.Any(), "K2")
	m.notifier.EXPECT().DataViewChanged(domain.ViewChange{CacheKey: "K2"})
	m.logger.EXPECT().Error(gomock.Any())

	result := d.Scan(t.Context())
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "K2", result.Changes[0].CacheKey)

	frame, _ := reg.Lookup("K1")
	assert.Equal(t, domain.Identity(1), frame.Identity)
}

func TestScan_NestedScanIsSkipped(t *testing.T) {
	d, reg, m := setupDetector(t)
	live := &table{id: 1, cols: []string{"a"}}
	track(t, reg, "K1", "", "df", live)

	var nested domain.ScanResult
	m.engine.EXPECT().ResolveObject(gomock.Any(), "", "df").DoAndReturn(
		func(ctx context.Context, _, _ string) (domain.Dataset, bool, error) {
			nested = d.Scan(ctx)
			return live, true, nil
		},
	)

	outer := d.Scan(t.Context())
	assert.False(t, outer.Skipped)
	assert.True(t, nested.Skipped)

	// The guard is released once the outer scan returns.
	m.engine.EXPECT().ResolveObject(gomock.Any(), "", "df").Return(live, true, nil)
	assert.False(t, d.Scan(t.Context()).Skipped)
}
