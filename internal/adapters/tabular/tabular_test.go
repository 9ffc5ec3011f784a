package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/gridview/internal/adapters/tabular"
	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fruitCSV = `,name,price,organic
r1,apple,1.5,TRUE
r2,banana,0.25,FALSE
r3,cherry,12,TRUE
r4,apricot,NA,FALSE
r5,Blueberry,3,NA
`

func newEngine(t *testing.T) *tabular.Engine {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return tabular.New(log)
}

func fruit(t *testing.T) *tabular.Table {
	t.Helper()
	table, err := tabular.ParseCSV([]byte(fruitCSV))
	require.NoError(t, err)
	return table
}

func column(t *testing.T, e *tabular.Engine, data domain.Dataset, index int) []string {
	t.Helper()
	rows, err := e.RowCount(t.Context(), data)
	require.NoError(t, err)
	cells, ok, err := e.FormatColumnSlice(t.Context(), data, index, 1, rows)
	require.NoError(t, err)
	require.True(t, ok)
	return cells
}
