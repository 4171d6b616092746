package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vgrid/internal/grid"
)

func TestTotalRowsAndSlices(t *testing.T) {
	for itemCount := 0; itemCount <= 40; itemCount++ {
		for cols := 1; cols <= 7; cols++ {
			rows := grid.TotalRows(itemCount, cols)
			assert.Equal(t, (itemCount+cols-1)/cols, rows)

			sum := 0
			for row := range rows {
				start, end := grid.RowSlice(row, cols, itemCount)
				require.Less(t, start, end, "row %d of %d items / %d cols is empty", row, itemCount, cols)
				assert.LessOrEqual(t, end-start, cols)
				sum += end - start
			}
			assert.Equal(t, itemCount, sum, "slices of %d items / %d cols", itemCount, cols)
		}
	}
}

func TestRowSlice_PartialLastRow(t *testing.T) {
	assert.Equal(t, 3, grid.TotalRows(7, 3))

	start, end := grid.RowSlice(2, 3, 7)
	assert.Equal(t, 6, start)
	assert.Equal(t, 7, end)
}

func TestRowSlice_OutOfRange(t *testing.T) {
	start, end := grid.RowSlice(5, 3, 7)
	assert.Equal(t, start, end)

	start, end = grid.RowSlice(-1, 3, 7)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestComputeLayout_UnmeasuredRows(t *testing.T) {
	store := grid.NewHeightStore()
	snap := grid.ComputeLayout(grid.LayoutParams{
		ItemCount:       10000,
		Columns:         5,
		Gap:             10,
		ScrollTop:       0,
		ContainerHeight: 600,
	}, store)

	require.Equal(t, 2000, snap.TotalRows)
	require.Len(t, snap.RowTops, 2000)
	assert.Equal(t, 0, snap.FirstVisibleRow)
	assert.Equal(t, 0, snap.RowTops[0])
	assert.Equal(t, 110, snap.RowTops[1])
	assert.Equal(t, 2000*110-10, snap.TotalHeight)
	assert.Equal(t, 6, snap.LastVisibleRow, "row 6 is the first whose top passes the viewport bottom")
	assert.Equal(t, 0, snap.PaddingTop)
}

func TestComputeLayout_MeasuredRowShiftsLaterRows(t *testing.T) {
	store := grid.NewHeightStore()
	params := grid.LayoutParams{ItemCount: 10000, Columns: 5, Gap: 10, ContainerHeight: 600}

	before := grid.ComputeLayout(params, store)
	assert.Equal(t, 110, before.RowTops[1])

	store.Set(0, 150)
	after := grid.ComputeLayout(params, store)
	assert.Equal(t, 160, after.RowTops[1])
	assert.Greater(t, after.RowTops[2], before.RowTops[2])
}

func TestComputeLayout_EmptyCollection(t *testing.T) {
	snap := grid.ComputeLayout(grid.LayoutParams{
		ItemCount: 0, Columns: 3, Gap: 10, ContainerHeight: 600,
	}, grid.NewHeightStore())

	assert.Equal(t, 0, snap.TotalRows)
	assert.Equal(t, 0, snap.TotalHeight)
	assert.Equal(t, 0, snap.PaddingTop)
	assert.True(t, snap.Empty())
	assert.Equal(t, 0, snap.VisibleRows())
}

func TestComputeLayout_DetachedContainer(t *testing.T) {
	snap := grid.ComputeLayout(grid.LayoutParams{
		ItemCount: 50, Columns: 5, Gap: 10, ContainerHeight: 0,
	}, grid.NewHeightStore())

	assert.True(t, snap.Empty(), "zero-height container renders nothing")
	assert.Equal(t, 10, snap.TotalRows)
	assert.Equal(t, 10*110-10, snap.TotalHeight)
}

func TestComputeLayout_ZeroColumnsClamped(t *testing.T) {
	snap := grid.ComputeLayout(grid.LayoutParams{
		ItemCount: 4, Columns: 0, Gap: 0, ContainerHeight: 1000,
	}, grid.NewHeightStore())

	assert.Equal(t, 4, snap.TotalRows)
	assert.False(t, snap.Empty())
}

func TestComputeLayout_VisibleWindow(t *testing.T) {
	tests := []struct {
		name        string
		scrollTop   int
		wantFirst   int
		wantLast    int
		wantPadding int
	}{
		{name: "top", scrollTop: 0, wantFirst: 0, wantLast: 3, wantPadding: 0},
		{name: "mid row", scrollTop: 250, wantFirst: 2, wantLast: 6, wantPadding: 220},
		{name: "inside a gap", scrollTop: 105, wantFirst: 1, wantLast: 4, wantPadding: 110},
		{name: "bottom edge reaches end", scrollTop: 790, wantFirst: 7, wantLast: 9, wantPadding: 770},
	}

	store := grid.NewHeightStore()
	for row := range 10 {
		store.Set(row, 100)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := grid.ComputeLayout(grid.LayoutParams{
				ItemCount: 30, Columns: 3, Gap: 10, ScrollTop: tt.scrollTop, ContainerHeight: 300,
			}, store)
			assert.Equal(t, tt.wantFirst, snap.FirstVisibleRow)
			assert.Equal(t, tt.wantLast, snap.LastVisibleRow)
			assert.Equal(t, tt.wantPadding, snap.PaddingTop)
		})
	}
}

func TestComputeLayout_Idempotent(t *testing.T) {
	store := grid.NewHeightStore()
	store.Set(0, 40)
	store.Set(3, 260)
	params := grid.LayoutParams{ItemCount: 333, Columns: 4, Gap: 10, ScrollTop: 900, ContainerHeight: 480}

	first := grid.ComputeLayout(params, store)
	second := grid.ComputeLayout(params, store)
	assert.Equal(t, first, second)
}

func TestComputeLayout_TopsStrictlyIncreasing(t *testing.T) {
	store := grid.NewHeightStore()
	heights := []int{30, 1, 200, 77, 5}
	for row, h := range heights {
		store.Set(row, h)
	}

	snap := grid.ComputeLayout(grid.LayoutParams{
		ItemCount: 50, Columns: 3, Gap: 10, ContainerHeight: 100,
	}, store)

	for row := 1; row < snap.TotalRows; row++ {
		assert.Greater(t, snap.RowTops[row], snap.RowTops[row-1])
		assert.Equal(t, snap.RowTops[row-1]+snap.RowHeights[row-1]+10, snap.RowTops[row])
	}
	last := snap.TotalRows - 1
	assert.Equal(t, snap.RowBottom(last), snap.TotalHeight, "no trailing gap")
}

func TestComputeLayout_VisibleRangeContainsIntersectingRows(t *testing.T) {
	store := grid.NewHeightStore(grid.WithBootstrap(6))
	for row := 0; row < 40; row += 3 {
		store.Set(row, 1+(row*7)%13)
	}

	const (
		itemCount       = 200
		columns         = 4
		gap             = 1
		containerHeight = 17
	)
	base := grid.ComputeLayout(grid.LayoutParams{ItemCount: itemCount, Columns: columns, Gap: gap}, store)

	for scrollTop := 0; scrollTop <= base.TotalHeight; scrollTop++ {
		snap := grid.ComputeLayout(grid.LayoutParams{
			ItemCount: itemCount, Columns: columns, Gap: gap,
			ScrollTop: scrollTop, ContainerHeight: containerHeight,
		}, store)
		require.False(t, snap.Empty())

		for row := range snap.TotalRows {
			intersects := snap.RowTops[row] < scrollTop+containerHeight && snap.RowBottom(row) > scrollTop
			if !intersects {
				continue
			}
			require.GreaterOrEqual(t, row, snap.FirstVisibleRow, "scrollTop %d under-renders row %d", scrollTop, row)
			require.LessOrEqual(t, row, snap.LastVisibleRow, "scrollTop %d under-renders row %d", scrollTop, row)
		}
		assert.Equal(t, snap.RowTops[snap.FirstVisibleRow], snap.PaddingTop)
	}
}

func TestComputeLayout_ConvergesOnceAllRowsMeasured(t *testing.T) {
	store := grid.NewHeightStore()
	params := grid.LayoutParams{ItemCount: 25, Columns: 5, Gap: 10, ScrollTop: 120, ContainerHeight: 200}

	measured := func(row int) int { return 50 + row*20 }
	for row := range grid.TotalRows(params.ItemCount, params.Columns) {
		grid.Measure(store, []grid.RowMeasurement{{Row: row, ItemHeights: []int{measured(row), 10}}})
	}

	stable := grid.ComputeLayout(params, store)
	for range 3 {
		res := grid.MeasureFrame(store, frameReader(measured), stable.FirstVisibleRow, stable.LastVisibleRow)
		assert.False(t, res.HasChanges())
		assert.Equal(t, stable, grid.ComputeLayout(params, store))
	}
}

func TestSnapshot_ItemRange(t *testing.T) {
	snap := grid.ComputeLayout(grid.LayoutParams{
		ItemCount: 7, Columns: 3, Gap: 10, ContainerHeight: 1000,
	}, grid.NewHeightStore())

	start, end := snap.ItemRange(3, 7)
	assert.Equal(t, 0, start)
	assert.Equal(t, 7, end)

	empty := grid.Snapshot{LastVisibleRow: -1}
	start, end = empty.ItemRange(3, 7)
	assert.Equal(t, start, end)
}

func TestSnapshot_RowAt(t *testing.T) {
	store := grid.NewHeightStore()
	for row := range 3 {
		store.Set(row, 100)
	}
	snap := grid.ComputeLayout(grid.LayoutParams{ItemCount: 3, Columns: 1, Gap: 10, ContainerHeight: 50}, store)

	assert.Equal(t, 0, snap.RowAt(0))
	assert.Equal(t, 0, snap.RowAt(99))
	assert.Equal(t, -1, snap.RowAt(105), "gap between rows")
	assert.Equal(t, 1, snap.RowAt(110))
	assert.Equal(t, -1, snap.RowAt(400))
	assert.Equal(t, -1, snap.RowAt(-1))
}

// frameReader returns every row as one item of height fn(row) plus a short one.
type frameReader func(row int) int

func (f frameReader) ItemHeights(row int) []int {
	return []int{f(row), 10}
}
