package grid

import "sort"

// LayoutParams are the scalar inputs of a layout pass.
type LayoutParams struct {
	ItemCount       int
	Columns         int
	Gap             int
	ScrollTop       int
	ContainerHeight int
}

// Snapshot is the result of one layout pass. It is recomputed on every render
// and never stored.
type Snapshot struct {
	// RowTops holds the cumulative top offset of every row.
	RowTops []int
	// RowHeights holds the height used for every row (measured or average).
	RowHeights []int
	TotalRows  int
	// TotalHeight is the scrollable content height, without a trailing gap.
	TotalHeight     int
	FirstVisibleRow int
	// LastVisibleRow is inclusive. It is less than FirstVisibleRow when the
	// visible range is empty.
	LastVisibleRow int
	// PaddingTop is the spacer placed before the first rendered row.
	PaddingTop int
}

// TotalRows returns ceil(itemCount / columns). Columns below 1 count as 1.
func TotalRows(itemCount, columns int) int {
	if itemCount <= 0 {
		return 0
	}
	if columns < 1 {
		columns = 1
	}
	return (itemCount + columns - 1) / columns
}

// RowSlice returns the half-open item index range [start, end) owned by row.
// The last row of a collection may be shorter than columns. Rows outside the
// collection yield an empty range.
func RowSlice(row, columns, itemCount int) (start, end int) {
	if columns < 1 {
		columns = 1
	}
	if row < 0 || itemCount <= 0 {
		return 0, 0
	}
	start = row * columns
	if start >= itemCount {
		return itemCount, itemCount
	}
	end = min(start+columns, itemCount)
	return start, end
}

// ComputeLayout walks the rows in order, resolving each height from heights
// (falling back to its average), and derives the visible row window for the
// given scroll offset. The store is only read; two calls with the same inputs
// return equal snapshots.
//
// An empty collection or a container without height (not attached yet) yields
// an empty visible range.
func ComputeLayout(p LayoutParams, heights HeightReader) Snapshot {
	cols := max(p.Columns, 1)
	gap := max(p.Gap, 0)
	totalRows := TotalRows(p.ItemCount, cols)

	snap := Snapshot{
		TotalRows:       totalRows,
		FirstVisibleRow: 0,
		LastVisibleRow:  -1,
	}
	if totalRows == 0 {
		return snap
	}

	fallback := heights.Average()
	snap.RowTops = make([]int, totalRows)
	snap.RowHeights = make([]int, totalRows)

	acc := 0
	for row := range totalRows {
		h, ok := heights.Get(row)
		if !ok {
			h = fallback
		}
		snap.RowTops[row] = acc
		snap.RowHeights[row] = h
		acc += h + gap
	}
	snap.TotalHeight = acc - gap

	if p.ContainerHeight <= 0 {
		return snap
	}

	first := sort.Search(totalRows, func(i int) bool {
		return snap.RowTops[i]+snap.RowHeights[i] > p.ScrollTop
	})
	if first == totalRows {
		first = 0
	}

	viewportBottom := p.ScrollTop + p.ContainerHeight
	last := first + sort.Search(totalRows-first, func(i int) bool {
		return snap.RowTops[first+i] > viewportBottom
	})
	if last == totalRows {
		last = totalRows - 1
	}

	snap.FirstVisibleRow = first
	snap.LastVisibleRow = last
	snap.PaddingTop = snap.RowTops[first]
	return snap
}

// Empty reports whether no row is visible.
func (s Snapshot) Empty() bool {
	return s.LastVisibleRow < s.FirstVisibleRow
}

// VisibleRows returns the number of rows in the visible range.
func (s Snapshot) VisibleRows() int {
	if s.Empty() {
		return 0
	}
	return s.LastVisibleRow - s.FirstVisibleRow + 1
}

// RowBottom returns the bottom edge of row.
func (s Snapshot) RowBottom(row int) int {
	return s.RowTops[row] + s.RowHeights[row]
}

// ItemRange returns the half-open item range covered by the visible rows.
func (s Snapshot) ItemRange(columns, itemCount int) (start, end int) {
	if s.Empty() {
		return 0, 0
	}
	start, _ = RowSlice(s.FirstVisibleRow, columns, itemCount)
	_, end = RowSlice(s.LastVisibleRow, columns, itemCount)
	return start, end
}

// RowAt returns the row containing offset, or -1 when the offset lies outside
// the content or inside a gap.
func (s Snapshot) RowAt(offset int) int {
	i := sort.Search(s.TotalRows, func(i int) bool {
		return s.RowTops[i]+s.RowHeights[i] > offset
	})
	if i == s.TotalRows || s.RowTops[i] > offset {
		return -1
	}
	return i
}
