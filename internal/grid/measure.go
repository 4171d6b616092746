package grid

// RowMeasurement holds the rendered box heights of the items of one row.
type RowMeasurement struct {
	Row         int
	ItemHeights []int
}

// Height returns the tallest item height of the row, so that no item in the
// row is clipped.
func (m RowMeasurement) Height() int {
	h := 0
	for _, ih := range m.ItemHeights {
		h = max(h, ih)
	}
	return h
}

// BoxReader reads the rendered geometry of a painted frame. It must only be used
// during a read phase.
type BoxReader interface {
	// ItemHeights returns the rendered height of every item box in row, or nil
	// when row was not part of the frame.
	ItemHeights(row int) []int
}

// MeasureResult summarizes one measurement pass.
type MeasureResult struct {
	// Measured counts rows that produced a usable height.
	Measured int
	// Changed lists rows whose stored height is new or different.
	Changed []int
}

// HasChanges reports whether the pass altered the store.
func (r MeasureResult) HasChanges() bool {
	return len(r.Changed) > 0
}

// Measure writes each row's tallest item height into store. Rows without a
// positive height are skipped. It never triggers layout itself; a changed
// store is picked up by the next layout pass.
func Measure(store *HeightStore, rows []RowMeasurement) MeasureResult {
	var res MeasureResult
	for _, m := range rows {
		h := m.Height()
		if h <= 0 {
			continue
		}
		res.Measured++
		if prev, ok := store.Get(m.Row); !ok || prev != h {
			res.Changed = append(res.Changed, m.Row)
		}
		store.Set(m.Row, h)
	}
	return res
}

// MeasureFrame reads rows first..last (inclusive) from reader and measures them.
func MeasureFrame(store *HeightStore, reader BoxReader, first, last int) MeasureResult {
	rows := make([]RowMeasurement, 0, max(last-first+1, 0))
	for row := first; row <= last; row++ {
		heights := reader.ItemHeights(row)
		if len(heights) == 0 {
			continue
		}
		rows = append(rows, RowMeasurement{Row: row, ItemHeights: heights})
	}
	return Measure(store, rows)
}
