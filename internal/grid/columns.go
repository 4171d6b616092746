package grid

// Default sizing values.
const (
	DefaultItemMaxWidth = 200
	DefaultGap          = 10
)

// ComputeColumns returns how many items of itemMaxWidth fit side by side in
// containerWidth when separated by gap. A container narrower than one item
// still gets one column, so the result is always at least 1.
func ComputeColumns(containerWidth, itemMaxWidth, gap int) int {
	step := itemMaxWidth + gap
	if step <= 0 {
		return 1
	}
	cols := (containerWidth + gap) / step
	if cols < 1 {
		return 1
	}
	return cols
}

// Sizing is the size-derived state of a grid. It changes only in response to a
// resize read.
type Sizing struct {
	Columns         int
	ContainerWidth  int
	ContainerHeight int
	ItemMaxWidth    int
	Gap             int
}

// Resize recomputes the column count and container height from a fresh geometry
// read and reports whether anything changed.
func (s *Sizing) Resize(width, height int) bool {
	cols := ComputeColumns(width, s.ItemMaxWidth, s.Gap)
	changed := cols != s.Columns || width != s.ContainerWidth || height != s.ContainerHeight
	s.Columns = cols
	s.ContainerWidth = width
	s.ContainerHeight = height
	return changed
}

// Attached reports whether a non-empty geometry has been read.
func (s Sizing) Attached() bool {
	return s.ContainerWidth > 0 && s.ContainerHeight > 0
}

// ItemWidth returns the width an item is rendered at: the configured maximum,
// shrunk to the container when the container is narrower than one item.
func (s Sizing) ItemWidth() int {
	if s.ContainerWidth > 0 && s.ContainerWidth < s.ItemMaxWidth {
		return s.ContainerWidth
	}
	return s.ItemMaxWidth
}
