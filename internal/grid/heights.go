package grid

import "math"

// DefaultBootstrapHeight is the fallback row height used while no row has been measured.
const DefaultBootstrapHeight = 100

// HeightReader is the read side of a row height store.
type HeightReader interface {
	// Get returns the measured height of row and whether it has been measured.
	Get(row int) (int, bool)
	// Average returns the fallback height for unmeasured rows.
	Average() int
}

// HeightStore is a sparse mapping from row index to measured height.
// Unmeasured rows resolve to the rounded mean of all stored heights.
type HeightStore struct {
	heights   map[int]int
	sum       int
	bootstrap int
}

// StoreOption configures a HeightStore.
type StoreOption func(*HeightStore)

// WithBootstrap sets the height returned by Average while the store is empty.
// Non-positive values are ignored.
func WithBootstrap(height int) StoreOption {
	return func(s *HeightStore) {
		if height > 0 {
			s.bootstrap = height
		}
	}
}

// NewHeightStore creates an empty store.
func NewHeightStore(opts ...StoreOption) *HeightStore {
	s := &HeightStore{
		heights:   make(map[int]int),
		bootstrap: DefaultBootstrapHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the measured height of row.
func (s *HeightStore) Get(row int) (int, bool) {
	h, ok := s.heights[row]
	return h, ok
}

// Set records a measurement for row, replacing any earlier one.
// Non-positive heights are not measurements and are ignored.
func (s *HeightStore) Set(row, height int) {
	if height <= 0 {
		return
	}
	if prev, ok := s.heights[row]; ok {
		s.sum -= prev
	}
	s.heights[row] = height
	s.sum += height
}

// Average returns the mean of all stored heights rounded to the nearest unit,
// or the bootstrap height when nothing has been measured yet.
func (s *HeightStore) Average() int {
	if len(s.heights) == 0 {
		return s.bootstrap
	}
	return int(math.Round(float64(s.sum) / float64(len(s.heights))))
}

// Resolve returns the measured height of row, falling back to Average.
func (s *HeightStore) Resolve(row int) int {
	if h, ok := s.heights[row]; ok {
		return h
	}
	return s.Average()
}

// Len returns the number of measured rows.
func (s *HeightStore) Len() int {
	return len(s.heights)
}

// Bootstrap returns the height used when the store is empty.
func (s *HeightStore) Bootstrap() int {
	return s.bootstrap
}
