// Package grid implements a virtualization engine for multi-column grids.
//
// The engine partitions a collection of items into rows, learns row heights as
// rows are painted, and computes which contiguous range of rows intersects the
// current scroll offset. Only those rows need to be rendered. Key pieces:
//   - HeightStore: sparse measured row heights plus a running average fallback
//   - ComputeColumns: column count from container width, item width and gap
//   - ComputeLayout: row tops, total height, visible rows and top padding
//   - Measure: writes rendered row heights back into the store
//   - Grid: owns the state of one mounted grid and coordinates resize and
//     scroll notifications with a read/write frame split
//
// The engine never looks at item content. It works in integer units (pixels on a
// graphical host, cells in a terminal) and is driven from a single goroutine.
package grid
