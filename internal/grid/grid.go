package grid

import (
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Geometry exposes the current size of the viewport element. It is only read
// during a read phase.
type Geometry interface {
	Size() (width, height int)
}

// ResizeSource delivers a notification whenever the observed container box
// changes size. The returned function cancels the subscription.
type ResizeSource interface {
	OnResize(fn func()) (cancel func())
}

// ScrollSource delivers the container's new scroll offset whenever it changes.
// The returned function cancels the subscription.
type ScrollSource interface {
	OnScroll(fn func(offset int)) (cancel func())
}

// Config is the per-instance configuration of a grid.
type Config struct {
	// ItemCount is the length of the collection. It is fixed for the lifetime
	// of a Grid; a new collection gets a new Grid.
	ItemCount int
	// ItemMaxWidth is the width of one item box.
	ItemMaxWidth int
	// Gap separates columns and rows.
	Gap int
	// BootstrapHeight is the row height assumed before any row is measured.
	BootstrapHeight int
}

// DefaultConfig returns the default configuration for a collection of itemCount items.
func DefaultConfig(itemCount int) Config {
	return Config{
		ItemCount:       itemCount,
		ItemMaxWidth:    DefaultItemMaxWidth,
		Gap:             DefaultGap,
		BootstrapHeight: DefaultBootstrapHeight,
	}
}

// Read task keys. Repeated notifications collapse into one read per frame.
const (
	readKeyResize  = "resize"
	readKeyMeasure = "measure"
)

// Grid owns the state of one mounted grid instance: the row height store, the
// sizing state and the scroll state. It subscribes to resize and scroll
// notifications on Mount and releases them on Close.
//
// A Grid is not safe for concurrent use. All methods must be called from the
// goroutine that renders it.
type Grid struct {
	id     string
	cfg    Config
	logger zerolog.Logger

	heights   *HeightStore
	sizing    Sizing
	scrollTop int

	geometry   Geometry
	frames     *FrameScheduler
	invalidate func()
	cancels    []func()
	mounted    bool
	closed     bool
}

// Option configures a Grid.
type Option func(*Grid)

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Grid) {
		g.logger = logger
	}
}

// WithInvalidate sets the hook called whenever grid state changes and the host
// should render a new frame.
func WithInvalidate(fn func()) Option {
	return func(g *Grid) {
		g.invalidate = fn
	}
}

// WithScheduler shares a frame scheduler with other components of the host.
func WithScheduler(s *FrameScheduler) Option {
	return func(g *Grid) {
		g.frames = s
	}
}

// New creates an unmounted grid.
func New(cfg Config, opts ...Option) *Grid {
	if cfg.ItemMaxWidth <= 0 {
		cfg.ItemMaxWidth = DefaultItemMaxWidth
	}
	if cfg.Gap < 0 {
		cfg.Gap = 0
	}
	if cfg.BootstrapHeight <= 0 {
		cfg.BootstrapHeight = DefaultBootstrapHeight
	}
	if cfg.ItemCount < 0 {
		cfg.ItemCount = 0
	}

	g := &Grid{
		id:         ulid.Make().String(),
		cfg:        cfg,
		logger:     zerolog.Nop(),
		heights:    NewHeightStore(WithBootstrap(cfg.BootstrapHeight)),
		sizing:     Sizing{ItemMaxWidth: cfg.ItemMaxWidth, Gap: cfg.Gap},
		invalidate: func() {},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.frames == nil {
		g.frames = NewFrameScheduler()
	}
	g.logger = g.logger.With().Str("component", "grid").Str("grid_id", g.id).Logger()
	return g
}

// Mount attaches the grid to its container. Any of the sources may be nil when
// the host drives that part of the state some other way. Mount queues the
// initial geometry read.
func (g *Grid) Mount(geometry Geometry, resize ResizeSource, scroll ScrollSource) {
	if g.closed || g.mounted {
		return
	}
	g.geometry = geometry
	if resize != nil {
		g.cancels = append(g.cancels, resize.OnResize(g.handleResize))
	}
	if scroll != nil {
		g.cancels = append(g.cancels, scroll.OnScroll(g.handleScroll))
	}
	g.mounted = true

	g.logger.Debug().Int("items", g.cfg.ItemCount).Msg("grid mounted")
	g.handleResize()
}

// Close unsubscribes from the notification sources and detaches the geometry.
// Queued read tasks become no-ops. Close is idempotent.
func (g *Grid) Close() {
	if g.closed {
		return
	}
	for _, cancel := range g.cancels {
		cancel()
	}
	g.cancels = nil
	g.geometry = nil
	g.closed = true
	g.logger.Debug().Int("measured_rows", g.heights.Len()).Msg("grid closed")
}

// handleResize defers the geometry read to the read phase. Nothing has changed
// yet, so no frame is requested; readGeometry does that once it has.
func (g *Grid) handleResize() {
	if g.closed {
		return
	}
	g.frames.ReadTask(readKeyResize, g.readGeometry)
}

func (g *Grid) readGeometry() {
	if g.closed || g.geometry == nil {
		return
	}
	width, height := g.geometry.Size()
	prevCols := g.sizing.Columns
	if !g.sizing.Resize(width, height) {
		return
	}
	if prevCols != g.sizing.Columns {
		g.logger.Debug().
			Int("width", width).
			Int("height", height).
			Int("columns", g.sizing.Columns).
			Msg("column count changed")
	}
	g.invalidate()
}

func (g *Grid) handleScroll(offset int) {
	if g.closed {
		return
	}
	offset = max(offset, 0)
	if offset == g.scrollTop {
		return
	}
	g.scrollTop = offset
	g.invalidate()
}

// Layout computes the snapshot for the current state.
func (g *Grid) Layout() Snapshot {
	return ComputeLayout(LayoutParams{
		ItemCount:       g.cfg.ItemCount,
		Columns:         g.sizing.Columns,
		Gap:             g.sizing.Gap,
		ScrollTop:       g.scrollTop,
		ContainerHeight: g.sizing.ContainerHeight,
	}, g.heights)
}

// VisibleItems returns the half-open item range that must be rendered.
func (g *Grid) VisibleItems() (start, end int) {
	return g.Layout().ItemRange(g.Columns(), g.cfg.ItemCount)
}

// RecordFrame queues the measurement pass for a frame rendered from snap.
// reader is consulted during the next read phase. A frame recorded under a
// column count that has changed by then is discarded.
func (g *Grid) RecordFrame(snap Snapshot, reader BoxReader) {
	if g.closed || snap.Empty() || reader == nil {
		return
	}
	cols := g.sizing.Columns
	g.frames.ReadTask(readKeyMeasure, func() {
		if g.closed || cols != g.sizing.Columns {
			return
		}
		res := MeasureFrame(g.heights, reader, snap.FirstVisibleRow, snap.LastVisibleRow)
		if !res.HasChanges() {
			return
		}
		g.logger.Debug().
			Int("measured", res.Measured).
			Ints("changed_rows", res.Changed).
			Int("average", g.heights.Average()).
			Msg("row heights updated")
		g.invalidate()
	})
}

// FlushReads runs the read phase and returns the number of tasks executed.
func (g *Grid) FlushReads() int {
	return g.frames.Flush()
}

// Pending reports whether a read phase is due.
func (g *Grid) Pending() bool {
	return g.frames.Pending()
}

// SetItemMaxWidth changes the item width of a live grid. The column count is
// recomputed during the next read phase.
func (g *Grid) SetItemMaxWidth(width int) {
	if g.closed || width <= 0 || width == g.sizing.ItemMaxWidth {
		return
	}
	g.cfg.ItemMaxWidth = width
	g.sizing.ItemMaxWidth = width
	g.logger.Debug().Int("item_max_width", width).Msg("item width changed")
	g.handleResize()
	g.invalidate()
}

// ID returns the unique identifier of this grid instance.
func (g *Grid) ID() string { return g.id }

// Config returns the effective configuration.
func (g *Grid) Config() Config { return g.cfg }

// Sizing returns the current sizing state.
func (g *Grid) Sizing() Sizing { return g.sizing }

// Columns returns the current column count, at least 1.
func (g *Grid) Columns() int { return max(g.sizing.Columns, 1) }

// ScrollTop returns the current scroll offset.
func (g *Grid) ScrollTop() int { return g.scrollTop }

// Heights exposes the row height store read-only.
func (g *Grid) Heights() HeightReader { return g.heights }

// MeasuredRows returns how many rows have been measured.
func (g *Grid) MeasuredRows() int { return g.heights.Len() }

// Mounted reports whether the grid is mounted and not closed.
func (g *Grid) Mounted() bool { return g.mounted && !g.closed }

// MaxScroll returns the largest scroll offset that keeps the viewport filled.
func (g *Grid) MaxScroll() int {
	snap := g.Layout()
	return max(snap.TotalHeight-g.sizing.ContainerHeight, 0)
}
