package gridview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/vgrid/internal/grid"
)

// wheelLines is how many scroll steps one mouse wheel notch moves.
const wheelLines = 3

// statusBarHeight is the number of lines below the grid used by the status bar.
const statusBarHeight = 1

// RenderFunc renders an item as a box of the given width. The rendered height
// is measured after the frame is drawn.
type RenderFunc[T any] func(item T, width int, selected bool) string

// Options configures a Model.
type Options struct {
	// Title prefixes the status bar.
	Title          string
	ItemMaxWidth   int
	Gap            int
	EstimateHeight int
	// ScrollStep is the number of lines moved by one up/down key press.
	ScrollStep int
	// Logger receives grid debug output. Nil discards it.
	Logger *zerolog.Logger
}

// ItemWidthMsg changes the item width of a running grid view.
type ItemWidthMsg struct {
	Width int
}

// frameReadMsg runs the read phase for the frame rendered before it was sent.
type frameReadMsg struct{}

func readFrame() tea.Msg {
	return frameReadMsg{}
}

// viewport is the geometry of the grid area, read by the grid during a read phase.
type viewport struct {
	width, height int
}

func (v *viewport) Size() (int, int) {
	return v.width, v.height
}

// Model is a Bubble Tea model that shows items in a virtualized grid.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]
	opts   Options

	grid   *grid.Grid
	box    *viewport
	resize grid.ResizeSignal
	scroll grid.ScrollSignal

	keys KeyMap
	help help.Model

	width    int
	height   int
	selected int

	frame       string
	status      string
	dirty       bool
	readPending bool
	renders     int
	quitting    bool
}

// New creates a grid view over items. The grid is mounted immediately; it gets
// its geometry from the first tea.WindowSizeMsg.
func New[T any](items []T, render RenderFunc[T], opts Options) *Model[T] {
	if opts.ScrollStep < 1 {
		opts.ScrollStep = 1
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	m := &Model[T]{
		items:  items,
		render: render,
		opts:   opts,
		box:    &viewport{},
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.grid = grid.New(grid.Config{
		ItemCount:       len(items),
		ItemMaxWidth:    opts.ItemMaxWidth,
		Gap:             opts.Gap,
		BootstrapHeight: opts.EstimateHeight,
	}, grid.WithLogger(logger), grid.WithInvalidate(m.invalidate))
	m.grid.Mount(m.box, &m.resize, &m.scroll)
	return m
}

// Init renders the first (empty) frame and schedules its read phase.
func (m *Model[T]) Init() tea.Cmd {
	return m.afterUpdate()
}

// Update applies a message, re-renders if the grid was invalidated and
// schedules the read phase of any frame that needs one.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			m.Close()
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case frameReadMsg:
		m.readPending = false
		m.grid.FlushReads()
	case ItemWidthMsg:
		m.grid.SetItemMaxWidth(msg.Width)
	}
	return m, m.afterUpdate()
}

func (m *Model[T]) afterUpdate() tea.Cmd {
	if !m.grid.Mounted() {
		return nil
	}
	m.clampScroll()
	if m.dirty {
		m.renderFrame()
	}
	if m.grid.Pending() && !m.readPending {
		m.readPending = true
		return readFrame
	}
	return nil
}

func (m *Model[T]) invalidate() {
	m.dirty = true
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	step := m.opts.ScrollStep
	switch {
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-step)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(step)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-max(m.box.height, 1))
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(max(m.box.height, 1))
	case key.Matches(msg, m.keys.Home):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.End):
		m.scrollTo(m.grid.MaxScroll())
	case key.Matches(msg, m.keys.Left):
		m.Select(m.selected - 1)
	case key.Matches(msg, m.keys.Right):
		m.Select(m.selected + 1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layoutViewport()
	}
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button { //nolint:exhaustive // Only the wheel scrolls.
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelLines * m.opts.ScrollStep)
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelLines * m.opts.ScrollStep)
	}
}

func (m *Model[T]) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.layoutViewport()
}

// layoutViewport gives the grid whatever the status bar and help leave over
// and notifies the grid that its container was resized.
func (m *Model[T]) layoutViewport() {
	chrome := statusBarHeight + lipgloss.Height(m.help.View(m.keys))
	m.box.width = m.width
	m.box.height = max(m.height-chrome, 0)
	m.resize.Notify()
}

func (m *Model[T]) scrollBy(delta int) {
	m.scrollTo(m.grid.ScrollTop() + delta)
}

// scrollTo moves the container to offset, clamped to the scrollable range.
func (m *Model[T]) scrollTo(offset int) {
	offset = min(max(offset, 0), m.grid.MaxScroll())
	m.scroll.Notify(offset)
}

func (m *Model[T]) clampScroll() {
	if top, limit := m.grid.ScrollTop(), m.grid.MaxScroll(); top > limit {
		m.scroll.Notify(limit)
	}
}

// Select moves the selection to index, clamped to the collection, and scrolls
// the selected item's row into view.
func (m *Model[T]) Select(index int) {
	if len(m.items) == 0 {
		return
	}
	index = min(max(index, 0), len(m.items)-1)
	if index == m.selected {
		return
	}
	m.selected = index
	m.dirty = true
	m.ensureVisible(index)
}

func (m *Model[T]) ensureVisible(index int) {
	row := index / m.grid.Columns()
	snap := m.grid.Layout()
	if row >= len(snap.RowTops) {
		return
	}
	top := snap.RowTops[row]
	bottom := top + snap.RowHeights[row]
	scrollTop := m.grid.ScrollTop()
	switch {
	case top < scrollTop:
		m.scrollTo(top)
	case bottom > scrollTop+m.box.height:
		m.scrollTo(min(top, bottom-m.box.height))
	}
}

// View returns the last rendered frame with the status bar and help.
func (m *Model[T]) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.frame, m.status, m.help.View(m.keys))
}

// Close releases the grid. It is called automatically on quit.
func (m *Model[T]) Close() {
	m.grid.Close()
}

// Grid returns the hosted grid.
func (m *Model[T]) Grid() *grid.Grid {
	return m.grid
}

// Selected returns the selected item index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item, or nil for an empty collection.
func (m *Model[T]) SelectedItem() *T {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}

// ItemCount returns the number of items.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// ViewportHeight returns the height of the grid area.
func (m *Model[T]) ViewportHeight() int {
	return m.box.height
}

// Frame returns the grid area of the last rendered frame.
func (m *Model[T]) Frame() string {
	return m.frame
}

// Renders returns how many frames have been rendered.
func (m *Model[T]) Renders() int {
	return m.renders
}
