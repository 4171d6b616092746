package gridview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/vgrid/internal/grid"
	"github.com/rshade/vgrid/internal/tui"
)

// frameBoxes holds the rendered item heights of one frame, keyed by row.
type frameBoxes map[int][]int

// ItemHeights implements grid.BoxReader.
func (f frameBoxes) ItemHeights(row int) []int {
	return f[row]
}

// renderFrame is the write phase: it lays out the grid, renders the visible
// rows and records the frame for measurement.
func (m *Model[T]) renderFrame() {
	m.dirty = false
	m.renders++

	snap := m.grid.Layout()
	m.status = m.statusLine(snap)
	if snap.Empty() {
		m.frame = window(nil, 0, m.box.height)
		return
	}

	sizing := m.grid.Sizing()
	cols := m.grid.Columns()
	itemWidth := sizing.ItemWidth()
	spacer := strings.Repeat(" ", sizing.Gap)

	boxes := make(frameBoxes, snap.VisibleRows())
	var block []string
	for row := snap.FirstVisibleRow; row <= snap.LastVisibleRow; row++ {
		if row > snap.FirstVisibleRow {
			block = append(block, make([]string, sizing.Gap)...)
		}
		start, end := grid.RowSlice(row, cols, len(m.items))
		cards := make([]string, 0, 2*(end-start))
		heights := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			card := m.render(m.items[i], itemWidth, i == m.selected)
			heights = append(heights, lipgloss.Height(card))
			if i > start && spacer != "" {
				cards = append(cards, spacer)
			}
			cards = append(cards, card)
		}
		boxes[row] = heights
		block = append(block, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cards...), "\n")...)
	}

	// The block starts at PaddingTop in content coordinates.
	m.frame = window(block, m.grid.ScrollTop()-snap.PaddingTop, m.box.height)
	m.grid.RecordFrame(snap, boxes)
}

// window cuts height lines out of block starting at offset. A negative offset
// shows blank lines above the block; missing lines below it are blank.
func window(block []string, offset, height int) string {
	if height <= 0 {
		return ""
	}
	lines := make([]string, 0, height)
	for ; offset < 0 && len(lines) < height; offset++ {
		lines = append(lines, "")
	}
	if offset < len(block) {
		lines = append(lines, block[offset:min(len(block), offset+height-len(lines))]...)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model[T]) statusLine(snap grid.Snapshot) string {
	var b strings.Builder
	if m.opts.Title != "" {
		b.WriteString(m.opts.Title)
		b.WriteString(" · ")
	}
	if snap.Empty() {
		fmt.Fprintf(&b, "%s items", tui.FormatCount(len(m.items)))
		return tui.StatusBarStyle.Render(b.String())
	}
	start, end := snap.ItemRange(m.grid.Columns(), len(m.items))
	fmt.Fprintf(&b, "rows %s-%s of %s · items %s-%s of %s · measured %s · avg %d",
		tui.FormatCount(snap.FirstVisibleRow+1),
		tui.FormatCount(snap.LastVisibleRow+1),
		tui.FormatCount(snap.TotalRows),
		tui.FormatCount(start+1),
		tui.FormatCount(end),
		tui.FormatCount(len(m.items)),
		tui.FormatCount(m.grid.MeasuredRows()),
		m.grid.Heights().Average(),
	)
	status := b.String()
	if m.width > 0 {
		status = ansi.Truncate(status, m.width, tui.IconEllipsis)
	}
	return tui.StatusBarStyle.Render(status)
}
