package cli

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vgrid/internal/source"
	"github.com/rshade/vgrid/internal/tui"
	"github.com/rshade/vgrid/internal/tui/gridview"
)

func newTestGrid(t *testing.T) *gridview.Model[source.Item] {
	t.Helper()
	cards := tui.NewCardRenderer(3, false)
	return gridview.New(source.Synthetic(20, 1), cards.Render, gridview.Options{ItemMaxWidth: 20, Gap: 1})
}

func TestRunInteractive_ClosesGridWhenCanceled(t *testing.T) {
	m := newTestGrid(t)
	require.True(t, m.Grid().Mounted())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The exit error depends on where the program noticed the cancellation.
	_ = runInteractive(ctx, m, "", tea.WithInput(nil), tea.WithOutput(io.Discard))

	assert.False(t, m.Grid().Mounted(), "subscriptions are released without a quit key")
}

func TestRenderStatic_ClosesGrid(t *testing.T) {
	m := newTestGrid(t)

	frame := renderStatic(m, 60, 20)

	assert.NotEmpty(t, frame)
	assert.False(t, m.Grid().Mounted())
}
