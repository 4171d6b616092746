package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeColumns(t *testing.T) {
	tests := []struct {
		name           string
		containerWidth int
		itemMaxWidth   int
		gap            int
		want           int
	}{
		{name: "three columns fit 650", containerWidth: 650, itemMaxWidth: 200, gap: 10, want: 3},
		{name: "exact fit including trailing gap", containerWidth: 620, itemMaxWidth: 200, gap: 10, want: 3},
		{name: "one unit short of three", containerWidth: 619, itemMaxWidth: 200, gap: 10, want: 2},
		{name: "narrower than one item", containerWidth: 120, itemMaxWidth: 200, gap: 10, want: 1},
		{name: "zero width clamps to one", containerWidth: 0, itemMaxWidth: 200, gap: 10, want: 1},
		{name: "negative width clamps to one", containerWidth: -40, itemMaxWidth: 200, gap: 10, want: 1},
		{name: "degenerate item width", containerWidth: 500, itemMaxWidth: 0, gap: 0, want: 1},
		{name: "terminal cells", containerWidth: 80, itemMaxWidth: 24, gap: 2, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeColumns(tt.containerWidth, tt.itemMaxWidth, tt.gap))
		})
	}
}

func TestSizing_Resize(t *testing.T) {
	s := Sizing{ItemMaxWidth: 200, Gap: 10}
	assert.False(t, s.Attached())

	assert.True(t, s.Resize(650, 400))
	assert.Equal(t, 3, s.Columns)
	assert.Equal(t, 400, s.ContainerHeight)
	assert.True(t, s.Attached())

	assert.False(t, s.Resize(650, 400), "same geometry is not a change")
	assert.True(t, s.Resize(650, 500), "height alone is a change")
	assert.Equal(t, 3, s.Columns)
}

func TestSizing_ItemWidth(t *testing.T) {
	s := Sizing{ItemMaxWidth: 30, Gap: 1}
	assert.Equal(t, 30, s.ItemWidth())

	s.Resize(20, 10)
	assert.Equal(t, 20, s.ItemWidth(), "item shrinks to a narrow container")

	s.Resize(100, 10)
	assert.Equal(t, 30, s.ItemWidth())
}
