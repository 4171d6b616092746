package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vgrid/internal/source"
)

func TestSynthetic_Deterministic(t *testing.T) {
	a := source.Synthetic(50, 7)
	b := source.Synthetic(50, 7)

	require.Len(t, a, 50)
	assert.Equal(t, a, b, "same seed must produce the same items")
}

func TestSynthetic_SeedChangesContent(t *testing.T) {
	assert.NotEqual(t, source.Synthetic(50, 1), source.Synthetic(50, 2))
}

func TestSynthetic_HeterogeneousBodies(t *testing.T) {
	items := source.Synthetic(200, 42)

	seen := map[int]bool{}
	for i, it := range items {
		assert.LessOrEqual(t, it.Lines(), source.MaxSyntheticLines)
		assert.NotEmpty(t, it.Title)
		assert.NotEmpty(t, it.ID)
		assert.False(t, it.Dir)
		if i > 0 {
			assert.NotEqual(t, items[i-1].ID, it.ID)
		}
		seen[it.Lines()] = true
	}
	assert.Greater(t, len(seen), 3, "bodies should vary in length")
}

func TestSynthetic_Empty(t *testing.T) {
	assert.Empty(t, source.Synthetic(0, 1))
	assert.Empty(t, source.Synthetic(-3, 1))
}
