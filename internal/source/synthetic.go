package source

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// MaxSyntheticLines bounds the body length of synthetic items.
const MaxSyntheticLines = 12

var words = []string{ //nolint:gochecknoglobals // Read-only word list.
	"grid", "row", "column", "height", "measure", "scroll", "viewport", "frame",
	"layout", "gap", "card", "padding", "estimate", "resize", "window", "offset",
}

var tags = []string{"alpha", "beta", "gamma", "delta", "epsilon"} //nolint:gochecknoglobals // Read-only.

// Synthetic returns n deterministic items whose bodies vary between 0 and
// MaxSyntheticLines lines, giving rows heterogeneous heights. The same seed
// always yields the same items.
func Synthetic(n int, seed uint64) []Item {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // Not security sensitive.

	items := make([]Item, n)
	for i := range items {
		lines := rng.IntN(MaxSyntheticLines + 1)
		body := make([]string, lines)
		for l := range body {
			body[l] = sentence(rng, 2+rng.IntN(5))
		}
		items[i] = Item{
			ID:       fmt.Sprintf("item-%d", i),
			Title:    fmt.Sprintf("Item %d", i+1),
			Subtitle: fmt.Sprintf("%s · %d lines", tags[rng.IntN(len(tags))], lines),
			Body:     body,
		}
	}
	return items
}

func sentence(rng *rand.Rand, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[rng.IntN(len(words))]
	}
	return strings.Join(parts, " ")
}
