package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/vgrid/internal/source"
)

// markdownStyle is fixed rather than auto-detected; detection queries the
// terminal, which bubbletea owns while a session is running.
const markdownStyle = "dark"

type cardKey struct {
	id       string
	width    int
	selected bool
}

// CardRenderer renders items as bordered cards of a fixed outer width.
// Rendered cards are cached per item, width and selection state.
type CardRenderer struct {
	mu        sync.Mutex
	minHeight int
	markdown  bool
	cache     map[cardKey]string
	md        map[int]*glamour.TermRenderer
}

// NewCardRenderer creates a renderer. minHeight is the minimum outer card
// height; markdown enables glamour rendering of markdown bodies.
func NewCardRenderer(minHeight int, markdown bool) *CardRenderer {
	return &CardRenderer{
		minHeight: minHeight,
		markdown:  markdown,
		cache:     make(map[cardKey]string),
		md:        make(map[int]*glamour.TermRenderer),
	}
}

// Render returns the card for item at the given outer width.
func (r *CardRenderer) Render(item source.Item, width int, selected bool) string {
	key := cardKey{id: item.ID, width: width, selected: selected}

	r.mu.Lock()
	defer r.mu.Unlock()

	if card, ok := r.cache[key]; ok {
		return card
	}
	card := r.render(item, width, selected)
	r.cache[key] = card
	return card
}

// Reset drops all cached cards.
func (r *CardRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[cardKey]string)
}

// Cached returns the number of cached cards.
func (r *CardRenderer) Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

func (r *CardRenderer) render(item source.Item, width int, selected bool) string {
	inner := max(width-cardChromeWidth, 1)

	title := item.Title
	if item.Dir {
		title = IconDir + " " + title
	}

	lines := make([]string, 0, 2+len(item.Body))
	lines = append(lines, CardTitleStyle.Render(ansi.Truncate(title, inner, IconEllipsis)))
	if item.Subtitle != "" {
		lines = append(lines, CardSubtitleStyle.Render(ansi.Truncate(item.Subtitle, inner, IconEllipsis)))
	}
	for _, line := range r.body(item, inner) {
		lines = append(lines, ansi.Truncate(line, inner, IconEllipsis))
	}

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	// Width and Height exclude the border; Width includes padding.
	style = style.Width(max(width-cardBorder, 1))
	if r.minHeight > cardBorder {
		style = style.Height(r.minHeight - cardBorder)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (r *CardRenderer) body(item source.Item, inner int) []string {
	if len(item.Body) == 0 {
		return nil
	}
	if !item.Markdown || !r.markdown {
		return item.Body
	}
	renderer, err := r.markdownRenderer(inner)
	if err != nil {
		return item.Body
	}
	out, err := renderer.Render(strings.Join(item.Body, "\n"))
	if err != nil {
		return item.Body
	}
	out = strings.Trim(out, "\n")
	if out == "" {
		return nil
	}
	rendered := strings.Split(out, "\n")
	for i, line := range rendered {
		rendered[i] = strings.TrimRight(line, " ")
	}
	return rendered
}

func (r *CardRenderer) markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if renderer, ok := r.md[width]; ok {
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.md[width] = renderer
	return renderer, nil
}

// RenderCard renders a single card without caching or markdown.
func RenderCard(item source.Item, width, minHeight int, selected bool) string {
	return NewCardRenderer(minHeight, false).render(item, width, selected)
}
