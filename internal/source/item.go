// Package source produces the items shown by the grid browser. Items are
// opaque to the grid engine; only the card renderer looks inside them.
package source

// Item is one card's worth of content.
type Item struct {
	ID       string
	Title    string
	Subtitle string
	// Body is the preview text, one entry per line. Empty for directories and
	// binary files.
	Body []string
	// Markdown marks bodies that should be rendered as markdown.
	Markdown bool
	Dir      bool
	Size     int64
}

// Lines returns the number of body lines.
func (i Item) Lines() int {
	return len(i.Body)
}
