package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/vgrid/internal/logging"
)

// ErrNotDirectory is returned by Dir when the path is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// sniffLen is how much of a file is inspected to decide whether it is text.
const sniffLen = 512

// maxLineLen caps a single preview line.
const maxLineLen = 64 * 1024

// DirOptions controls directory listing.
type DirOptions struct {
	PreviewLines int
	Markdown     bool
	Concurrency  int
	ShowHidden   bool
}

// DefaultDirOptions mirrors the browse section defaults.
func DefaultDirOptions() DirOptions {
	return DirOptions{PreviewLines: 8, Markdown: true, Concurrency: 8}
}

// Dir lists the entries of path as items, directories first and then by name.
// Text files get up to PreviewLines lines of preview, read concurrently.
// Files that cannot be read are listed without a preview.
func Dir(ctx context.Context, path string, opts DirOptions) ([]Item, error) {
	logger := logging.FromContext(ctx).With().Str("component", "source").Str("path", path).Logger()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	entries = filterEntries(entries, opts.ShowHidden)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	printer := message.NewPrinter(language.English)
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{
			ID:    filepath.Join(path, e.Name()),
			Title: e.Name(),
			Dir:   e.IsDir(),
		}
		if e.IsDir() {
			items[i].Title += "/"
			items[i].Subtitle = "directory"
			continue
		}
		if fi, infoErr := e.Info(); infoErr == nil {
			items[i].Size = fi.Size()
			items[i].Subtitle = printer.Sprintf("%d bytes", fi.Size())
		}
		items[i].Markdown = opts.Markdown && isMarkdown(e.Name())
	}

	if opts.PreviewLines <= 0 {
		return items, nil
	}

	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range items {
		if items[i].Dir {
			continue
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			body, readErr := preview(items[i].ID, opts.PreviewLines)
			if readErr != nil {
				logger.Debug().Err(readErr).Str("file", items[i].ID).Msg("skipping preview")
				return nil
			}
			items[i].Body = body
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("loading previews for %s: %w", path, err)
	}

	logger.Debug().Int("items", len(items)).Msg("directory listed")
	return items, nil
}

func filterEntries(entries []os.DirEntry, showHidden bool) []os.DirEntry {
	if showHidden {
		return entries
	}
	kept := entries[:0]
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// preview returns up to n lines of a text file, or nil for binary files.
func preview(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	head, err := r.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}
	if isBinary(head) {
		return nil, nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLen)
	lines := make([]string, 0, n)
	for len(lines) < n && scanner.Scan() {
		lines = append(lines, strings.ReplaceAll(scanner.Text(), "\t", "    "))
	}
	if err = scanner.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return nil, err
	}
	return lines, nil
}

func isBinary(head []byte) bool {
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}
	if len(head) == sniffLen {
		// A multi-byte rune may straddle the sniff boundary.
		for i := 0; i < utf8.UTFMax-1 && !utf8.Valid(head); i++ {
			head = head[:len(head)-1]
		}
	}
	return !utf8.Valid(head)
}
