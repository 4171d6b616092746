package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // message.Printer is safe for reuse.
var printer = message.NewPrinter(language.English)

// FormatCount formats n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
