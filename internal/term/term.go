// Package term holds the low-level terminal plumbing for the spinner:
// cursor control sequences, grapheme-aware width measurement, and a
// writer that never lets a broken stream bubble up to the caller.
package term

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ANSI cursor visibility sequences.
const (
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
)

// Writer wraps an output stream and swallows write errors. The spinner
// is decorative; a closed or misbehaving stream must never disturb the
// host application.
type Writer struct {
	out io.Writer
}

// NewWriter returns a Writer targeting out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteString writes s to the underlying stream, ignoring any error.
func (w *Writer) WriteString(s string) {
	_, _ = io.WriteString(w.out, s)
}

// HideCursor makes the terminal cursor invisible.
func (w *Writer) HideCursor() {
	w.WriteString(HideCursor)
}

// ShowCursor makes the terminal cursor visible again.
func (w *Writer) ShowCursor() {
	w.WriteString(ShowCursor)
}

// Graphemes splits s into user-perceived characters (grapheme
// clusters), so that multi-rune glyphs like "⭐️" or "🇸🇪" animate as a
// single frame instead of several broken ones.
func Graphemes(s string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// Width reports how many terminal columns s occupies. Each grapheme
// counts at least one column, so exotic clusters the width tables don't
// know about still erase cleanly.
func Width(s string) int {
	total := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := runewidth.StringWidth(gr.Str())
		if w < 1 {
			w = 1
		}
		total += w
	}
	return total
}

// Backspaces returns enough backspaces to move the cursor left over s.
func Backspaces(s string) string {
	return strings.Repeat("\b", Width(s))
}

// Blank returns spaces covering the columns occupied by s.
func Blank(s string) string {
	return strings.Repeat(" ", Width(s))
}
