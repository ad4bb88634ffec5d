// Package textutil provides display-width helpers for table output.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the terminal display width of s (wcwidth-based).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	graphemes := uniseg.NewGraphemes(s)
	width := 0
	for graphemes.Next() {
		width += runewidth.StringWidth(graphemes.Str())
	}
	return width
}

// TruncateByWidth truncates s to fit width w without breaking grapheme
// clusters, appending ellipsis when truncation happens and it fits.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if s == "" || w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}

	ellWidth := runewidth.StringWidth(ellipsis)
	budget := w - ellWidth
	if budget < 0 {
		budget = 0
		ellipsis = ""
	}

	var b strings.Builder
	used := 0
	graphemes := uniseg.NewGraphemes(s)
	for graphemes.Next() {
		seg := graphemes.Str()
		segWidth := runewidth.StringWidth(seg)
		if used+segWidth > budget {
			break
		}
		b.WriteString(seg)
		used += segWidth
	}
	return b.String() + ellipsis
}

// PadRight pads s on the right with spaces to visible width w.
func PadRight(s string, w int) string {
	pad := w - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// PadLeft pads s on the left with spaces to visible width w.
func PadLeft(s string, w int) string {
	pad := w - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
