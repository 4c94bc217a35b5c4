package ask

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// displayWidth returns the number of terminal cells s occupies.
// Grapheme clusters are measured as a unit so that emoji sequences and
// combining marks are not over-counted.
func displayWidth(s string) int {
	if isASCII(s) {
		return len(s)
	}
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		if len(runes) == 0 {
			continue
		}
		width += runewidth.RuneWidth(runes[0])
	}
	return width
}

// runeCells returns the cell width of a single rune; control characters
// occupy no cells.
func runeCells(r rune) int {
	return runewidth.RuneWidth(r)
}

// truncateWidth shortens s to at most width cells, marking the cut with an
// ellipsis.
func truncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf || s[i] < 0x20 {
			return false
		}
	}
	return true
}

// singleLine replaces control characters (newlines, tabs) with spaces so
// that s renders on one row.
func singleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
