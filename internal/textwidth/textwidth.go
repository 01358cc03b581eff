// Package textwidth measures and trims text by terminal cells for the
// status and message bars.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ClusterWidth returns the cell width of one grapheme cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// Width returns the cell width of s.
func Width(s string) int {
	if s == "" {
		return 0
	}
	total := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		total += ClusterWidth(g.Str())
	}
	return total
}

// Truncate returns the longest prefix of s that fits in cells without
// splitting a grapheme cluster.
func Truncate(s string, cells int) string {
	if cells <= 0 || s == "" {
		return ""
	}
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := ClusterWidth(g.Str())
		if used+w > cells {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	return sb.String()
}

// PadRight truncates s to cells and pads it with spaces to exactly cells.
func PadRight(s string, cells int) string {
	s = Truncate(s, cells)
	if pad := cells - Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
