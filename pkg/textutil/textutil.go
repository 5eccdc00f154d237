// Package textutil holds the small text formatting helpers behind help page
// rendering.
package textutil

import "strings"

// Wrap greedily breaks text into lines no wider than width. Words longer
// than width get a line of their own rather than being cut.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// PadRight extends s with spaces to exactly width. Strings already wider
// than width are returned unchanged, never truncated.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
