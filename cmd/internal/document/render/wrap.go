package render

import (
	"strings"
)

// wrap breaks text into lines no wider than width. Explicit newlines are
// kept, and a single word wider than the line is split by rune.
func wrap(m Measurer, text string, style Style, width float64) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if m.TextWidth(candidate, style) <= width {
				current = candidate
				continue
			}
			if current != "" {
				lines = append(lines, current)
			}
			current = word
			for m.TextWidth(current, style) > width {
				head, tail := splitWord(m, current, style, width)
				lines = append(lines, head)
				current = tail
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// splitWord returns the longest prefix of word that fits, at least one rune.
func splitWord(m Measurer, word string, style Style, width float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && m.TextWidth(string(runes[:n+1]), style) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
