// wrap.go — Pixel-measured greedy word wrapping.
package overlay

import (
	"strings"

	"golang.org/x/image/font"
)

// Wrap breaks text into lines that each fit within maxWidth pixels when
// rendered with face. Words are packed greedily; a single word wider than
// maxWidth gets a line of its own and is never split mid-word.
func Wrap(face font.Face, text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	if len(words) == 0 {
		return lines
	}

	currentLine := words[0]
	for _, word := range words[1:] {
		testLine := currentLine + " " + word
		advance := font.MeasureString(face, testLine)
		if advance.Ceil() > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}
	lines = append(lines, currentLine)

	return lines
}
