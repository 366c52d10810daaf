package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PadRight pads str with spaces to width display cells; wider strings are returned as is
func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

// Truncate shortens str to at most width display cells, marking the cut with "..."
func Truncate(str string, width int) string {
	return runewidth.Truncate(str, width, "...")
}

// CountLine is one labelled number in a console summary
type CountLine struct {
	Label string
	Count int
}

// PrintCounts writes the lines with their numbers aligned in one column
func PrintCounts(w io.Writer, lines []CountLine) {
	width := 0
	for _, l := range lines {
		if lw := runewidth.StringWidth(l.Label); lw > width {
			width = lw
		}
	}
	for _, l := range lines {
		fmt.Fprintf(w, "%s %d\n", PadRight(l.Label, width), l.Count)
	}
}
