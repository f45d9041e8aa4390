package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine renders a text input as a single padded line of exactly w cells.
func renderInputLine(w int, inputView string) string {
	if w < 4 {
		w = 4
	}

	// A newline in the view would wrap the row and shift every hit-test below it.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > w {
		// Terminate ANSI styling to prevent bleed into the controls.
		line = xansi.Cut(line, 0, w) + "\x1b[0m"
	}
	return line
}
