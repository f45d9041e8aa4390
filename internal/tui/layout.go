package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Screen layout, top to bottom. Mouse hit-testing depends on these offsets.
const (
	headingY    = 0
	addRowY     = 2
	listTop     = 4
	footerLines = 2
	minListH    = 3

	defaultWidth  = 80
	defaultHeight = 24
	maxContentW   = 96
	minContentW   = 30
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height
// lines tall.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			ln = xansi.Cut(ln, 0, width)
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}

	return strings.Join(lines, "\n")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
