package tui

import (
	"strings"
	"sync"
)

// Terminals can't change the user's font, but we can pick between Unicode and
// ASCII glyphs for affordances (drag handles, the remove control, ellipses).

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference selects a glyph set by name. Unknown names are ignored.
func applyGlyphPreference(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

// glyphHandle marks a row as draggable.
func glyphHandle() string {
	if glyphs() == glyphSetASCII {
		return ":"
	}
	return "⠿"
}

// glyphDragging replaces the handle on the row being dragged.
func glyphDragging() string {
	if glyphs() == glyphSetASCII {
		return "="
	}
	return "↕"
}

func glyphTrash() string {
	if glyphs() == glyphSetASCII {
		return "x"
	}
	return "✕"
}

func glyphEllipsis() string {
	if glyphs() == glyphSetASCII {
		return "~"
	}
	return "…"
}
