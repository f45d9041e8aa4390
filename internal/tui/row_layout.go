package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// control is a clickable button rendered inside the add row or a task row.
type control int

const (
	controlNone control = iota
	controlAdd
	controlEdit
	controlRemove
	controlSave
)

func (c control) String() string {
	switch c {
	case controlAdd:
		return "add"
	case controlEdit:
		return "edit"
	case controlRemove:
		return "remove"
	case controlSave:
		return "save"
	default:
		return "none"
	}
}

// controlSpan is a control's label and its horizontal cell range [x0, x1).
type controlSpan struct {
	control control
	label   string
	x0, x1  int
}

func (s controlSpan) contains(x int) bool { return x >= s.x0 && x < s.x1 }

const (
	controlGap = 1
	// Rows narrower than this drop their controls and only show text.
	minRowTextW = 6
	maxAddInputW = 40
)

func controlLabel(c control) string {
	switch c {
	case controlAdd:
		return "[Add]"
	case controlEdit:
		return "[Edit]"
	case controlRemove:
		return "[" + glyphTrash() + "]"
	case controlSave:
		return "[Save]"
	default:
		return ""
	}
}

// rowControls lays out a task row's right-aligned controls for a row of width w.
// The row text owns [0, x0-controlGap) of the first span.
func rowControls(w int, editing bool) []controlSpan {
	cs := []control{controlEdit, controlRemove}
	if editing {
		cs = []control{controlSave}
	}
	total := 0
	for i, c := range cs {
		if i > 0 {
			total += controlGap
		}
		total += xansi.StringWidth(controlLabel(c))
	}
	if w-total-controlGap < minRowTextW {
		return nil
	}
	spans := make([]controlSpan, 0, len(cs))
	x := w - total
	for _, c := range cs {
		label := controlLabel(c)
		lw := xansi.StringWidth(label)
		spans = append(spans, controlSpan{control: c, label: label, x0: x, x1: x + lw})
		x += lw + controlGap
	}
	return spans
}

// rowTextWidth is the width left for text (or the edit field) in a task row.
func rowTextWidth(w int, editing bool) int {
	spans := rowControls(w, editing)
	if len(spans) == 0 {
		return w
	}
	return spans[0].x0 - controlGap
}

// addRowLayout returns the add field width and the Add button span for width w.
func addRowLayout(w int) (int, controlSpan) {
	label := controlLabel(controlAdd)
	lw := xansi.StringWidth(label)
	inputW := w - lw - controlGap
	if inputW > maxAddInputW {
		inputW = maxAddInputW
	}
	if inputW < 10 {
		inputW = 10
	}
	x0 := inputW + controlGap
	return inputW, controlSpan{control: controlAdd, label: label, x0: x0, x1: x0 + lw}
}

func controlAt(spans []controlSpan, x int) control {
	for _, s := range spans {
		if s.contains(x) {
			return s.control
		}
	}
	return controlNone
}

// fitWidth pads or cuts s (ANSI-aware) to exactly w cells.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	sw := xansi.StringWidth(s)
	if sw > w {
		ell := glyphEllipsis()
		ew := xansi.StringWidth(ell)
		if w <= ew {
			return xansi.Cut(s, 0, w)
		}
		s = xansi.Cut(s, 0, w-ew) + ell
		sw = xansi.StringWidth(s)
	}
	if sw < w {
		s += strings.Repeat(" ", w-sw)
	}
	return s
}

// singleLine flattens text so a task always renders on one row.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\t", " ")
}
