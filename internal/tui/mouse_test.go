package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestMouseDrag_SwapsAdjacentRows(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")
	m = apply(t, m, press(2, listTop))
	if !m.drag.active || m.drag.via != dragViaMouse {
		t.Fatalf("expected mouse drag; got %+v", m.drag)
	}
	m = apply(t, m, motion(2, listTop+1), release(2, listTop+1))
	if got := strings.Join(taskTexts(m), ","); got != "B,A,C" {
		t.Fatalf("expected A and B swapped; got %s", got)
	}
}

func TestMouseDrag_ReleaseOutsideList(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")
	m = apply(t, m, press(2, listTop), motion(2, listTop+2), release(2, headingY))
	if m.drag.active {
		t.Fatalf("expected drag finished")
	}
	if got := strings.Join(taskTexts(m), ","); got != "A,B,C" {
		t.Fatalf("expected order unchanged; got %s", got)
	}
}

func TestMouseDrag_EmptySpaceTargetsEnd(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")
	m = apply(t, m, press(2, listTop), release(2, listTop+8))
	if got := strings.Join(taskTexts(m), ","); got != "B,C,A" {
		t.Fatalf("expected A moved to the end; got %s", got)
	}
}

func TestMouse_RowControls(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")
	spans := rowControls(m.list.Width(), false)
	edit, remove := spans[0], spans[1]

	m = apply(t, m, press(remove.x0, listTop+1))
	if got := strings.Join(taskTexts(m), ","); got != "A,C" {
		t.Fatalf("expected B removed; got %s", got)
	}
	if m.drag.active {
		t.Fatalf("expected control click not to start a drag")
	}

	m = apply(t, m, press(edit.x0+1, listTop))
	if m.state.EditingID != "1000" || m.focus != focusEdit {
		t.Fatalf("expected edit on A; got id=%q focus=%v", m.state.EditingID, m.focus)
	}
	m = apply(t, m, keyRunes("!"))

	save := rowControls(m.list.Width(), true)[0]
	m = apply(t, m, press(save.x0, listTop))
	if got := taskTexts(m)[0]; got != "A!" {
		t.Fatalf("expected saved text; got %q", got)
	}
	if m.state.Editing() {
		t.Fatalf("expected session closed")
	}
}

func TestMouse_AddButton(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, keyRunes("Call mom"))
	_, add := addRowLayout(m.contentWidth())
	m = apply(t, m, press(add.x0, addRowY))
	if got := taskTexts(m); len(got) != 1 || got[0] != "Call mom" {
		t.Fatalf("expected task added by button; got %v", got)
	}

	m = apply(t, m, press(add.x0, addRowY))
	if m.state.Len() != 1 {
		t.Fatalf("expected blank add ignored; got %v", taskTexts(m))
	}
}

func TestMouse_IgnoredDuringKeyboardDrag(t *testing.T) {
	m := newTestModel(t, "A", "B")
	m = apply(t, m, keyType(tea.KeyTab), keySpace, press(2, listTop+1), release(2, listTop+1))
	if !m.drag.active || m.drag.via != dragViaKeyboard {
		t.Fatalf("expected keyboard drag to continue; got %+v", m.drag)
	}
}

func TestMouse_PressDuringDragCancelsIt(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")
	remove := rowControls(m.list.Width(), false)[1]

	m = apply(t, m, press(2, listTop), motion(2, listTop+2))
	if it, ok := m.list.Items()[0].(taskItem); !ok || it.task.Text != "B" {
		t.Fatalf("expected preview to show B first; got %v", m.list.Items()[0])
	}

	m = apply(t, m, press(remove.x0, listTop))
	if m.drag.active {
		t.Fatalf("expected second press to cancel the drag")
	}
	if got := strings.Join(taskTexts(m), ","); got != "A,B,C" {
		t.Fatalf("expected nothing removed or moved; got %s", got)
	}

	m = apply(t, m, release(2, listTop+1))
	if got := strings.Join(taskTexts(m), ","); got != "A,B,C" {
		t.Fatalf("expected stray release to be ignored; got %s", got)
	}
}

func TestRemoveDraggedTaskCancelsDrag(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")
	if !m.beginDrag(0, dragViaMouse) {
		t.Fatalf("expected drag to start")
	}
	m.dragOver(2)
	m.removeTask("1000")
	if m.drag.active {
		t.Fatalf("expected drag cancelled with its task gone")
	}
	if got := strings.Join(taskTexts(m), ","); got != "B,C" {
		t.Fatalf("expected only A removed; got %s", got)
	}

	m = apply(t, m, release(2, listTop+1))
	if got := strings.Join(taskTexts(m), ","); got != "B,C" {
		t.Fatalf("expected release after removal to be ignored; got %s", got)
	}
}
