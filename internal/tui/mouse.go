package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.drag.active && m.drag.via == dragViaKeyboard {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.CursorUp()
			return m, nil
		case tea.MouseButtonWheelDown:
			m.list.CursorDown()
			return m, nil
		case tea.MouseButtonLeft:
			cmd := m.mousePress(msg.X, msg.Y)
			return m, cmd
		}

	case tea.MouseActionMotion:
		if m.drag.active {
			m.mouseDragTo(msg.Y)
		}

	case tea.MouseActionRelease:
		if m.drag.active {
			m.mouseDragTo(msg.Y)
			m.endDrag(false)
		}
	}
	return m, nil
}

func (m *appModel) mousePress(x, y int) tea.Cmd {
	// Rows show the preview order while dragging; a second press cancels the drag.
	if m.drag.active {
		m.endDrag(true)
		return nil
	}
	if y == addRowY {
		inputW, add := addRowLayout(m.contentWidth())
		switch {
		case add.contains(x):
			m.addTask()
			return m.focusAddField()
		case x < inputW:
			return m.focusAddField()
		}
		return nil
	}

	idx, ok := m.rowAt(y)
	if !ok || idx >= m.state.Len() {
		return nil
	}
	t := m.state.Tasks[idx]
	m.list.Select(idx)
	editing := t.ID == m.state.EditingID

	switch controlAt(rowControls(m.list.Width(), editing), x) {
	case controlEdit:
		return m.beginEdit(t.ID)
	case controlRemove:
		m.removeTask(t.ID)
		return nil
	case controlSave:
		m.saveEdit()
		return nil
	}

	if editing {
		return m.focusEditField()
	}
	if m.focus != focusEdit {
		m.focusListPane()
	}
	m.beginDrag(idx, dragViaMouse)
	return nil
}

// mouseDragTo updates the drop target for a pointer at row y. Empty space below
// the last row targets the end of the list; anywhere outside the list has no target.
func (m *appModel) mouseDragTo(y int) {
	if idx, ok := m.rowAt(y); ok {
		m.dragOver(idx)
		return
	}
	if m.inListArea(y) {
		m.dragOver(m.state.Len() - 1)
		return
	}
	m.dragLeave()
}

func (m appModel) inListArea(y int) bool {
	return y >= listTop && y < listTop+m.list.Height()
}

// rowAt maps a screen row to the index of the task rendered there.
func (m appModel) rowAt(y int) (int, bool) {
	if !m.inListArea(y) {
		return 0, false
	}
	rel := y - listTop
	per := m.delegate.Height() + m.delegate.Spacing()
	if rel%per >= m.delegate.Height() {
		return 0, false
	}
	slot := rel / per
	n := len(m.list.Items())
	if slot >= m.list.Paginator.ItemsOnPage(n) {
		return 0, false
	}
	idx := m.list.Paginator.Page*m.list.Paginator.PerPage + slot
	if idx >= n {
		return 0, false
	}
	return idx, true
}
