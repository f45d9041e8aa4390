package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// The handlers below are the only places the list state is mutated from the UI.

func (m *appModel) addTask() {
	t, ok := m.state.Add(m.state.NewTask)
	m.log.Debug("add", "id", t.ID, "ok", ok)
	if !ok {
		return
	}
	m.addInput.SetValue(m.state.NewTask)
	m.refreshRows()
	m.selectTask(t.ID)
}

func (m *appModel) removeTask(id string) {
	if m.drag.active && m.drag.taskID == id {
		m.endDrag(true)
	}
	wasEditing := m.state.EditingID == id
	ok := m.state.Remove(id)
	m.log.Debug("remove", "id", id, "ok", ok, "edit_closed", ok && wasEditing)
	if !ok {
		return
	}
	if !m.state.Editing() && m.focus == focusEdit {
		m.leaveEdit()
	}
	m.refreshRows()
}

func (m *appModel) beginEdit(id string) tea.Cmd {
	ok := m.state.BeginEdit(id)
	m.log.Debug("begin_edit", "id", id, "ok", ok)
	if !ok {
		return nil
	}
	m.editInput.SetValue(m.state.EditedText)
	m.editInput.CursorEnd()
	m.addInput.Blur()
	m.focus = focusEdit
	m.refreshRows()
	return m.editInput.Focus()
}

func (m *appModel) saveEdit() {
	id := m.state.EditingID
	ok := m.state.SaveEdit()
	m.log.Debug("save_edit", "id", id, "ok", ok)
	if !ok {
		return
	}
	m.leaveEdit()
	m.refreshRows()
}

func (m *appModel) cancelEdit() {
	id := m.state.EditingID
	ok := m.state.CancelEdit()
	m.log.Debug("cancel_edit", "id", id, "ok", ok)
	m.leaveEdit()
	m.refreshRows()
}

func (m *appModel) leaveEdit() {
	m.editInput.Blur()
	m.editInput.SetValue("")
	m.focus = focusList
}

func (m *appModel) focusAddField() tea.Cmd {
	m.focus = focusAdd
	return m.addInput.Focus()
}

func (m *appModel) focusListPane() {
	m.addInput.Blur()
	m.focus = focusList
}

func (m *appModel) focusEditField() tea.Cmd {
	if !m.state.Editing() {
		return nil
	}
	m.addInput.Blur()
	m.focus = focusEdit
	return m.editInput.Focus()
}
