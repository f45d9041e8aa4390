package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			if m.drag.active {
				m.endDrag(true)
			}
			return m, tea.Quit
		}
		if m.drag.active {
			return m.updateDragKey(msg)
		}
		switch m.focus {
		case focusAdd:
			return m.updateAddKey(msg)
		case focusEdit:
			return m.updateEditKey(msg)
		default:
			return m.updateListKey(msg)
		}
	}

	// Cursor blink and other input-internal messages go to the focused field.
	var cmd tea.Cmd
	switch m.focus {
	case focusAdd:
		m.addInput, cmd = m.addInput.Update(msg)
	case focusEdit:
		m.editInput, cmd = m.editInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.addTask()
		return m, nil
	case key.Matches(msg, m.keys.ToList), key.Matches(msg, m.keys.LeaveField):
		m.focusListPane()
		return m, nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	m.state.NewTask = m.addInput.Value()
	return m, cmd
}

func (m appModel) updateEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.saveEdit()
		return m, nil
	case key.Matches(msg, m.keys.StopEdit):
		m.cancelEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.state.EditedText = m.editInput.Value()
	return m, cmd
}

func (m appModel) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToAdd):
		return m, m.focusAddField()
	case key.Matches(msg, m.keys.Edit):
		return m, m.beginEdit(m.selectedID())
	case key.Matches(msg, m.keys.Remove):
		m.removeTask(m.selectedID())
		return m, nil
	case key.Matches(msg, m.keys.Grab):
		m.beginDrag(m.list.Index(), dragViaKeyboard)
		return m, nil
	}

	// Navigation (up/down, paging) is handled by the list.
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateDragKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.drag.via != dragViaKeyboard {
		// A pointer drag only ends on release; esc abandons it.
		if key.Matches(msg, m.keys.Cancel) {
			m.endDrag(true)
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.dragOver(m.drag.dest - 1)
	case key.Matches(msg, m.keys.Down):
		m.dragOver(m.drag.dest + 1)
	case key.Matches(msg, m.keys.Drop):
		m.endDrag(false)
	case key.Matches(msg, m.keys.Cancel):
		m.endDrag(true)
	}
	return m, nil
}
