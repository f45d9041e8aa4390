package tui

import (
	"strings"
)

const headingText = "My Todo List"

func (m appModel) View() string {
	w := m.contentWidth()

	// The delegate reads this while the list renders below.
	*m.frame = rowFrame{
		editingID:   m.state.EditingID,
		editView:    m.editInput.View(),
		draggingID:  m.drag.taskID,
		listFocused: m.focus == focusList || m.drag.active,
	}

	heading := normalizePane(styleHeading().Render(headingText), w, 1)

	inputW, add := addRowLayout(w)
	addRow := renderInputLine(inputW, m.addInput.View()) +
		strings.Repeat(" ", add.x0-inputW) +
		styleButton(colorAddBg).Render(add.label)

	body := normalizePane(m.list.View(), w, m.list.Height())
	footer := m.help.ShortHelpView(m.keys.help(m.focus, m.drag.active))

	lines := []string{heading, "", addRow, "", body, "", footer}
	return strings.Join(lines, "\n")
}
