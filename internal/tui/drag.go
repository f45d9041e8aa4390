package tui

import (
	"todolist/internal/tasks"
)

// Drag controller: turns pointer or keyboard gestures into a tasks.DropResult.
// Indices handed to the list state are always clamped to the current list.

func (m *appModel) beginDrag(index int, via dragVia) bool {
	if m.drag.active || index < 0 || index >= m.state.Len() {
		return false
	}
	t := m.state.Tasks[index]
	if t.ID == m.state.EditingID {
		return false
	}
	m.drag = dragState{
		active:     true,
		via:        via,
		taskID:     t.ID,
		source:     index,
		dest:       index,
		overTarget: true,
	}
	m.log.Debug("drag_start", "id", t.ID, "from", index, "via", via)
	m.refreshRows()
	return true
}

// dragOver marks index as the current drop target.
func (m *appModel) dragOver(index int) {
	if !m.drag.active {
		return
	}
	index = clampInt(index, 0, m.state.Len()-1)
	if m.drag.overTarget && m.drag.dest == index {
		return
	}
	m.drag.dest = index
	m.drag.overTarget = true
	m.refreshRows()
}

// dragLeave records that the pointer is outside every drop target.
func (m *appModel) dragLeave() {
	if !m.drag.active || !m.drag.overTarget {
		return
	}
	m.drag.overTarget = false
	m.refreshRows()
}

func (m appModel) dropResult() tasks.DropResult {
	if !m.drag.overTarget {
		return tasks.DropNowhere(m.drag.source)
	}
	return tasks.DropAt(m.drag.source, m.drag.dest)
}

// endDrag releases the dragged row. With cancel set, or outside a target, the
// result carries no destination and the list is left as it was.
func (m *appModel) endDrag(cancel bool) bool {
	if !m.drag.active {
		return false
	}
	res := m.dropResult()
	if cancel {
		res = tasks.DropNowhere(m.drag.source)
	}
	id := m.drag.taskID
	m.drag = dragState{}

	ok := m.state.Reorder(res)
	m.log.Debug("drag_end", "id", id, "result", res.String(), "ok", ok)
	m.refreshRows()
	m.selectTask(id)
	return ok
}
