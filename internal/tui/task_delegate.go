package tui

import (
	"fmt"
	"io"
	"strings"

	"todolist/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Text }
func (i taskItem) Title() string       { return i.task.Text }

// rowFrame is the per-frame input the delegate renders from. View fills it in
// before rendering the list.
type rowFrame struct {
	editingID   string
	editView    string
	draggingID  string
	listFocused bool
}

type taskDelegate struct {
	frame *rowFrame

	normal   lipgloss.Style
	selected lipgloss.Style
	dragging lipgloss.Style
	handle   lipgloss.Style
}

func newTaskDelegate(frame *rowFrame) taskDelegate {
	return taskDelegate{
		frame:  frame,
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		dragging: lipgloss.NewStyle().
			Foreground(colorDragFg).
			Background(colorDragBg).
			Bold(true),
		handle: styleMuted(),
	}
}

func (d taskDelegate) Height() int  { return 1 }
func (d taskDelegate) Spacing() int { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	width := m.Width()
	if width < 4 {
		fmt.Fprint(w, "")
		return
	}

	var fr rowFrame
	if d.frame != nil {
		fr = *d.frame
	}
	editing := fr.editingID != "" && fr.editingID == it.task.ID
	isDragging := fr.draggingID != "" && fr.draggingID == it.task.ID

	style := d.normal
	switch {
	case isDragging:
		style = d.dragging
	case fr.listFocused && fr.draggingID == "" && index == m.Index():
		style = d.selected
	}

	textW := rowTextWidth(width, editing)
	var left string
	if editing {
		left = fitWidth(singleLine(fr.editView), textW)
	} else {
		handle := glyphHandle()
		handleStyle := d.handle
		if isDragging {
			handle = glyphDragging()
			handleStyle = style
		}
		text := fitWidth(singleLine(it.task.Text), textW-2)
		left = handleStyle.Inherit(style).Render(handle) + style.Render(" "+text)
	}

	var b strings.Builder
	b.WriteString(left)
	spans := rowControls(width, editing)
	for _, s := range spans {
		b.WriteString(style.Render(strings.Repeat(" ", controlGap)))
		b.WriteString(d.controlStyle(s.control).Render(s.label))
	}
	fmt.Fprint(w, b.String())
}

func (d taskDelegate) controlStyle(c control) lipgloss.Style {
	switch c {
	case controlEdit:
		return styleButton(colorEditBg)
	case controlRemove:
		return styleButton(colorRemoveBg)
	case controlSave, controlAdd:
		return styleButton(colorAddBg)
	default:
		return d.normal
	}
}
