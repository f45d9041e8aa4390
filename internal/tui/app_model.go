package tui

import (
	"todolist/internal/logging"
	"todolist/internal/tasks"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type appModel struct {
	state *tasks.State
	log   *log.Logger

	width  int
	height int

	focus focus

	addInput  textinput.Model
	editInput textinput.Model

	list     list.Model
	delegate taskDelegate
	frame    *rowFrame

	drag dragState

	keys keyMap
	help help.Model
}

func newAppModel(st *tasks.State, logger *log.Logger) appModel {
	if st == nil {
		st = tasks.NewState()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	m := appModel{
		state: st,
		log:   logger,
		focus: focusAdd,
		frame: &rowFrame{},
		keys:  defaultKeyMap(),
		help:  help.New(),
	}

	m.addInput = textinput.New()
	m.addInput.Prompt = ""
	m.addInput.Placeholder = "Add a new task"
	m.addInput.CharLimit = 0
	m.addInput.SetValue(st.NewTask)
	m.addInput.Focus()

	m.editInput = textinput.New()
	m.editInput.Prompt = ""
	m.editInput.CharLimit = 0

	m.delegate = newTaskDelegate(m.frame)
	m.list = list.New([]list.Item{}, m.delegate, 0, 0)
	m.list.SetShowTitle(false)
	m.list.SetShowStatusBar(false)
	m.list.SetShowHelp(false)
	m.list.SetFilteringEnabled(false)
	m.list.SetShowFilter(false)
	m.list.DisableQuitKeybindings()
	m.list.SetStatusBarItemName("task", "tasks")
	m.list.Styles.NoItems = styleMuted()

	m.width = defaultWidth
	m.height = defaultHeight
	m.resize()
	m.refreshRows()
	return m
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) contentWidth() int {
	w := m.width
	if w > maxContentW {
		w = maxContentW
	}
	if w < minContentW {
		w = minContentW
	}
	return w
}

func (m *appModel) resize() {
	w := m.contentWidth()
	h := m.height - listTop - footerLines
	if h < minListH {
		h = minListH
	}
	m.list.SetSize(w, h)
	m.help.Width = w

	inputW, _ := addRowLayout(w)
	// Leave room for the padding and cursor cell drawn by renderInputLine.
	m.addInput.Width = inputW - 3
	m.editInput.Width = rowTextWidth(w, true) - 1
}

// refreshRows rebuilds the list items from state (or the drag preview) and
// keeps the selection on the same task when possible.
func (m *appModel) refreshRows() {
	curID := m.selectedID()
	if m.drag.active {
		curID = m.drag.taskID
	}

	ts := m.state.Tasks
	if m.drag.active {
		ts = m.state.Preview(m.dropResult())
	}
	items := make([]list.Item, 0, len(ts))
	for _, t := range ts {
		items = append(items, taskItem{task: t})
	}
	m.list.SetItems(items)

	if curID != "" && m.selectTask(curID) {
		return
	}
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

func (m appModel) selectedID() string {
	if it, ok := m.list.SelectedItem().(taskItem); ok {
		return it.task.ID
	}
	return ""
}

func (m *appModel) selectTask(id string) bool {
	for i, it := range m.list.Items() {
		if ti, ok := it.(taskItem); ok && ti.task.ID == id {
			m.list.Select(i)
			return true
		}
	}
	return false
}
