package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding

	// Add field.
	Submit     key.Binding
	ToList     key.Binding
	LeaveField key.Binding

	// List.
	Up       key.Binding
	Down     key.Binding
	ToAdd    key.Binding
	Edit     key.Binding
	Remove   key.Binding
	Grab     key.Binding
	Drop     key.Binding
	Cancel   key.Binding
	Save     key.Binding
	StopEdit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		ToList:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "list")),
		LeaveField: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		ToAdd:  key.NewBinding(key.WithKeys("tab", "a", "i"), key.WithHelp("a", "new task")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Remove: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "remove")),
		Grab:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "move")),
		Drop:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Save:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		StopEdit: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// help returns the bindings shown in the footer for the current interaction.
func (k keyMap) help(f focus, dragging bool) []key.Binding {
	if dragging {
		return []key.Binding{k.Up, k.Down, k.Drop, k.Cancel}
	}
	switch f {
	case focusAdd:
		return []key.Binding{k.Submit, k.ToList, k.ForceQuit}
	case focusEdit:
		return []key.Binding{k.Save, k.StopEdit, k.ForceQuit}
	default:
		return []key.Binding{k.Up, k.Down, k.ToAdd, k.Edit, k.Remove, k.Grab, k.Quit}
	}
}
