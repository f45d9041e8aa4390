package tui

type focus int

const (
	focusAdd focus = iota
	focusList
	focusEdit
)

func (f focus) String() string {
	switch f {
	case focusAdd:
		return "add"
	case focusList:
		return "list"
	case focusEdit:
		return "edit"
	default:
		return "unknown"
	}
}

type dragVia int

const (
	dragViaMouse dragVia = iota + 1
	dragViaKeyboard
)

func (v dragVia) String() string {
	switch v {
	case dragViaMouse:
		return "mouse"
	case dragViaKeyboard:
		return "keyboard"
	default:
		return "none"
	}
}

// dragState tracks one drag gesture from pick-up to release.
type dragState struct {
	active bool
	via    dragVia
	taskID string
	source int
	// dest is the hovered drop index; only meaningful while overTarget.
	dest       int
	overTarget bool
}
