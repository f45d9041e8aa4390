// Package tasks holds the in-memory to-do list and the operations that mutate it.
//
// Every operation is a silent no-op on degenerate input (blank text, unknown id,
// missing drop target). The boolean results only report whether anything changed.
package tasks

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"todolist/internal/model"
)

// State is the complete application state of the list view.
type State struct {
	Tasks []model.Task

	// NewTask is the draft bound to the "add" field.
	NewTask string

	// EditingID is the id of the task being edited ("" when no edit session is open).
	EditingID string
	// EditedText is the edit session's scratch buffer.
	EditedText string

	now func() time.Time
}

// NewState returns an empty list using the wall clock for ids.
func NewState() *State {
	return &State{}
}

// NewStateWithClock returns an empty list whose ids are derived from now.
func NewStateWithClock(now func() time.Time) *State {
	return &State{now: now}
}

func (s *State) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Len returns the number of tasks.
func (s *State) Len() int { return len(s.Tasks) }

// Index returns the position of the task with id, or -1.
func (s *State) Index(id string) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the task with id.
func (s *State) Find(id string) (model.Task, bool) {
	i := s.Index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.Tasks[i], true
}

// Editing reports whether an edit session is open.
func (s *State) Editing() bool { return s.EditingID != "" }

// nextID derives an id from the current timestamp in milliseconds, bumping it
// until it no longer collides with a task in the list.
func (s *State) nextID() string {
	ts := s.clock().UnixMilli()
	id := strconv.FormatInt(ts, 10)
	for s.Index(id) >= 0 {
		ts++
		id = strconv.FormatInt(ts, 10)
	}
	return id
}

// Add appends a task holding text (stored untrimmed) and clears the add draft.
// Blank text is ignored.
func (s *State) Add(text string) (model.Task, bool) {
	if strings.TrimSpace(text) == "" {
		return model.Task{}, false
	}
	t := model.Task{ID: s.nextID(), Text: text}
	s.Tasks = append(s.Tasks, t)
	s.NewTask = ""
	return t, true
}

// Remove drops the task with id. Removing the task under edit closes the edit session.
func (s *State) Remove(id string) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.Tasks = slices.Delete(slices.Clone(s.Tasks), i, i+1)
	if s.EditingID == id {
		s.EditingID = ""
		s.EditedText = ""
	}
	return true
}

// BeginEdit opens an edit session for id, seeding the scratch buffer with its text.
// An already open session on another task is replaced.
func (s *State) BeginEdit(id string) bool {
	t, ok := s.Find(id)
	if !ok {
		return false
	}
	s.EditingID = t.ID
	s.EditedText = t.Text
	return true
}

// SaveEdit writes the scratch buffer back to the task under edit and closes the session.
// A blank buffer leaves both the list and the session untouched.
func (s *State) SaveEdit() bool {
	if s.EditingID == "" || strings.TrimSpace(s.EditedText) == "" {
		return false
	}
	i := s.Index(s.EditingID)
	if i < 0 {
		s.EditingID = ""
		s.EditedText = ""
		return false
	}
	next := slices.Clone(s.Tasks)
	next[i].Text = s.EditedText
	s.Tasks = next
	s.EditingID = ""
	s.EditedText = ""
	return true
}

// CancelEdit closes the edit session without touching the list.
func (s *State) CancelEdit() bool {
	if s.EditingID == "" {
		return false
	}
	s.EditingID = ""
	s.EditedText = ""
	return true
}

// Reorder applies a finished drag. A result without destination leaves the list as is.
func (s *State) Reorder(r DropResult) bool {
	to, ok := r.valid(len(s.Tasks))
	if !ok || to == r.Source {
		return false
	}
	s.Tasks = move(s.Tasks, r.Source, to)
	return true
}

// Preview returns the order the list would have if r were dropped now.
// The state itself is not modified.
func (s *State) Preview(r DropResult) []model.Task {
	to, ok := r.valid(len(s.Tasks))
	if !ok {
		return slices.Clone(s.Tasks)
	}
	return move(s.Tasks, r.Source, to)
}

func move(in []model.Task, from, to int) []model.Task {
	out := slices.Clone(in)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, moved)
}
