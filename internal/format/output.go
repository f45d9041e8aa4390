package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"todolist/internal/model"
)

// ErrUnknownFormat is returned for output formats other than json and edn.
var ErrUnknownFormat = errors.New("unknown format")

// Normalize validates an output format name. The empty string means json.
func Normalize(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", "json":
		return "json", nil
	case "edn":
		return "edn", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// TaskList is the document written by --print.
type TaskList struct {
	Count int          `json:"count"`
	Tasks []model.Task `json:"tasks"`
}

// NewTaskList wraps ts, keeping an empty list as [] rather than null.
func NewTaskList(ts []model.Task) TaskList {
	if ts == nil {
		ts = []model.Task{}
	}
	return TaskList{Count: len(ts), Tasks: ts}
}

// WriteTasks writes the task list in the requested format.
//
// Supported formats:
// - json (default)
// - edn
func WriteTasks(w io.Writer, ts []model.Task, format string, pretty bool) error {
	f, err := Normalize(format)
	if err != nil {
		return err
	}
	doc := NewTaskList(ts)
	if f == "edn" {
		return WriteEDN(w, doc, pretty)
	}
	return WriteJSON(w, doc, pretty)
}

// WriteJSON writes strict JSON followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
