package model

// Task is a single to-do entry.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
