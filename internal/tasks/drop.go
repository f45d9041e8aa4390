package tasks

import "fmt"

// DropResult describes the end of a drag gesture.
// Destination is nil when the row was released outside a valid drop target.
type DropResult struct {
	Source      int
	Destination *int
}

// DropAt is a drag released on a valid target.
func DropAt(source, destination int) DropResult {
	return DropResult{Source: source, Destination: &destination}
}

// DropNowhere is a drag released outside any drop target.
func DropNowhere(source int) DropResult {
	return DropResult{Source: source}
}

// Dropped reports whether the gesture ended on a target.
func (r DropResult) Dropped() bool { return r.Destination != nil }

func (r DropResult) valid(n int) (int, bool) {
	if r.Destination == nil {
		return 0, false
	}
	to := *r.Destination
	if r.Source < 0 || r.Source >= n || to < 0 || to >= n {
		return 0, false
	}
	return to, true
}

func (r DropResult) String() string {
	if r.Destination == nil {
		return fmt.Sprintf("%d->none", r.Source)
	}
	return fmt.Sprintf("%d->%d", r.Source, *r.Destination)
}
