package tasks

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"todolist/internal/model"
)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func texts(ts []model.Task) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Text)
	}
	return out
}

func ids(ts []model.Task) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func seeded(t *testing.T, n int) *State {
	t.Helper()
	s := NewStateWithClock(fixedClock(1000))
	for i := 0; i < n; i++ {
		if _, ok := s.Add(string(rune('A' + i))); !ok {
			t.Fatalf("seed add %d failed", i)
		}
	}
	return s
}

func TestAdd_AppendsUntrimmedTextAndClearsDraft(t *testing.T) {
	s := NewStateWithClock(fixedClock(1700000000000))
	for _, in := range []string{"Buy milk", "  padded  ", "x"} {
		before := s.Len()
		s.NewTask = in
		got, ok := s.Add(s.NewTask)
		if !ok {
			t.Fatalf("expected add of %q to succeed", in)
		}
		if s.Len() != before+1 {
			t.Fatalf("expected len %d; got %d", before+1, s.Len())
		}
		if last := s.Tasks[s.Len()-1]; last.Text != in || last != got {
			t.Fatalf("expected last task text %q; got %+v", in, last)
		}
		if s.NewTask != "" {
			t.Fatalf("expected draft cleared; got %q", s.NewTask)
		}
	}
}

func TestAdd_BlankIsNoOp(t *testing.T) {
	s := seeded(t, 2)
	before := append([]model.Task(nil), s.Tasks...)
	for _, in := range []string{"", "   ", "\t\n"} {
		s.NewTask = in
		if _, ok := s.Add(in); ok {
			t.Fatalf("expected add of %q to be ignored", in)
		}
		if !reflect.DeepEqual(s.Tasks, before) {
			t.Fatalf("expected list unchanged after %q; got %+v", in, s.Tasks)
		}
		if s.NewTask != in {
			t.Fatalf("expected draft kept on no-op; got %q", s.NewTask)
		}
	}
}

func TestAdd_IDsAreTimestampsAndUnique(t *testing.T) {
	s := NewStateWithClock(fixedClock(42))
	for i := 0; i < 5; i++ {
		s.Add("same millisecond")
	}
	want := []string{"42", "43", "44", "45", "46"}
	if got := ids(s.Tasks); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected ids %v; got %v", want, got)
	}

	// A later clock reading that lands on a used id must still be bumped.
	s.now = fixedClock(44)
	tk, _ := s.Add("late")
	if tk.ID != "47" {
		t.Fatalf("expected bumped id 47; got %q", tk.ID)
	}
}

func TestRemove(t *testing.T) {
	s := seeded(t, 3)
	id := s.Tasks[1].ID
	if !s.Remove(id) {
		t.Fatalf("expected remove to succeed")
	}
	if s.Len() != 2 || s.Index(id) >= 0 {
		t.Fatalf("expected %q gone; got %+v", id, s.Tasks)
	}
	if got := strings.Join(texts(s.Tasks), ","); got != "A,C" {
		t.Fatalf("expected A,C; got %s", got)
	}

	before := append([]model.Task(nil), s.Tasks...)
	if s.Remove("nope") {
		t.Fatalf("expected unknown id to be a no-op")
	}
	if !reflect.DeepEqual(s.Tasks, before) {
		t.Fatalf("expected list unchanged; got %+v", s.Tasks)
	}
}

func TestRemove_TaskUnderEditClosesSession(t *testing.T) {
	s := seeded(t, 2)
	id := s.Tasks[0].ID
	s.BeginEdit(id)
	s.EditedText = "draft"
	s.Remove(id)
	if s.Editing() || s.EditedText != "" {
		t.Fatalf("expected edit session closed; got id=%q text=%q", s.EditingID, s.EditedText)
	}

	// Removing another task keeps the session.
	other := s.Tasks[0].ID
	s.Add("Z")
	s.BeginEdit(other)
	s.Remove(s.Tasks[1].ID)
	if s.EditingID != other {
		t.Fatalf("expected session on %q to survive; got %q", other, s.EditingID)
	}
}

func TestBeginEdit(t *testing.T) {
	s := seeded(t, 2)
	if s.BeginEdit("missing") {
		t.Fatalf("expected unknown id to be ignored")
	}
	if s.Editing() {
		t.Fatalf("expected no session")
	}
	id := s.Tasks[1].ID
	if !s.BeginEdit(id) {
		t.Fatalf("expected begin edit to succeed")
	}
	if s.EditingID != id || s.EditedText != "B" {
		t.Fatalf("expected session on %q seeded with B; got %q/%q", id, s.EditingID, s.EditedText)
	}
	// Switching to another task replaces the session.
	s.BeginEdit(s.Tasks[0].ID)
	if s.EditingID != s.Tasks[0].ID || s.EditedText != "A" {
		t.Fatalf("expected session moved to first task; got %q/%q", s.EditingID, s.EditedText)
	}
}

func TestSaveEdit_ChangesOnlyTargetText(t *testing.T) {
	s := seeded(t, 3)
	before := append([]model.Task(nil), s.Tasks...)
	id := s.Tasks[1].ID
	s.BeginEdit(id)
	s.EditedText = "  new text "
	if !s.SaveEdit() {
		t.Fatalf("expected save to succeed")
	}
	if s.Editing() || s.EditedText != "" {
		t.Fatalf("expected session cleared")
	}
	for i := range before {
		want := before[i]
		if i == 1 {
			want.Text = "  new text "
		}
		if s.Tasks[i] != want {
			t.Fatalf("task %d: expected %+v; got %+v", i, want, s.Tasks[i])
		}
	}
}

func TestSaveEdit_BlankKeepsSessionOpen(t *testing.T) {
	s := seeded(t, 1)
	id := s.Tasks[0].ID
	s.BeginEdit(id)
	s.EditedText = "   "
	if s.SaveEdit() {
		t.Fatalf("expected blank save to be blocked")
	}
	if s.EditingID != id || s.EditedText != "   " {
		t.Fatalf("expected session kept; got %q/%q", s.EditingID, s.EditedText)
	}
	if s.Tasks[0].Text != "A" {
		t.Fatalf("expected text unchanged; got %q", s.Tasks[0].Text)
	}
	if !s.CancelEdit() || s.Editing() {
		t.Fatalf("expected cancel to close the session")
	}
	if s.CancelEdit() {
		t.Fatalf("expected second cancel to be a no-op")
	}
}

func TestSaveEdit_WithoutSessionIsNoOp(t *testing.T) {
	s := seeded(t, 1)
	s.EditedText = "orphan"
	if s.SaveEdit() {
		t.Fatalf("expected no-op without session")
	}
	if s.Tasks[0].Text != "A" {
		t.Fatalf("expected text unchanged")
	}
}

func TestSaveEdit_UnchangedBufferLeavesListAsIs(t *testing.T) {
	s := NewStateWithClock(fixedClock(5))
	tk, _ := s.Add("Task A")
	before := append([]model.Task(nil), s.Tasks...)
	s.BeginEdit(tk.ID)
	if !s.SaveEdit() {
		t.Fatalf("expected save to succeed")
	}
	if !reflect.DeepEqual(s.Tasks, before) {
		t.Fatalf("expected list unchanged; got %+v", s.Tasks)
	}
	if s.Editing() {
		t.Fatalf("expected session cleared")
	}
}

func TestCancelEdit(t *testing.T) {
	s := seeded(t, 2)
	if s.CancelEdit() {
		t.Fatalf("expected cancel without session to be a no-op")
	}
	s.BeginEdit(s.Tasks[0].ID)
	s.EditedText = "changed"
	if !s.CancelEdit() {
		t.Fatalf("expected cancel to close the session")
	}
	if s.Editing() || s.EditedText != "" {
		t.Fatalf("expected cleared session; got %q/%q", s.EditingID, s.EditedText)
	}
	if got := texts(s.Tasks); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("expected list untouched; got %v", got)
	}
}

func TestReorder_AllPairs(t *testing.T) {
	const n = 5
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := seeded(t, n)
			orig := append([]model.Task(nil), s.Tasks...)
			s.Reorder(DropAt(i, j))

			if s.Len() != n {
				t.Fatalf("%d->%d: expected len %d; got %d", i, j, n, s.Len())
			}
			if s.Tasks[j] != orig[i] {
				t.Fatalf("%d->%d: expected %+v at %d; got %+v", i, j, orig[i], j, s.Tasks[j])
			}
			var rest, restOrig []string
			for k, tk := range s.Tasks {
				if k != j {
					rest = append(rest, tk.ID)
				}
			}
			for k, tk := range orig {
				if k != i {
					restOrig = append(restOrig, tk.ID)
				}
			}
			if !reflect.DeepEqual(rest, restOrig) {
				t.Fatalf("%d->%d: expected others in order %v; got %v", i, j, restOrig, rest)
			}
		}
	}
}

func TestReorder_NoDestinationOrOutOfRange(t *testing.T) {
	s := seeded(t, 3)
	before := append([]model.Task(nil), s.Tasks...)
	for _, r := range []DropResult{DropNowhere(0), DropAt(-1, 1), DropAt(0, 3), DropAt(3, 0), DropAt(1, 1)} {
		if s.Reorder(r) {
			t.Fatalf("expected %v to be a no-op", r)
		}
		if !reflect.DeepEqual(s.Tasks, before) {
			t.Fatalf("expected list unchanged after %v; got %+v", r, s.Tasks)
		}
	}
}

func TestPreview_DoesNotMutate(t *testing.T) {
	s := seeded(t, 3)
	got := s.Preview(DropAt(0, 2))
	if strings.Join(texts(got), ",") != "B,C,A" {
		t.Fatalf("expected preview B,C,A; got %v", texts(got))
	}
	if strings.Join(texts(s.Tasks), ",") != "A,B,C" {
		t.Fatalf("expected state untouched; got %v", texts(s.Tasks))
	}
	if strings.Join(texts(s.Preview(DropNowhere(0))), ",") != "A,B,C" {
		t.Fatalf("expected preview without destination to keep order")
	}
}

func TestScenario_AddReorderRemove(t *testing.T) {
	s := NewState()
	s.Add("Buy milk")
	s.Add("Walk dog")
	if got := texts(s.Tasks); !reflect.DeepEqual(got, []string{"Buy milk", "Walk dog"}) {
		t.Fatalf("expected [Buy milk Walk dog]; got %v", got)
	}
	s.Reorder(DropAt(0, 1))
	if got := texts(s.Tasks); !reflect.DeepEqual(got, []string{"Walk dog", "Buy milk"}) {
		t.Fatalf("expected [Walk dog Buy milk]; got %v", got)
	}
	s.Remove(s.Tasks[0].ID)
	if got := texts(s.Tasks); !reflect.DeepEqual(got, []string{"Buy milk"}) {
		t.Fatalf("expected [Buy milk]; got %v", got)
	}
}

func TestDropResult_String(t *testing.T) {
	if got := DropAt(1, 3).String(); got != "1->3" {
		t.Fatalf("expected 1->3; got %q", got)
	}
	if got := DropNowhere(2).String(); got != "2->none" {
		t.Fatalf("expected 2->none; got %q", got)
	}
	if DropNowhere(0).Dropped() || !DropAt(0, 0).Dropped() {
		t.Fatalf("unexpected Dropped() result")
	}
}
