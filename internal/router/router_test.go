package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tlevesque/amfprep/internal/screen"
)

// stubScreen is a minimal screen.Screen for router tests.
type stubScreen struct {
	name string
}

func (s *stubScreen) Init() tea.Cmd                             { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd)   { return s, nil }
func (s *stubScreen) View(int, int) string                      { return s.name }
func (s *stubScreen) Title() string                             { return s.name }

func TestPushPop(t *testing.T) {
	r := New(&stubScreen{name: "first"})
	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	r.Push(&stubScreen{name: "second"})
	if r.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("Active = %s, want second", r.Active().Title())
	}

	r.Pop()
	if r.Active().Title() != "first" {
		t.Errorf("Active after pop = %s, want first", r.Active().Title())
	}

	// The last screen cannot be popped.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth after popping last = %d, want 1", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{name: "first"})
	r.Replace(&stubScreen{name: "swapped"})

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "swapped" {
		t.Errorf("Active = %s, want swapped", r.Active().Title())
	}
}

func TestUpdateNavigationMessages(t *testing.T) {
	r := New(&stubScreen{name: "first"})

	r.Update(PushScreenMsg{Screen: &stubScreen{name: "second"}})
	if r.Active().Title() != "second" {
		t.Fatalf("Active = %s, want second", r.Active().Title())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{name: "third"}})
	if r.Depth() != 2 || r.Active().Title() != "third" {
		t.Fatalf("Depth=%d Active=%s, want 2/third", r.Depth(), r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "first" {
		t.Errorf("Active = %s, want first", r.Active().Title())
	}
}
