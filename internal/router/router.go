package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tlevesque/amfprep/internal/screen"
)

// PushScreenMsg asks the router to stack a new screen on top.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to discard the top screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg asks the router to swap the top screen for another.
// The replaced screen is gone; there is no navigating back to it.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the screen stack. The bottom screen is never popped, so
// there is always something to render.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with initial as the bottom screen.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

func (r *Router) top() int {
	return len(r.stack) - 1
}

// Active returns the screen currently on display.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[r.top()]
}

// Depth returns how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Push stacks s and runs its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the top screen, unless it is the last one.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:r.top()]
	}
	return nil
}

// Replace swaps the top screen for s and runs its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[r.top()] = s
	return s.Init()
}

// Update intercepts navigation messages; anything else goes to the
// active screen, whose replacement is stored back on the stack.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[r.top()] = next
	return cmd
}

// View renders the active screen at the given content size.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
