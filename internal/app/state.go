// Package app implements the application state machine: the screens, the
// transitions between them, and the task and list operations they trigger.
//
// State is owned by a single event loop. Renderers may read it through the
// accessor methods but must not modify the slices they return.
package app

import (
	"github.com/adriangreen/todo-tui/internal/todo"
)

// State is the aggregate root mutated by every key event.
type State struct {
	running bool
	screen  Screen
	input   string
	mode    Mode

	// In ModeFlat lists holds exactly one untitled list and current selects it.
	lists   []todo.TaskList
	current todo.Cursor

	taskCursor todo.Cursor
	listCursor todo.Cursor
	editingAt  todo.Cursor
}

// NewFlat creates a single-list state holding tasks.
func NewFlat(tasks []todo.Task) *State {
	list := todo.NewTaskList("")
	list.Tasks = append(list.Tasks, tasks...)
	s := &State{
		running: true,
		screen:  ScreenMain,
		mode:    ModeFlat,
		lists:   []todo.TaskList{list},
		current: todo.At(0),
	}
	s.taskCursor = s.taskCursor.First(len(list.Tasks))
	return s
}

// NewGrouped creates a multi-list state. The first list, if any, is current.
func NewGrouped(lists []todo.TaskList) *State {
	owned := make([]todo.TaskList, 0, len(lists))
	for _, l := range lists {
		owned = append(owned, l.Clone())
	}
	s := &State{
		running: true,
		screen:  ScreenMain,
		mode:    ModeGrouped,
		lists:   owned,
	}
	s.current = s.current.First(len(owned))
	s.taskCursor = s.taskCursor.First(len(s.Tasks()))
	return s
}

// Running reports whether the event loop should keep going.
func (s *State) Running() bool { return s.running }

// Screen returns the active screen.
func (s *State) Screen() Screen { return s.screen }

// Mode returns the task layout.
func (s *State) Mode() Mode { return s.mode }

// Input returns the text typed so far on the Adding or AddingList screen.
func (s *State) Input() string { return s.input }

// TaskCursor returns the selection in the visible task list.
func (s *State) TaskCursor() todo.Cursor { return s.taskCursor }

// ListCursor returns the selection in the sidebar.
func (s *State) ListCursor() todo.Cursor { return s.listCursor }

// EditingAt returns the index of the task being edited. It is only set on
// the Editing screen.
func (s *State) EditingAt() todo.Cursor { return s.editingAt }

// Lists returns every list. In ModeFlat this is a single untitled list.
func (s *State) Lists() []todo.TaskList { return s.lists }

// Current returns the cursor selecting the active list.
func (s *State) Current() todo.Cursor { return s.current }

// CurrentList returns the active list, or false if none is selected.
func (s *State) CurrentList() (*todo.TaskList, bool) {
	if !s.current.Valid(len(s.lists)) {
		return nil, false
	}
	i, _ := s.current.Index()
	return &s.lists[i], true
}

// Tasks returns the visible task sequence.
func (s *State) Tasks() []todo.Task {
	list, ok := s.CurrentList()
	if !ok {
		return nil
	}
	return list.Tasks
}

// SelectList makes the list at index i current and moves the task cursor to
// its first task. It reports whether i was valid.
func (s *State) SelectList(i int) bool {
	c := todo.At(i)
	if !c.Valid(len(s.lists)) {
		return false
	}
	s.current = c
	s.taskCursor = s.taskCursor.First(len(s.Tasks()))
	return true
}

// SelectTask moves the task cursor to index i of the visible list.
// It reports whether i was valid.
func (s *State) SelectTask(i int) bool {
	c := todo.At(i)
	if !c.Valid(len(s.Tasks())) {
		return false
	}
	s.taskCursor = c
	return true
}

// FindList returns the index of the first list with the given title.
func (s *State) FindList(title string) (int, bool) {
	for i := range s.lists {
		if s.lists[i].Title == title {
			return i, true
		}
	}
	return 0, false
}

// Snapshot returns a deep copy of every list for persistence.
func (s *State) Snapshot() []todo.TaskList {
	out := make([]todo.TaskList, 0, len(s.lists))
	for _, l := range s.lists {
		out = append(out, l.Clone())
	}
	return out
}

// normalize re-establishes the cursor invariants after an event.
func (s *State) normalize() {
	n := len(s.Tasks())
	s.taskCursor = s.taskCursor.Clamp(n)
	s.listCursor = s.listCursor.Clamp(len(s.lists))
	if s.screen != ScreenEditing || !s.editingAt.Valid(n) {
		s.editingAt = todo.None()
		if s.screen == ScreenEditing {
			s.screen = ScreenMain
		}
	}
	if s.screen != ScreenSidebar && s.screen != ScreenAddingList {
		s.listCursor = todo.None()
	}
}
