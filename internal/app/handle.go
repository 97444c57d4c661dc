package app

import (
	"github.com/adriangreen/todo-tui/internal/todo"
)

// Handle applies one key event and reports what the caller should do next.
// Release events are discarded. Keys with no binding on the active screen
// leave the state unchanged.
func (s *State) Handle(k Key) Outcome {
	if k.Kind == KeyRelease || !s.running {
		return Continue
	}

	var out Outcome
	switch s.screen {
	case ScreenMain:
		out = s.handleMain(k)
	case ScreenSidebar:
		out = s.handleSidebar(k)
	case ScreenAdding:
		out = s.handleAdding(k)
	case ScreenAddingList:
		out = s.handleAddingList(k)
	case ScreenEditing:
		out = s.handleEditing(k)
	case ScreenExiting:
		out = s.handleExiting(k)
	default:
		out = Continue
	}

	s.normalize()
	return out
}

func (s *State) handleMain(k Key) Outcome {
	n := len(s.Tasks())
	switch {
	case k.IsChar('a'):
		s.input = ""
		s.screen = ScreenAdding
	case k.IsChar('b'):
		if s.mode == ModeGrouped {
			s.openSidebar()
		}
	case k.IsChar('e'):
		if s.taskCursor.Valid(n) {
			s.editingAt = s.taskCursor
			s.screen = ScreenEditing
		}
	case k.IsChar('d'):
		s.deleteSelected()
	case k.IsChar('q'):
		s.screen = ScreenExiting
	case k.Code == KeyUp:
		s.taskCursor = s.taskCursor.Prev(n)
	case k.Code == KeyDown:
		s.taskCursor = s.taskCursor.Next(n)
	case k.Code == KeyLeft:
		s.taskCursor = s.taskCursor.First(n)
	case k.Code == KeyRight:
		s.taskCursor = s.taskCursor.Last(n)
	case k.Code == KeyEnter:
		if list, ok := s.CurrentList(); ok {
			list.Toggle(s.taskCursor)
		}
	default:
	}
	return Continue
}

func (s *State) handleSidebar(k Key) Outcome {
	n := len(s.lists)
	switch {
	case k.IsChar('a'):
		s.input = ""
		s.screen = ScreenAddingList
	case k.IsChar('b'):
		s.screen = ScreenMain
	case k.Code == KeyUp:
		s.listCursor = s.listCursor.Prev(n)
	case k.Code == KeyDown:
		s.listCursor = s.listCursor.Next(n)
	case k.Code == KeyLeft:
		s.listCursor = s.listCursor.First(n)
	case k.Code == KeyRight:
		s.listCursor = s.listCursor.Last(n)
	case k.Code == KeyEnter:
		if i, ok := s.listCursor.Index(); ok && s.SelectList(i) {
			s.screen = ScreenMain
		}
	default:
	}
	return Continue
}

func (s *State) handleAdding(k Key) Outcome {
	switch {
	case k.Code == KeyEnter:
		if list, ok := s.CurrentList(); ok {
			list.Add(s.input)
			if s.taskCursor.IsNone() {
				s.taskCursor = s.taskCursor.First(list.Len())
			}
		}
		s.input = ""
		s.screen = ScreenMain
	case k.Code == KeyEsc:
		s.input = ""
		s.screen = ScreenMain
	default:
		s.editInput(k)
	}
	return Continue
}

func (s *State) handleAddingList(k Key) Outcome {
	switch {
	case k.Code == KeyEnter:
		// list titles are the list identity in the grouped file layout
		if _, taken := s.FindList(s.input); taken {
			return Continue
		}
		s.lists = append(s.lists, todo.NewTaskList(s.input))
		if s.current.IsNone() {
			s.SelectList(len(s.lists) - 1)
		}
		s.listCursor = s.listCursor.Last(len(s.lists))
		s.input = ""
		s.screen = ScreenSidebar
	case k.Code == KeyEsc:
		s.input = ""
		s.screen = ScreenSidebar
	default:
		s.editInput(k)
	}
	return Continue
}

func (s *State) handleEditing(k Key) Outcome {
	list, ok := s.CurrentList()
	if !ok {
		s.screen = ScreenMain
		return Continue
	}
	switch {
	case k.Code == KeyEsc:
		s.editingAt = todo.None()
		s.screen = ScreenMain
	case k.Code == KeyBackspace:
		if task, ok := list.At(s.editingAt); ok {
			task.PopRune()
		}
	case k.Printable():
		if task, ok := list.At(s.editingAt); ok {
			task.AppendRune(k.Rune)
		}
	default:
	}
	return Continue
}

func (s *State) handleExiting(k Key) Outcome {
	switch {
	case k.IsChar('y'):
		s.running = false
		return Commit
	case k.IsChar('n'), k.IsChar('q'):
		s.running = false
		return Discard
	default:
		return Continue
	}
}

// editInput applies a text-editing key to the input buffer.
func (s *State) editInput(k Key) {
	switch {
	case k.Code == KeyBackspace:
		s.input = todo.TrimLastRune(s.input)
	case k.Printable():
		s.input += string(k.Rune)
	default:
	}
}

func (s *State) openSidebar() {
	s.listCursor = s.current.Clamp(len(s.lists))
	if s.listCursor.IsNone() {
		s.listCursor = s.listCursor.First(len(s.lists))
	}
	s.screen = ScreenSidebar
}

func (s *State) deleteSelected() {
	list, ok := s.CurrentList()
	if !ok {
		return
	}
	s.taskCursor, _ = list.Delete(s.taskCursor)
}
