package app

import (
	"math/rand"
	"testing"

	"github.com/adriangreen/todo-tui/internal/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(s *State, text string) {
	for _, r := range text {
		s.Handle(Char(r))
	}
}

func flatState(descs ...string) *State {
	tasks := make([]todo.Task, 0, len(descs))
	for _, d := range descs {
		tasks = append(tasks, todo.NewTask(d))
	}
	return NewFlat(tasks)
}

// TestNewFlatSelectsFirstTask verifies the initial cursor placement
func TestNewFlatSelectsFirstTask(t *testing.T) {
	s := flatState("one", "two")
	assert.Equal(t, ScreenMain, s.Screen())
	assert.Equal(t, todo.At(0), s.TaskCursor())
	assert.True(t, s.Running())

	empty := NewFlat(nil)
	assert.True(t, empty.TaskCursor().IsNone())
}

// TestAddTaskWithBackspaces types "abc", erases twice and commits
func TestAddTaskWithBackspaces(t *testing.T) {
	s := NewFlat(nil)

	s.Handle(Char('a'))
	require.Equal(t, ScreenAdding, s.Screen())
	typeText(s, "abc")
	s.Handle(Press(KeyBackspace))
	s.Handle(Press(KeyBackspace))
	assert.Equal(t, "a", s.Input())

	s.Handle(Press(KeyEnter))
	assert.Equal(t, ScreenMain, s.Screen())
	assert.Equal(t, "", s.Input())
	require.Len(t, s.Tasks(), 1)
	assert.Equal(t, todo.Task{Done: false, Desc: "a"}, s.Tasks()[0])
	assert.Equal(t, todo.At(0), s.TaskCursor())
}

// TestAddingCapturesCommandLetters verifies command keys are typed as text while adding
func TestAddingCapturesCommandLetters(t *testing.T) {
	s := NewFlat(nil)
	s.Handle(Char('a'))
	typeText(s, "qbdey")

	assert.Equal(t, ScreenAdding, s.Screen())
	assert.Equal(t, "qbdey", s.Input())
}

// TestAddingEscDiscards verifies cancel leaves tasks untouched and clears the buffer
func TestAddingEscDiscards(t *testing.T) {
	s := flatState("keep")
	s.Handle(Char('a'))
	typeText(s, "draft")
	s.Handle(Press(KeyEsc))

	assert.Equal(t, ScreenMain, s.Screen())
	assert.Equal(t, "", s.Input())
	assert.Len(t, s.Tasks(), 1)
}

// TestAddingClearsStaleInput verifies entering Adding starts with an empty buffer
func TestAddingClearsStaleInput(t *testing.T) {
	s := NewFlat(nil)
	s.Handle(Char('a'))
	typeText(s, "x")
	s.Handle(Press(KeyEsc))
	s.Handle(Char('a'))

	assert.Equal(t, "", s.Input())
}

// TestEmptyMainKeysAreNoops checks Enter, arrows, e and d on an empty list
func TestEmptyMainKeysAreNoops(t *testing.T) {
	keys := []Key{
		Press(KeyEnter), Press(KeyUp), Press(KeyDown), Press(KeyLeft), Press(KeyRight),
		Char('e'), Char('d'),
	}
	for _, k := range keys {
		s := NewFlat(nil)
		out := s.Handle(k)

		assert.Equal(t, Continue, out)
		assert.Equal(t, ScreenMain, s.Screen(), "key %+v", k)
		assert.True(t, s.TaskCursor().IsNone(), "key %+v", k)
		assert.True(t, s.EditingAt().IsNone(), "key %+v", k)
		assert.Empty(t, s.Tasks(), "key %+v", k)
	}
}

// TestToggleTwiceRestores verifies toggling is its own inverse
func TestToggleTwiceRestores(t *testing.T) {
	s := flatState("a", "b")
	s.Handle(Press(KeyDown))
	s.Handle(Press(KeyEnter))
	assert.True(t, s.Tasks()[1].Done)
	assert.False(t, s.Tasks()[0].Done)

	s.Handle(Press(KeyEnter))
	assert.False(t, s.Tasks()[1].Done)
}

// TestDeleteLastTaskClampsCursor verifies the cursor never points past the end after delete
func TestDeleteLastTaskClampsCursor(t *testing.T) {
	s := flatState("a", "b", "c")
	s.Handle(Press(KeyRight))
	require.Equal(t, todo.At(2), s.TaskCursor())

	s.Handle(Char('d'))
	assert.Equal(t, todo.At(1), s.TaskCursor())
	assert.Len(t, s.Tasks(), 2)

	s.Handle(Char('d'))
	s.Handle(Char('d'))
	assert.True(t, s.TaskCursor().IsNone())
	assert.Empty(t, s.Tasks())

	s.Handle(Char('d'))
	assert.Empty(t, s.Tasks())
}

// TestEditingAppendsAndPops covers in-place description editing
func TestEditingAppendsAndPops(t *testing.T) {
	s := flatState("milk")
	s.Handle(Char('e'))
	require.Equal(t, ScreenEditing, s.Screen())
	assert.Equal(t, todo.At(0), s.EditingAt())

	typeText(s, "s!")
	s.Handle(Press(KeyBackspace))
	assert.Equal(t, "milks", s.Tasks()[0].Desc)

	s.Handle(Press(KeyEnter))
	assert.Equal(t, ScreenEditing, s.Screen(), "enter is not bound while editing")

	s.Handle(Press(KeyEsc))
	assert.Equal(t, ScreenMain, s.Screen())
	assert.True(t, s.EditingAt().IsNone())
}

// TestEditingEscLeavesDescription verifies Esc alone does not modify the task
func TestEditingEscLeavesDescription(t *testing.T) {
	s := flatState("call mom")
	s.Handle(Char('e'))
	s.Handle(Press(KeyEsc))

	assert.Equal(t, ScreenMain, s.Screen())
	assert.Equal(t, "call mom", s.Tasks()[0].Desc)
	assert.True(t, s.EditingAt().IsNone())
}

// TestExitingOutcomes covers y, n and q on the confirm screen
func TestExitingOutcomes(t *testing.T) {
	tests := []struct {
		key  Key
		want Outcome
	}{
		{Char('y'), Commit},
		{Char('n'), Discard},
		{Char('q'), Discard},
	}
	for _, tt := range tests {
		s := flatState("a")
		s.Handle(Char('q'))
		require.Equal(t, ScreenExiting, s.Screen())

		assert.Equal(t, tt.want, s.Handle(tt.key))
		assert.False(t, s.Running())
	}
}

// TestExitingIgnoresOtherKeys verifies unbound keys keep the confirm screen
func TestExitingIgnoresOtherKeys(t *testing.T) {
	s := flatState("a")
	s.Handle(Char('q'))
	for _, k := range []Key{Char('x'), Press(KeyEnter), Press(KeyEsc), Press(KeyUp)} {
		assert.Equal(t, Continue, s.Handle(k))
	}
	assert.Equal(t, ScreenExiting, s.Screen())
	assert.True(t, s.Running())
}

// TestReleaseEventsIgnored verifies releases never change state
func TestReleaseEventsIgnored(t *testing.T) {
	s := flatState("a")
	s.Handle(Release(Char('d')))
	s.Handle(Release(Char('q')))

	assert.Len(t, s.Tasks(), 1)
	assert.Equal(t, ScreenMain, s.Screen())
}

// TestSidebarDisabledInFlatMode verifies b is inert without lists
func TestSidebarDisabledInFlatMode(t *testing.T) {
	s := flatState("a")
	s.Handle(Char('b'))
	assert.Equal(t, ScreenMain, s.Screen())
}

// TestGroupedListLifecycle creates lists, selects one and adds a task to it
func TestGroupedListLifecycle(t *testing.T) {
	s := NewGrouped(nil)
	assert.True(t, s.Current().IsNone())

	s.Handle(Char('a'))
	typeText(s, "orphan")
	s.Handle(Press(KeyEnter))
	assert.Equal(t, ScreenMain, s.Screen())
	assert.Equal(t, "", s.Input())
	assert.Empty(t, s.Lists(), "adding a task with no current list creates nothing")

	s.Handle(Char('b'))
	require.Equal(t, ScreenSidebar, s.Screen())
	s.Handle(Char('a'))
	require.Equal(t, ScreenAddingList, s.Screen())
	typeText(s, "Work")
	s.Handle(Press(KeyEnter))
	assert.Equal(t, ScreenSidebar, s.Screen())
	require.Len(t, s.Lists(), 1)
	assert.Equal(t, todo.At(0), s.Current(), "first list becomes current")

	s.Handle(Char('a'))
	typeText(s, "Home")
	s.Handle(Press(KeyEnter))
	require.Len(t, s.Lists(), 2)
	assert.Equal(t, todo.At(0), s.Current(), "later lists are not selected automatically")
	assert.Equal(t, todo.At(1), s.ListCursor())

	s.Handle(Press(KeyEnter))
	assert.Equal(t, ScreenMain, s.Screen())
	assert.Equal(t, todo.At(1), s.Current())

	s.Handle(Char('a'))
	typeText(s, "fix sink")
	s.Handle(Press(KeyEnter))
	assert.Empty(t, s.Lists()[0].Tasks)
	require.Len(t, s.Lists()[1].Tasks, 1)
	assert.Equal(t, "fix sink", s.Lists()[1].Tasks[0].Desc)
}

// TestAddingListRejectsDuplicateTitle verifies a taken title keeps the user on AddingList
func TestAddingListRejectsDuplicateTitle(t *testing.T) {
	s := NewGrouped([]todo.TaskList{todo.NewTaskList("Work")})
	s.Handle(Char('b'))
	s.Handle(Char('a'))
	typeText(s, "Work")
	s.Handle(Press(KeyEnter))

	assert.Equal(t, ScreenAddingList, s.Screen())
	assert.Equal(t, "Work", s.Input(), "the buffer is kept for correction")
	assert.Len(t, s.Lists(), 1)

	typeText(s, "2")
	s.Handle(Press(KeyEnter))
	assert.Equal(t, ScreenSidebar, s.Screen())
	require.Len(t, s.Lists(), 2)
	assert.Equal(t, "Work2", s.Lists()[1].Title)

	t.Run("empty title only once", func(t *testing.T) {
		s := NewGrouped(nil)
		s.Handle(Char('b'))
		s.Handle(Char('a'))
		s.Handle(Press(KeyEnter))
		require.Len(t, s.Lists(), 1)
		assert.Equal(t, "", s.Lists()[0].Title)

		s.Handle(Char('a'))
		s.Handle(Press(KeyEnter))
		assert.Equal(t, ScreenAddingList, s.Screen())
		assert.Len(t, s.Lists(), 1)
	})
}

// TestAddingListEscReturnsToSidebar verifies cancel goes back to the sidebar
func TestAddingListEscReturnsToSidebar(t *testing.T) {
	s := NewGrouped([]todo.TaskList{todo.NewTaskList("Work")})
	s.Handle(Char('b'))
	s.Handle(Char('a'))
	typeText(s, "draft")
	s.Handle(Press(KeyEsc))

	assert.Equal(t, ScreenSidebar, s.Screen())
	assert.Equal(t, "", s.Input())
	assert.Len(t, s.Lists(), 1)

	s.Handle(Char('b'))
	assert.Equal(t, ScreenMain, s.Screen())
	assert.True(t, s.ListCursor().IsNone())
}

// TestSwitchingListsResetsTaskCursor verifies the task cursor follows the new list
func TestSwitchingListsResetsTaskCursor(t *testing.T) {
	work := todo.NewTaskList("Work")
	work.Add("a")
	work.Add("b")
	work.Add("c")
	s := NewGrouped([]todo.TaskList{work, todo.NewTaskList("Empty")})
	s.Handle(Press(KeyRight))
	require.Equal(t, todo.At(2), s.TaskCursor())

	s.Handle(Char('b'))
	s.Handle(Press(KeyDown))
	s.Handle(Press(KeyEnter))

	assert.Equal(t, todo.At(1), s.Current())
	assert.True(t, s.TaskCursor().IsNone())
}

// TestRandomEventsKeepInvariants fuzzes key sequences against the cursor invariants
func TestRandomEventsKeepInvariants(t *testing.T) {
	keys := []Key{
		Char('a'), Char('b'), Char('d'), Char('e'), Char('x'),
		Press(KeyUp), Press(KeyDown), Press(KeyLeft), Press(KeyRight),
		Press(KeyEnter), Press(KeyBackspace), Press(KeyEsc), Press(KeyOther),
	}
	for _, mode := range []Mode{ModeFlat, ModeGrouped} {
		rng := rand.New(rand.NewSource(7))
		var s *State
		if mode == ModeFlat {
			s = flatState("a", "b")
		} else {
			s = NewGrouped([]todo.TaskList{todo.NewTaskList("one")})
		}
		for step := 0; step < 2000 && s.Running(); step++ {
			s.Handle(keys[rng.Intn(len(keys))])

			n := len(s.Tasks())
			if n == 0 {
				require.True(t, s.TaskCursor().IsNone(), "step %d", step)
			} else if i, ok := s.TaskCursor().Index(); ok {
				require.Less(t, i, n, "step %d", step)
			}
			if s.Screen() == ScreenEditing {
				require.True(t, s.EditingAt().Valid(n), "step %d", step)
			} else {
				require.True(t, s.EditingAt().IsNone(), "step %d", step)
			}
		}
	}
}
