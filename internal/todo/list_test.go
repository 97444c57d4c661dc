package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() TaskList {
	l := NewTaskList("Groceries")
	l.Add("buy milk")
	l.Add("buy eggs")
	l.Add("buy bread")
	return l
}

func TestTaskListAddAppends(t *testing.T) {
	l := sampleList()
	l.Add("buy jam")

	require.Equal(t, 4, l.Len())
	assert.Equal(t, Task{Done: false, Desc: "buy jam"}, l.Tasks[3])
	assert.Equal(t, "buy milk", l.Tasks[0].Desc)
}

func TestTaskListToggleTwiceRestores(t *testing.T) {
	l := sampleList()

	assert.True(t, l.Toggle(At(1)))
	assert.True(t, l.Tasks[1].Done)
	assert.True(t, l.Toggle(At(1)))
	assert.False(t, l.Tasks[1].Done)
}

func TestTaskListToggleInvalidCursorIsNoop(t *testing.T) {
	l := sampleList()

	assert.False(t, l.Toggle(None()))
	assert.False(t, l.Toggle(At(3)))
	for _, task := range l.Tasks {
		assert.False(t, task.Done)
	}
}

func TestTaskListDeleteLastClampsCursor(t *testing.T) {
	l := sampleList()

	c, ok := l.Delete(At(2))
	require.True(t, ok)
	assert.Equal(t, At(1), c)
	assert.Equal(t, []string{"buy milk", "buy eggs"}, descs(l))

	c, _ = l.Delete(c)
	assert.Equal(t, At(0), c)
	c, _ = l.Delete(c)
	assert.True(t, c.IsNone(), "deleting the only task should clear the cursor")
	assert.Equal(t, 0, l.Len())
}

func TestTaskListDeleteMiddleKeepsIndex(t *testing.T) {
	l := sampleList()

	c, ok := l.Delete(At(1))
	require.True(t, ok)
	assert.Equal(t, At(1), c)
	assert.Equal(t, []string{"buy milk", "buy bread"}, descs(l))
}

func TestTaskListDeleteInvalidCursor(t *testing.T) {
	l := sampleList()

	c, ok := l.Delete(None())
	assert.False(t, ok)
	assert.True(t, c.IsNone())
	assert.Equal(t, 3, l.Len())

	c, ok = l.Delete(At(9))
	assert.False(t, ok)
	assert.Equal(t, At(2), c)
}

func TestTaskEditRunes(t *testing.T) {
	task := NewTask("caf")
	task.AppendRune('é')
	assert.Equal(t, "café", task.Desc)

	task.PopRune()
	task.PopRune()
	assert.Equal(t, "ca", task.Desc)

	empty := NewTask("")
	empty.PopRune()
	assert.Equal(t, "", empty.Desc)
}

func TestTaskListCloneIsIndependent(t *testing.T) {
	l := sampleList()
	c := l.Clone()
	c.Tasks[0].Desc = "changed"

	assert.Equal(t, "buy milk", l.Tasks[0].Desc)
}

func descs(l TaskList) []string {
	out := make([]string, 0, len(l.Tasks))
	for _, task := range l.Tasks {
		out = append(out, task.Desc)
	}
	return out
}
