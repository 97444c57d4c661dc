// Package todo holds the task data model: tasks, named task lists and the
// cursor used to select within them.
package todo

import "unicode/utf8"

// Task is a single to-do entry. It has no identity beyond its position in
// the owning list.
type Task struct {
	Done bool
	Desc string
}

// NewTask creates an open task with the given description.
func NewTask(desc string) Task {
	return Task{Done: false, Desc: desc}
}

// Toggle flips the completion flag.
func (t *Task) Toggle() {
	t.Done = !t.Done
}

// AppendRune adds one character to the end of the description.
func (t *Task) AppendRune(r rune) {
	t.Desc += string(r)
}

// PopRune removes the last character of the description, if any.
func (t *Task) PopRune() {
	t.Desc = TrimLastRune(t.Desc)
}

// TrimLastRune returns s without its final rune.
func TrimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
