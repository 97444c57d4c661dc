package todo

// TaskList is a named, ordered group of tasks. It owns its tasks exclusively.
type TaskList struct {
	Title string
	Tasks []Task
}

// NewTaskList creates an empty list with the given title.
func NewTaskList(title string) TaskList {
	return TaskList{Title: title, Tasks: []Task{}}
}

// Len returns the number of tasks in the list.
func (l *TaskList) Len() int {
	return len(l.Tasks)
}

// Add appends a new open task to the end of the list.
func (l *TaskList) Add(desc string) {
	l.Tasks = append(l.Tasks, NewTask(desc))
}

// At returns the task selected by c, or false if c is not a valid index.
func (l *TaskList) At(c Cursor) (*Task, bool) {
	if !c.Valid(len(l.Tasks)) {
		return nil, false
	}
	i, _ := c.Index()
	return &l.Tasks[i], true
}

// Toggle flips the task selected by c. It reports whether a task was changed.
func (l *TaskList) Toggle(c Cursor) bool {
	task, ok := l.At(c)
	if !ok {
		return false
	}
	task.Toggle()
	return true
}

// Delete removes the task selected by c and returns a cursor that is valid
// for the shortened list. If c is invalid nothing is removed and c is
// returned clamped.
func (l *TaskList) Delete(c Cursor) (Cursor, bool) {
	if !c.Valid(len(l.Tasks)) {
		return c.Clamp(len(l.Tasks)), false
	}
	i, _ := c.Index()
	l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
	return c.Clamp(len(l.Tasks)), true
}

// Clone returns a deep copy of the list.
func (l TaskList) Clone() TaskList {
	tasks := make([]Task, len(l.Tasks))
	copy(tasks, l.Tasks)
	return TaskList{Title: l.Title, Tasks: tasks}
}
