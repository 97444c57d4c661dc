// Package storage reads and writes the task collection as a CSV file.
//
// Two layouts are recognised by their header row:
//
//	done,desc        a single flat list
//	list,done,desc   named lists; a row with empty done and desc declares an
//	                 empty list so that it survives a round trip
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/adriangreen/todo-tui/internal/todo"
)

var (
	flatHeader    = []string{"done", "desc"}
	groupedHeader = []string{"list", "done", "desc"}
)

var (
	// ErrUnknownHeader is returned when the first row matches neither layout.
	ErrUnknownHeader = errors.New("unrecognised header row")

	// ErrDuplicateList is returned when encoding two lists with one title.
	// Rows are grouped by title, so such a document cannot be read back.
	ErrDuplicateList = errors.New("duplicate list title")
)

// ParseError reports a malformed row. Line is 1-based and counts the header.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is the persisted form of the task collection.
type Document struct {
	Grouped bool
	// Lists holds exactly one untitled list when Grouped is false.
	Lists []todo.TaskList
}

// FlatDocument wraps a single task sequence.
func FlatDocument(tasks []todo.Task) *Document {
	list := todo.NewTaskList("")
	list.Tasks = append(list.Tasks, tasks...)
	return &Document{Grouped: false, Lists: []todo.TaskList{list}}
}

// GroupedDocument wraps a sequence of named lists.
func GroupedDocument(lists []todo.TaskList) *Document {
	return &Document{Grouped: true, Lists: lists}
}

// Tasks returns every task in list order.
func (d *Document) Tasks() []todo.Task {
	var out []todo.Task
	for _, l := range d.Lists {
		out = append(out, l.Tasks...)
	}
	return out
}

// Promote converts a flat document into a grouped one, placing the existing
// tasks in a list with the given title. Empty flat documents become grouped
// documents with no lists. Grouped documents are left unchanged.
func (d *Document) Promote(title string) {
	if d.Grouped {
		return
	}
	tasks := d.Tasks()
	d.Grouped = true
	d.Lists = nil
	if len(tasks) > 0 {
		list := todo.NewTaskList(title)
		list.Tasks = tasks
		d.Lists = []todo.TaskList{list}
	}
}

// Encode writes doc to w, header first.
func Encode(w io.Writer, doc *Document) error {
	cw := csv.NewWriter(w)

	if doc.Grouped {
		seen := make(map[string]bool, len(doc.Lists))
		for _, l := range doc.Lists {
			if seen[l.Title] {
				return fmt.Errorf("%w: %q", ErrDuplicateList, l.Title)
			}
			seen[l.Title] = true
		}

		if err := cw.Write(groupedHeader); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		for _, l := range doc.Lists {
			if len(l.Tasks) == 0 {
				if err := cw.Write([]string{l.Title, "", ""}); err != nil {
					return fmt.Errorf("failed to write list %q: %w", l.Title, err)
				}
				continue
			}
			for _, task := range l.Tasks {
				if err := cw.Write([]string{l.Title, strconv.FormatBool(task.Done), task.Desc}); err != nil {
					return fmt.Errorf("failed to write task: %w", err)
				}
			}
		}
	} else {
		if err := cw.Write(flatHeader); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		for _, task := range doc.Tasks() {
			if err := cw.Write([]string{strconv.FormatBool(task.Done), task.Desc}); err != nil {
				return fmt.Errorf("failed to write task: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush tasks: %w", err)
	}
	return nil
}

// Decode parses a document from r. Any malformed row aborts the decode with
// a *ParseError. Empty input yields an empty flat document.
func Decode(r io.Reader) (*Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return FlatDocument(nil), nil
	}
	if err != nil {
		return nil, csvError(err, 1)
	}

	var grouped bool
	switch {
	case slices.Equal(header, flatHeader):
		grouped = false
	case slices.Equal(header, groupedHeader):
		grouped = true
	default:
		return nil, &ParseError{Line: 1, Err: ErrUnknownHeader}
	}

	doc := FlatDocument(nil)
	if grouped {
		doc = GroupedDocument(nil)
	}
	index := make(map[string]int)

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err, 0)
		}
		line, _ := cr.FieldPos(0)

		if !grouped {
			task, err := parseTask(record)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			doc.Lists[0].Tasks = append(doc.Lists[0].Tasks, task)
			continue
		}

		if len(record) != 3 {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("expected 3 fields, got %d", len(record))}
		}
		title := record[0]
		i, ok := index[title]
		if !ok {
			doc.Lists = append(doc.Lists, todo.NewTaskList(title))
			i = len(doc.Lists) - 1
			index[title] = i
		}
		if record[1] == "" && record[2] == "" {
			continue
		}
		task, err := parseTask(record[1:])
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		doc.Lists[i].Tasks = append(doc.Lists[i].Tasks, task)
	}

	return doc, nil
}

// parseTask converts a done,desc pair.
func parseTask(fields []string) (todo.Task, error) {
	if len(fields) != 2 {
		return todo.Task{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	done, err := strconv.ParseBool(fields[0])
	if err != nil {
		return todo.Task{}, fmt.Errorf("invalid done value %q", fields[0])
	}
	return todo.Task{Done: done, Desc: fields[1]}, nil
}

func csvError(err error, line int) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		line = pe.StartLine
	}
	return &ParseError{Line: line, Err: err}
}
