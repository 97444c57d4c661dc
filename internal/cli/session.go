package cli

import (
	"fmt"

	"github.com/adriangreen/todo-tui/internal/app"
	"github.com/adriangreen/todo-tui/internal/config"
	"github.com/adriangreen/todo-tui/internal/debuglog"
	"github.com/adriangreen/todo-tui/internal/storage"
	"github.com/spf13/cobra"
)

// Session holds the settings resolved for one run of the TUI
type Session struct {
	TasksPath   string
	Grouped     bool
	DefaultList string
	StatePath   string
}

// resolveSession applies flags over the loaded config. Only flags the user
// actually set take precedence.
func resolveSession(cmd *cobra.Command, cfg *config.Config) Session {
	s := Session{
		TasksPath:   cfg.TasksFile,
		Grouped:     cfg.Grouped,
		DefaultList: cfg.DefaultList,
		StatePath:   cfg.StatePath,
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		s.TasksPath, _ = flags.GetString("file")
	}
	if flags.Changed("lists") {
		s.Grouped, _ = flags.GetBool("lists")
	}
	if s.TasksPath == "" {
		s.TasksPath = storage.DefaultPath
	}
	return s
}

// openState loads the task file and builds the state machine over it.
//
// The file's own layout wins: a grouped file always opens with lists. A flat
// file opened with lists enabled is moved into a list named after the
// configured default.
func openState(s Session) (*app.State, error) {
	doc, err := storage.Load(s.TasksPath)
	if err != nil {
		return nil, err
	}

	if s.Grouped {
		doc.Promote(s.DefaultList)
	}

	debuglog.Logf("loaded %s: %d lists, %d tasks, grouped=%t", s.TasksPath, len(doc.Lists), len(doc.Tasks()), doc.Grouped)
	return newState(doc), nil
}

func newState(doc *storage.Document) *app.State {
	if doc.Grouped {
		return app.NewGrouped(doc.Lists)
	}
	return app.NewFlat(doc.Tasks())
}

// persist writes the state's collection to path in the layout of its mode
func persist(path string, state *app.State) error {
	lists := state.Snapshot()

	var doc *storage.Document
	if state.Mode() == app.ModeGrouped {
		doc = storage.GroupedDocument(lists)
	} else {
		doc = storage.FlatDocument(nil)
		for _, l := range lists {
			doc.Lists[0].Tasks = append(doc.Lists[0].Tasks, l.Tasks...)
		}
	}

	if err := storage.Save(path, doc); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	debuglog.Logf("saved %d tasks to %s", len(doc.Tasks()), path)
	return nil
}

// finish applies the session outcome. Only Commit touches the task file.
func finish(s Session, state *app.State, outcome app.Outcome) error {
	if outcome != app.Commit {
		debuglog.Logf("exit without saving (%s)", outcome)
		return nil
	}
	return persist(s.TasksPath, state)
}

// restoreUIState moves the cursors to where the previous session left them.
// Positions that no longer exist are ignored.
func restoreUIState(state *app.State, ui *config.UIState) {
	if ui == nil {
		return
	}
	if state.Mode() == app.ModeGrouped && ui.ListTitle != "" {
		if i, ok := state.FindList(ui.ListTitle); ok {
			state.SelectList(i)
		}
	}
	state.SelectTask(ui.TaskIndex)
}

// extractUIState captures the cursor positions worth restoring next time
func extractUIState(state *app.State) *config.UIState {
	ui := &config.UIState{}
	if list, ok := state.CurrentList(); ok && state.Mode() == app.ModeGrouped {
		ui.ListTitle = list.Title
	}
	if i, ok := state.TaskCursor().Index(); ok {
		ui.TaskIndex = i
	}
	return ui
}
