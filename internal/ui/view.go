package ui

import (
	"fmt"
	"strings"

	"github.com/adriangreen/todo-tui/internal/app"
	"github.com/adriangreen/todo-tui/internal/todo"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the model
func (m Model) View() string {
	if !m.ready {
		return m.styles.Info.Render("Loading tasks...")
	}

	layout := m.calculateLayout()

	body := m.renderTaskPanel(layout)
	if layout.SidebarWidth > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(layout), body)
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatusBar(),
	)

	if popup := m.renderPopup(); popup != "" {
		x, y := m.popupPosition(lipgloss.Width(popup), lipgloss.Height(popup))
		return placeOverlay(x, y, popup, screen)
	}
	return screen
}

// placeOverlay draws fg over bg with its top-left corner at column x, row y.
// Both strings may contain ANSI styling.
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	for i, line := range fgLines {
		base := bgLines[y+i]
		if w := ansi.StringWidth(base); w < x {
			base += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(base, x, "")
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")
		bgLines[y+i] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}

func (m Model) renderHeader() string {
	title := "Todo"
	if list, ok := m.state.CurrentList(); ok && list.Title != "" {
		title += " · " + list.Title
	}

	tasks := m.state.Tasks()
	done := 0
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}

	counts := m.styles.Subtle.Render(fmt.Sprintf("%d/%d done", done, len(tasks)))
	return m.styles.Header.Render(title) + counts
}

func (m Model) renderTaskPanel(layout LayoutDimensions) string {
	style := m.styles.Panel
	if m.state.Screen() == app.ScreenMain || m.state.Screen() == app.ScreenEditing {
		style = m.styles.PanelFocused
	}
	return style.
		Width(layout.ListWidth - panelBorder).
		Height(layout.BodyHeight - panelBorder).
		Render(m.taskViewport.View())
}

// renderTaskRows renders one line per task in the visible list
func (m Model) renderTaskRows() string {
	tasks := m.state.Tasks()
	if len(tasks) == 0 {
		if m.state.Mode() == app.ModeGrouped && m.state.Current().IsNone() {
			return m.styles.Subtle.Render(fmt.Sprintf("No list selected. Press %s to pick or create one.", m.keyMap.Sidebar.Help().Key))
		}
		return m.styles.Subtle.Render(fmt.Sprintf("No tasks yet. Press %s to add one.", m.keyMap.Add.Help().Key))
	}

	selected, hasSelected := m.state.TaskCursor().Index()
	editing, isEditing := m.state.EditingAt().Index()

	rows := make([]string, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, m.renderTaskRow(t, hasSelected && i == selected, isEditing && i == editing))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderTaskRow(t todo.Task, selected, editing bool) string {
	prefix := "  "
	if selected {
		prefix = m.styles.TaskCursor.Render("> ")
	}

	check := "[ ]"
	if t.Done {
		check = "[✓]"
	}

	// descriptions may hold newlines from the file; keep one row per task
	line := check + " " + strings.ReplaceAll(t.Desc, "\n", "↵")

	switch {
	case editing:
		return prefix + m.styles.TaskEditing.Render(line)
	case t.Done:
		return prefix + m.styles.TaskDone.Render(line)
	default:
		return prefix + m.styles.TaskOpen.Render(line)
	}
}

func (m Model) renderSidebar(layout LayoutDimensions) string {
	style := m.styles.Panel
	if m.state.Screen() == app.ScreenSidebar || m.state.Screen() == app.ScreenAddingList {
		style = m.styles.PanelFocused
	}

	lists := m.state.Lists()
	rows := []string{m.styles.PanelTitle.Render("Lists")}
	if len(lists) == 0 {
		rows = append(rows, m.styles.Subtle.Render("none"))
	}

	current, hasCurrent := m.state.Current().Index()
	pointed, hasPointed := m.state.ListCursor().Index()
	for i, l := range lists {
		prefix := "  "
		if hasPointed && i == pointed {
			prefix = m.styles.TaskCursor.Render("> ")
		}
		row := fmt.Sprintf("%s (%d)", l.Title, l.Len())
		if hasCurrent && i == current {
			rows = append(rows, prefix+m.styles.ListCurrent.Render("• "+row))
		} else {
			rows = append(rows, prefix+m.styles.ListItem.Render("  "+row))
		}
	}

	return style.
		Width(layout.SidebarWidth - panelBorder).
		Height(layout.BodyHeight - panelBorder).
		Render(strings.Join(rows, "\n"))
}

func (m Model) renderStatusBar() string {
	bar := m.help.ShortHelpView(m.keyMap.bindingsFor(m.state.Screen(), m.state.Mode()))
	if m.status != "" {
		style := m.styles.Info
		if m.statusIsError {
			style = m.styles.Error
		}
		bar += "  " + style.Render(m.status)
	}
	return m.styles.StatusBar.Render(bar)
}

// renderPopup returns the overlay for text entry and exit screens, or ""
func (m Model) renderPopup() string {
	var title, body string

	switch m.state.Screen() {
	case app.ScreenAdding:
		title = "New task"
		body = m.renderInput(m.state.Input())
	case app.ScreenAddingList:
		title = "New list"
		body = m.renderInput(m.state.Input())
	case app.ScreenEditing:
		title = "Edit task"
		list, _ := m.state.CurrentList()
		if list == nil {
			return ""
		}
		t, ok := list.At(m.state.EditingAt())
		if !ok {
			return ""
		}
		body = m.renderInput(t.Desc)
	case app.ScreenExiting:
		title = "Quit"
		target := m.tasksPath
		if target == "" {
			target = "the task file"
		}
		body = fmt.Sprintf("Save changes to %s?", target)
	default:
		return ""
	}

	help := m.help.ShortHelpView(m.keyMap.bindingsFor(m.state.Screen(), m.state.Mode()))
	width := m.width / 2
	if width < 30 {
		width = 30
	}

	return m.styles.Popup.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.PopupTitle.Render(title),
		body,
		"",
		help,
	))
}

func (m Model) renderInput(text string) string {
	in := m.input
	in.SetValue(text)
	in.CursorEnd()
	return in.View()
}
