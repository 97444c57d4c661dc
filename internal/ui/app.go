package ui

import (
	"fmt"

	"github.com/adriangreen/todo-tui/internal/app"
	"github.com/adriangreen/todo-tui/internal/config"
	"github.com/adriangreen/todo-tui/internal/debuglog"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model wrapping the todo state machine.
//
// All task and list mutation happens in app.State; the model translates
// terminal keys, renders the state, and decides when the program quits.
type Model struct {
	state         *app.State
	config        *config.Config
	configManager *config.ConfigManager
	tasksPath     string

	keyMap KeyMap
	styles *Styles
	help   help.Model

	taskViewport viewport.Model
	input        textinput.Model

	width  int
	height int
	ready  bool

	status        string
	statusIsError bool

	outcome app.Outcome
}

// NewModel creates a model over state. cm may be nil, in which case cfg is
// used as is and never reloaded. tasksPath is only shown to the user.
func NewModel(cfg *config.Config, cm *config.ConfigManager, state *app.State, tasksPath string) Model {
	if cm != nil {
		cfg = cm.GetConfig()
	}
	if cfg == nil {
		cfg, _ = config.Load("")
	}

	input := textinput.New()
	input.Prompt = "› "
	input.Cursor.SetMode(cursor.CursorStatic)
	input.Focus()

	return Model{
		state:         state,
		config:        cfg,
		configManager: cm,
		tasksPath:     tasksPath,
		keyMap:        NewKeyMap(cfg),
		styles:        NewStyles(cfg.Theme),
		help:          help.New(),
		taskViewport:  viewport.New(0, 0),
		input:         input,
		outcome:       app.Continue,
	}
}

// Init starts listening for config changes
func (m Model) Init() tea.Cmd {
	if m.configManager == nil {
		return nil
	}
	return tea.Batch(
		WaitForConfigReload(m.configManager),
		WaitForConfigError(m.configManager),
	)
}

// Outcome reports how the session ended. It is app.Continue while the
// program is still running.
func (m Model) Outcome() app.Outcome {
	return m.outcome
}

// State returns the wrapped state machine.
func (m Model) State() *app.State {
	return m.state
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.updateViewportSizes()
		m.syncTaskViewport()
		return m, nil

	case ConfigReloadedMsg:
		if m.configManager == nil {
			return m, nil
		}
		m.config = m.configManager.GetConfig()
		m.keyMap = NewKeyMap(m.config)
		m.styles = NewStyles(m.config.Theme)
		m.setStatus("Configuration reloaded", false)
		debuglog.Log("config reloaded")
		m.syncTaskViewport()
		return m, WaitForConfigReload(m.configManager)

	case WatcherErrorMsg:
		m.setStatus(fmt.Sprintf("Config error: %v", msg.Err), true)
		debuglog.Logf("config watcher error: %v", msg.Err)
		if m.configManager == nil {
			return m, nil
		}
		return m, WaitForConfigError(m.configManager)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always leaves without saving, whatever the screen
	if msg.Type == tea.KeyCtrlC {
		m.outcome = app.Discard
		debuglog.Log("interrupted, discarding changes")
		return m, tea.Quit
	}

	m.status = ""
	m.statusIsError = false

	for _, k := range m.keyMap.Translate(m.state.Screen(), msg) {
		before := m.state.Screen()
		outcome := m.state.Handle(k)
		after := m.state.Screen()
		if after != before {
			debuglog.Logf("screen %s -> %s", before, after)
		}
		if before == app.ScreenAddingList && after == app.ScreenAddingList && k.Code == app.KeyEnter {
			m.setStatus(fmt.Sprintf("A list named %q already exists", m.state.Input()), true)
		}
		if outcome != app.Continue {
			m.outcome = outcome
			debuglog.Logf("session finished: %s", outcome)
			return m, tea.Quit
		}
	}

	m.syncTaskViewport()
	return m, nil
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.statusIsError = isError
}

// syncTaskViewport refreshes the task rows and scrolls the cursor into view
func (m *Model) syncTaskViewport() {
	m.taskViewport.SetContent(m.renderTaskRows())

	idx, ok := m.state.TaskCursor().Index()
	if !ok || m.taskViewport.Height <= 0 {
		return
	}
	if idx < m.taskViewport.YOffset {
		m.taskViewport.SetYOffset(idx)
	} else if idx >= m.taskViewport.YOffset+m.taskViewport.Height {
		m.taskViewport.SetYOffset(idx - m.taskViewport.Height + 1)
	}
}
