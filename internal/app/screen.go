package app

// Screen is the active UI mode. Exactly one screen is active at a time.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenSidebar
	ScreenAdding
	ScreenAddingList
	ScreenEditing
	ScreenExiting
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenSidebar:
		return "sidebar"
	case ScreenAdding:
		return "adding"
	case ScreenAddingList:
		return "adding-list"
	case ScreenEditing:
		return "editing"
	case ScreenExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// CapturesText reports whether the screen routes printable keys into text
// rather than treating them as commands.
func (s Screen) CapturesText() bool {
	switch s {
	case ScreenAdding, ScreenAddingList, ScreenEditing:
		return true
	default:
		return false
	}
}

// Mode selects between the two task layouts.
type Mode int

const (
	// ModeFlat holds a single anonymous list; the sidebar is disabled.
	ModeFlat Mode = iota
	// ModeGrouped holds any number of named lists selectable from the sidebar.
	ModeGrouped
)

func (m Mode) String() string {
	if m == ModeGrouped {
		return "grouped"
	}
	return "flat"
}

// Outcome tells the caller what to do after an event has been handled.
type Outcome int

const (
	// Continue keeps the event loop running.
	Continue Outcome = iota
	// Commit asks the caller to persist the tasks and stop.
	Commit
	// Discard asks the caller to stop without persisting.
	Discard
)

func (o Outcome) String() string {
	switch o {
	case Commit:
		return "commit"
	case Discard:
		return "discard"
	default:
		return "continue"
	}
}
