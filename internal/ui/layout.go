package ui

import "github.com/adriangreen/todo-tui/internal/app"

const (
	headerHeight    = 1
	statusBarHeight = 1
	panelBorder     = 2
	minSidebarWidth = 16
	minBodyHeight   = 3
)

// LayoutDimensions holds the calculated dimensions for each panel
type LayoutDimensions struct {
	Width  int
	Height int

	HeaderHeight    int
	StatusBarHeight int

	// Body height including panel borders
	BodyHeight int

	// Sidebar is zero width in flat mode
	SidebarWidth int
	ListWidth    int
}

// calculateLayout computes the panel dimensions from the terminal size.
// The sidebar takes a quarter of the width when lists are enabled.
func (m Model) calculateLayout() LayoutDimensions {
	layout := LayoutDimensions{
		Width:           m.width,
		Height:          m.height,
		HeaderHeight:    headerHeight,
		StatusBarHeight: statusBarHeight,
	}

	layout.BodyHeight = m.height - headerHeight - statusBarHeight
	if layout.BodyHeight < minBodyHeight+panelBorder {
		layout.BodyHeight = minBodyHeight + panelBorder
	}

	if m.state.Mode() == app.ModeGrouped {
		layout.SidebarWidth = m.width / 4
		if layout.SidebarWidth < minSidebarWidth {
			layout.SidebarWidth = minSidebarWidth
		}
	}
	layout.ListWidth = m.width - layout.SidebarWidth
	if layout.ListWidth < panelBorder+1 {
		layout.ListWidth = panelBorder + 1
	}

	return layout
}

// updateViewportSizes resizes the task viewport to fit inside its panel
func (m *Model) updateViewportSizes() {
	layout := m.calculateLayout()
	m.taskViewport.Width = layout.ListWidth - panelBorder
	m.taskViewport.Height = layout.BodyHeight - panelBorder
}

// popupPosition centres a popup of the given size on the terminal and clamps
// it so that it never overflows the screen.
func (m Model) popupPosition(width, height int) (x, y int) {
	x = (m.width - width) / 2
	y = (m.height - height) / 2

	if x+width > m.width {
		x = m.width - width
	}
	if y+height > m.height {
		y = m.height - height
	}
	return max(x, 0), max(y, 0)
}
