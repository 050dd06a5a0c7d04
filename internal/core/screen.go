package core

import tea "github.com/charmbracelet/bubbletea"

// Screen is one entry of the route stack. Update returns pop=true to close itself.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// ScreenInitializer is implemented by screens with start-up work.
type ScreenInitializer interface {
	Init() tea.Cmd
}

// ScopedMsg is a message for the screens with a given scope, wherever they sit
// on the stack. Async results use it so they are not lost when the issuing
// screen is covered.
type ScopedMsg interface {
	TargetScope() string
}
