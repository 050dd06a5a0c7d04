package core

import tea "github.com/charmbracelet/bubbletea"

// Route names.
const (
	RouteRestaurants      = "RestaurantsScreen"
	RouteRestaurantDetail = "RestaurantDetailScreen"
	RouteCreateRestaurant = "CreateRestaurantScreen"
	RouteLogin            = "LoginScreen"
)

// Route identifies a screen instance on the stack. Key is unique per entry,
// so re-entering a screen is observable as a route change.
type Route struct {
	Name   string
	Params map[string]any
	Key    int
}

// Param returns the named parameter, or nil.
func (r Route) Param(name string) any {
	if r.Params == nil {
		return nil
	}
	return r.Params[name]
}

// NavigateMsg asks the shell to push the named route.
type NavigateMsg struct {
	Name   string
	Params map[string]any
}

// PopScreenMsg asks the shell to pop the top screen.
type PopScreenMsg struct{}

// RouteChangedMsg is sent to a screen when it becomes the current route,
// either by being pushed or by being revealed after a pop.
type RouteChangedMsg struct {
	Route Route
}

// Navigator is the navigation handle given to screens.
type Navigator interface {
	Navigate(name string, params map[string]any) tea.Cmd
	Back() tea.Cmd
}

type navigator struct{}

// StackNavigator returns the Navigator backed by the shell's route stack.
func StackNavigator() Navigator { return navigator{} }

func (navigator) Navigate(name string, params map[string]any) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Name: name, Params: params} }
}

func (navigator) Back() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// ScreenFactory builds the screen for a route.
type ScreenFactory func(r Route) Screen
