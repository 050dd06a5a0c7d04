package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/deliverus-owner/internal/core"
)

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(core.ColorBorder).Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(core.ColorBrand)
	mutedStyle = lipgloss.NewStyle().Foreground(core.ColorMuted)
	errorStyle = lipgloss.NewStyle().Foreground(core.ColorError)
)

// RouteScreen is a navigation target whose content is not part of this client yet.
// It shows what it was opened with and closes on back.
type RouteScreen struct {
	title string
	scope string
	body  string
	keys  *core.KeyRegistry
	route core.Route
}

// NewRestaurantDetail is the RestaurantDetailScreen route, opened with {id}.
func NewRestaurantDetail(route core.Route, keys *core.KeyRegistry) *RouteScreen {
	body := "No restaurant selected."
	if id := route.Param("id"); id != nil {
		body = fmt.Sprintf("Restaurant #%v", id)
	}
	return &RouteScreen{title: "Restaurant detail", scope: core.ScopeRestaurantDetail, body: body, keys: keys, route: route}
}

// NewCreateRestaurant is the CreateRestaurantScreen route.
func NewCreateRestaurant(route core.Route, keys *core.KeyRegistry) *RouteScreen {
	return &RouteScreen{title: "Create restaurant", scope: core.ScopeCreateRestaurant, body: "New restaurant", keys: keys, route: route}
}

func (s *RouteScreen) Title() string { return s.title }
func (s *RouteScreen) Scope() string { return s.scope }

// Body is the main line of the screen.
func (s *RouteScreen) Body() string { return s.body }

func (s *RouteScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch m := msg.(type) {
	case core.RouteChangedMsg:
		s.route = m.Route
	case tea.KeyMsg:
		if s.keys.IsAction(m, core.ActionBack, s.scope) {
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *RouteScreen) View(width, height int) string {
	lines := []string{
		titleStyle.Render(s.title),
		"",
		s.body,
		"",
		mutedStyle.Render("This screen is not available in the terminal client yet."),
		mutedStyle.Render("Press esc to go back."),
	}
	box := boxStyle.Width(max(1, min(60, width-2))).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
