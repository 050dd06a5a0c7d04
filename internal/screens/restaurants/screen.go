package restaurants

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/deliverus-owner/internal/api"
	"github.com/jask/deliverus-owner/internal/auth"
	"github.com/jask/deliverus-owner/internal/core"
	"github.com/jask/deliverus-owner/internal/notify"
)

// Lister is the remote "list my restaurants" operation.
type Lister interface {
	GetAll(ctx context.Context) ([]api.Restaurant, error)
}

// Remover is the remote delete operation. The screen keeps it for the
// edit/remove controls and does not call it yet.
type Remover interface {
	Remove(ctx context.Context, id int) error
}

// Deps are the collaborators of the list screen.
type Deps struct {
	Ctx          context.Context
	Lister       Lister
	Remover      Remover
	Auth         *auth.Store
	Navigator    core.Navigator
	Notifier     notify.Notifier
	Keys         *core.KeyRegistry
	AssetBaseURL string
	Currency     string
	EntryActions func(api.Restaurant) []Action
	Log          *slog.Logger
}

// loadedMsg carries the result of one fetch. gen is only used for logging:
// results are applied in arrival order even when a newer fetch is pending.
type loadedMsg struct {
	gen         int
	restaurants []api.Restaurant
	err         error
}

func (loadedMsg) TargetScope() string { return core.ScopeRestaurants }

// Screen lists the signed-in owner's restaurants.
type Screen struct {
	deps        Deps
	route       core.Route
	user        *auth.User
	restaurants []api.Restaurant
	cursor      int
	gen         int
	applied     int
}

func New(deps Deps) *Screen {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Navigator == nil {
		deps.Navigator = core.StackNavigator()
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.Bus
	}
	if deps.Keys == nil {
		deps.Keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if deps.Log == nil {
		deps.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Screen{deps: deps}
	if deps.Auth != nil {
		s.user = deps.Auth.LoggedInUser()
	}
	return s
}

func (s *Screen) Title() string { return "My restaurants" }
func (s *Screen) Scope() string { return core.ScopeRestaurants }

// Restaurants returns the current view state; nil means nothing is loaded.
func (s *Screen) Restaurants() []api.Restaurant { return s.restaurants }

// Watch re-evaluates the screen for a new (user, route) pair: it clears the
// list when nobody is signed in and fetches otherwise.
func (s *Screen) Watch(user *auth.User, route core.Route) tea.Cmd {
	s.user = user
	s.route = route
	if user == nil {
		s.restaurants = nil
		s.clampCursor()
		return nil
	}
	return s.fetch()
}

func (s *Screen) fetch() tea.Cmd {
	s.gen++
	gen := s.gen
	ctx, lister, log := s.deps.Ctx, s.deps.Lister, s.deps.Log
	log.Debug("restaurants fetch start", slog.Int("gen", gen), slog.Int("route_key", s.route.Key))
	return func() tea.Msg {
		list, err := lister.GetAll(ctx)
		return loadedMsg{gen: gen, restaurants: list, err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch m := msg.(type) {
	case auth.UserChangedMsg:
		return s, s.Watch(m.User, s.route), false
	case core.RouteChangedMsg:
		return s, s.Watch(s.user, m.Route), false
	case loadedMsg:
		return s, s.applyLoaded(m), false
	case tea.KeyMsg:
		return s, s.handleKey(m), false
	}
	return s, nil, false
}

func (s *Screen) applyLoaded(m loadedMsg) tea.Cmd {
	if m.err != nil {
		s.deps.Log.Warn("restaurants fetch failed", slog.Int("gen", m.gen), slog.Any("error", m.err))
		return s.deps.Notifier.Show(notify.Notification{
			Type:    notify.TypeError,
			Message: fmt.Sprintf("There was an error while retrieving restaurants. %v", m.err),
		})
	}
	if m.gen < s.applied {
		s.deps.Log.Debug("restaurants stale result applied", slog.Int("gen", m.gen), slog.Int("newest", s.applied))
	}
	s.applied = max(s.applied, m.gen)
	list := m.restaurants
	if list == nil {
		list = []api.Restaurant{}
	}
	s.restaurants = list
	s.clampCursor()
	s.deps.Log.Info("restaurants loaded", slog.Int("gen", m.gen), slog.Int("count", len(list)))
	return nil
}

func (s *Screen) tree() Tree {
	return Render(s.restaurants, s.user, RenderOptions{
		AssetBaseURL: s.deps.AssetBaseURL,
		Currency:     s.deps.Currency,
		EntryActions: s.deps.EntryActions,
	})
}

// focusable counts header + entries.
func (s *Screen) focusable(t Tree) int {
	n := len(t.Entries)
	if t.Header != nil {
		n++
	}
	return n
}

func (s *Screen) clampCursor() {
	n := s.focusable(s.tree())
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *Screen) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys, scope := s.deps.Keys, s.Scope()
	t := s.tree()
	switch {
	case keys.IsAction(msg, core.ActionUp, scope):
		if s.cursor > 0 {
			s.cursor--
		}
	case keys.IsAction(msg, core.ActionDown, scope):
		if s.cursor < s.focusable(t)-1 {
			s.cursor++
		}
	case keys.IsAction(msg, core.ActionCreate, scope):
		if t.Header != nil {
			return s.createRestaurant()
		}
	case keys.IsAction(msg, core.ActionActivate, scope):
		return s.activate(t)
	}
	return nil
}

func (s *Screen) activate(t Tree) tea.Cmd {
	idx := s.cursor
	if t.Header != nil {
		if idx == 0 {
			return s.createRestaurant()
		}
		idx--
	}
	if idx < 0 || idx >= len(t.Entries) {
		return nil
	}
	return s.openDetail(t.Entries[idx])
}

func (s *Screen) createRestaurant() tea.Cmd {
	return s.deps.Navigator.Navigate(core.RouteCreateRestaurant, nil)
}

func (s *Screen) openDetail(e Entry) tea.Cmd {
	return s.deps.Navigator.Navigate(core.RouteRestaurantDetail, map[string]any{"id": e.ID})
}

func (s *Screen) View(width, height int) string {
	return draw(s.tree(), s.cursor, width, height)
}
