package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/deliverus-owner/internal/auth"
	"github.com/jask/deliverus-owner/internal/notify"
)

type fakeScreen struct {
	name   string
	routes []Route
	users  int
	keys   int
	scoped int
}

func (s *fakeScreen) Title() string        { return s.name }
func (s *fakeScreen) Scope() string        { return "screen:" + s.name }
func (s *fakeScreen) View(int, int) string { return "body of " + s.name }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	switch m := msg.(type) {
	case RouteChangedMsg:
		s.routes = append(s.routes, m.Route)
	case auth.UserChangedMsg:
		s.users++
	case scopedPing:
		s.scoped++
	case tea.KeyMsg:
		s.keys++
		if m.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

type fixture struct {
	model  Model
	root   *fakeScreen
	pushed []*fakeScreen
	store  *auth.Store
}

func newFixture() *fixture {
	f := &fixture{root: &fakeScreen{name: "root"}, store: auth.NewStore(nil)}
	routes := map[string]ScreenFactory{
		"Root": func(Route) Screen { return f.root },
		"Child": func(Route) Screen {
			s := &fakeScreen{name: "child"}
			f.pushed = append(f.pushed, s)
			return s
		},
	}
	f.model = NewModel(Options{Routes: routes, Root: "Root", Auth: f.store, Flash: notify.NewFlash(0)})
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(Model)
	return cmd
}

func TestNavigatePushesAndAnnouncesRoute(t *testing.T) {
	f := newFixture()
	f.send(NavigateMsg{Name: "Child", Params: map[string]any{"id": 3}})

	if f.model.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", f.model.Depth())
	}
	child := f.pushed[0]
	if len(child.routes) != 1 || child.routes[0].Param("id") != 3 {
		t.Fatalf("child should see its route with params, got %+v", child.routes)
	}
	if f.model.ActiveScope() != "screen:child" {
		t.Fatalf("unexpected scope %s", f.model.ActiveScope())
	}
}

func TestScreenPopRevealsRootWithNewRouteKey(t *testing.T) {
	f := newFixture()
	rootRoute, _ := f.model.TopRoute()
	f.send(NavigateMsg{Name: "Child"})
	f.send(tea.KeyMsg{Type: tea.KeyEsc})

	if f.model.Depth() != 1 {
		t.Fatalf("expected child to pop, depth %d", f.model.Depth())
	}
	if len(f.root.routes) != 1 {
		t.Fatalf("root should be told it is current again, got %d", len(f.root.routes))
	}
	if f.root.routes[0].Key == rootRoute.Key {
		t.Fatalf("revealed route must carry a new key")
	}
}

func TestRootIsNeverPopped(t *testing.T) {
	f := newFixture()
	f.send(PopScreenMsg{})
	if f.model.Depth() != 1 {
		t.Fatalf("root popped")
	}
}

func TestUnknownRouteNotifies(t *testing.T) {
	f := newFixture()
	cmd := f.send(NavigateMsg{Name: "Nowhere"})
	if f.model.Depth() != 1 {
		t.Fatalf("stack should be unchanged")
	}
	show, ok := cmd().(notify.ShowMsg)
	if !ok || show.Notification.Type != notify.TypeError {
		t.Fatalf("expected error notification, got %#v", show)
	}
	f.send(show)
	n, ok := f.model.Notification()
	if !ok || !strings.Contains(n.Message, "Nowhere") {
		t.Fatalf("flash should show the error, got %+v", n)
	}
	if !strings.Contains(f.model.View(), "Nowhere") {
		t.Fatalf("status bar should render the notification")
	}
}

func TestUserChangeReachesEveryScreen(t *testing.T) {
	f := newFixture()
	f.send(NavigateMsg{Name: "Child"})
	cmd := f.send(auth.UserChangedMsg{User: &auth.User{ID: "1"}})
	if cmd == nil {
		t.Fatalf("expected the subscription to be re-armed")
	}
	if f.root.users != 1 || f.pushed[0].users != 1 {
		t.Fatalf("both screens should observe the user change: root=%d child=%d", f.root.users, f.pushed[0].users)
	}
}

func TestLogoutKeySignsOut(t *testing.T) {
	f := newFixture()
	f.store.SignIn(&auth.User{ID: "1", FirstName: "Ana"})
	if !strings.Contains(f.model.View(), "Ana") {
		t.Fatalf("header should show the user")
	}
	f.send(tea.KeyMsg{Type: tea.KeyCtrlO})
	if f.store.LoggedInUser() != nil {
		t.Fatalf("expected sign out")
	}
}

func TestKeysGoToTopScreen(t *testing.T) {
	f := newFixture()
	f.send(NavigateMsg{Name: "Child"})
	f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if f.pushed[0].keys != 1 || f.root.keys != 0 {
		t.Fatalf("only the top screen should get keys")
	}
}

type scopedPing struct{ scope string }

func (p scopedPing) TargetScope() string { return p.scope }

func TestScopedMsgReachesCoveredScreen(t *testing.T) {
	f := newFixture()
	f.send(NavigateMsg{Name: "Child"})
	f.send(scopedPing{scope: "screen:root"})
	if f.root.scoped != 1 {
		t.Fatalf("covered root should receive its scoped message")
	}
	if f.pushed[0].scoped != 0 {
		t.Fatalf("child has a different scope")
	}
}
