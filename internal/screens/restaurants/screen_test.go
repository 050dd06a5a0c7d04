package restaurants

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/deliverus-owner/internal/api"
	"github.com/jask/deliverus-owner/internal/auth"
	"github.com/jask/deliverus-owner/internal/core"
	"github.com/jask/deliverus-owner/internal/notify"
)

type fakeLister struct {
	results [][]api.Restaurant
	err     error
	calls   int
}

func (f *fakeLister) GetAll(context.Context) ([]api.Restaurant, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.results) == 0 {
		return []api.Restaurant{}, nil
	}
	r := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return r, nil
}

type navCall struct {
	name   string
	params map[string]any
}

type recordingNav struct{ calls []navCall }

func (n *recordingNav) Navigate(name string, params map[string]any) tea.Cmd {
	n.calls = append(n.calls, navCall{name: name, params: params})
	return nil
}

func (n *recordingNav) Back() tea.Cmd { return nil }

type recordingNotifier struct{ shown []notify.Notification }

func (r *recordingNotifier) Show(n notify.Notification) tea.Cmd {
	r.shown = append(r.shown, n)
	return nil
}

type harness struct {
	screen   *Screen
	lister   *fakeLister
	nav      *recordingNav
	notifier *recordingNotifier
}

func newHarness(results ...[]api.Restaurant) *harness {
	h := &harness{lister: &fakeLister{results: results}, nav: &recordingNav{}, notifier: &recordingNotifier{}}
	h.screen = New(Deps{
		Lister:       h.lister,
		Navigator:    h.nav,
		Notifier:     h.notifier,
		AssetBaseURL: "http://api",
		Currency:     "€",
	})
	return h
}

// run executes cmd and feeds its message back into the screen.
func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	h.screen.Update(cmd())
}

func (h *harness) signIn() {
	_, cmd, _ := h.screen.Update(auth.UserChangedMsg{User: owner})
	h.run(cmd)
}

func (h *harness) key(k tea.KeyMsg) {
	_, cmd, _ := h.screen.Update(k)
	h.run(cmd)
}

func (h *harness) view() string { return ansi.Strip(h.screen.View(80, 60)) }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func sample() []api.Restaurant {
	return []api.Restaurant{
		{ID: 4, Name: "Casa Félix", Description: "Cocina andaluza", ShippingCosts: 3, AverageServiceMinutes: ptr(12)},
		{ID: 7, Name: "100 montaditos", Description: "Cervecería", ShippingCosts: 4.5},
	}
}

func TestSignedOutClearsStateAndShowsEmptyMessage(t *testing.T) {
	h := newHarness(sample())
	h.signIn()
	if len(h.screen.Restaurants()) != 2 {
		t.Fatalf("expected loaded restaurants")
	}

	_, cmd, _ := h.screen.Update(auth.UserChangedMsg{User: nil})
	if cmd != nil {
		t.Fatalf("no fetch expected when signed out")
	}
	if h.screen.Restaurants() != nil {
		t.Fatalf("state should reset to the null sentinel")
	}
	v := h.view()
	if !strings.Contains(v, EmptyMessage) {
		t.Fatalf("expected empty message, got:\n%s", v)
	}
	if strings.Contains(v, CreateLabel) {
		t.Fatalf("create action must be hidden when signed out")
	}
}

func TestSignedInRendersEntriesInOrder(t *testing.T) {
	h := newHarness(sample())
	h.signIn()
	if h.lister.calls != 1 {
		t.Fatalf("expected one fetch, got %d", h.lister.calls)
	}
	v := h.view()
	first := strings.Index(v, "Casa Félix")
	second := strings.Index(v, "100 montaditos")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("entries missing or out of order:\n%s", v)
	}
	for _, want := range []string{CreateLabel, "Avg. service time: 12 min.", "Shipping: 3.00€", "Shipping: 4.50€", "[logo] placeholder"} {
		if !strings.Contains(v, want) {
			t.Fatalf("view missing %q:\n%s", want, v)
		}
	}
	if strings.Count(v, "Avg. service time") != 1 {
		t.Fatalf("service time line must be omitted for null values:\n%s", v)
	}
	if strings.Contains(v, EmptyMessage) {
		t.Fatalf("empty message should not show with entries")
	}
}

func TestEmptyResultShowsEmptyMessage(t *testing.T) {
	h := newHarness([]api.Restaurant{})
	h.signIn()
	if h.screen.Restaurants() == nil || len(h.screen.Restaurants()) != 0 {
		t.Fatalf("expected empty, non-nil state")
	}
	v := h.view()
	if !strings.Contains(v, EmptyMessage) || !strings.Contains(v, CreateLabel) {
		t.Fatalf("expected header and empty message:\n%s", v)
	}
}

func TestRouteChangeRefetches(t *testing.T) {
	h := newHarness(sample(), sample()[:1])
	h.signIn()
	_, cmd, _ := h.screen.Update(core.RouteChangedMsg{Route: core.Route{Name: core.RouteRestaurants, Key: 9}})
	h.run(cmd)
	if h.lister.calls != 2 {
		t.Fatalf("expected refetch on route change, calls=%d", h.lister.calls)
	}
	if len(h.screen.Restaurants()) != 1 {
		t.Fatalf("expected second result applied")
	}
}

func TestFetchFailureKeepsStateAndNotifiesOnce(t *testing.T) {
	h := newHarness(sample())
	h.signIn()
	before := h.screen.Restaurants()

	h.lister.err = errors.New("connection refused")
	_, cmd, _ := h.screen.Update(core.RouteChangedMsg{Route: core.Route{Key: 2}})
	h.run(cmd)

	if len(h.screen.Restaurants()) != len(before) || h.screen.Restaurants()[0].ID != before[0].ID {
		t.Fatalf("state must be untouched on failure")
	}
	if len(h.notifier.shown) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(h.notifier.shown))
	}
	n := h.notifier.shown[0]
	if n.Type != notify.TypeError || !strings.Contains(n.Message, "connection refused") {
		t.Fatalf("unexpected notification %+v", n)
	}
	if !strings.HasPrefix(n.Message, "There was an error while retrieving restaurants.") {
		t.Fatalf("unexpected message %q", n.Message)
	}
}

func TestFailureBeforeAnyDataKeepsNullState(t *testing.T) {
	h := newHarness()
	h.lister.err = errors.New("timeout")
	h.signIn()
	if h.screen.Restaurants() != nil {
		t.Fatalf("expected null state after failed first fetch")
	}
	if len(h.notifier.shown) != 1 {
		t.Fatalf("expected one notification")
	}
}

func TestLateResultStillApplies(t *testing.T) {
	h := newHarness()
	_, first, _ := h.screen.Update(auth.UserChangedMsg{User: owner})
	_, second, _ := h.screen.Update(core.RouteChangedMsg{Route: core.Route{Key: 5}})

	newer := loadedMsg{gen: 2, restaurants: sample()}
	older := loadedMsg{gen: 1, restaurants: sample()[:1]}
	if first == nil || second == nil {
		t.Fatalf("both triggers should fetch")
	}
	h.screen.Update(newer)
	h.screen.Update(older)
	if len(h.screen.Restaurants()) != 1 {
		t.Fatalf("the last arriving result wins, got %d entries", len(h.screen.Restaurants()))
	}
}

func TestCreateActionNavigatesWithoutParams(t *testing.T) {
	h := newHarness(sample())
	h.signIn()
	h.key(enter)
	if len(h.nav.calls) != 1 {
		t.Fatalf("expected one navigation, got %d", len(h.nav.calls))
	}
	call := h.nav.calls[0]
	if call.name != core.RouteCreateRestaurant || call.params != nil {
		t.Fatalf("unexpected navigation %+v", call)
	}

	h.key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if len(h.nav.calls) != 2 || h.nav.calls[1].name != core.RouteCreateRestaurant {
		t.Fatalf("n should also open the create screen")
	}
}

func TestEntryActivationNavigatesToDetail(t *testing.T) {
	h := newHarness(sample())
	h.signIn()
	h.key(down)
	h.key(down)
	h.key(enter)
	if len(h.nav.calls) != 1 {
		t.Fatalf("expected one navigation")
	}
	call := h.nav.calls[0]
	if call.name != core.RouteRestaurantDetail || call.params["id"] != 7 {
		t.Fatalf("unexpected navigation %+v", call)
	}

	h.key(down)
	h.key(enter)
	if h.nav.calls[1].params["id"] != 7 {
		t.Fatalf("cursor should stop at the last entry")
	}
}

func TestCreateUnavailableWhenSignedOut(t *testing.T) {
	h := newHarness()
	h.key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	h.key(enter)
	if len(h.nav.calls) != 0 {
		t.Fatalf("no navigation expected when signed out, got %+v", h.nav.calls)
	}
}

func TestRemoverIsHeldButNeverCalled(t *testing.T) {
	rm := &countingRemover{}
	h := newHarness(sample())
	h.screen.deps.Remover = rm
	h.signIn()
	h.key(down)
	h.key(enter)
	if rm.calls != 0 {
		t.Fatalf("remove must not be called from the list screen")
	}
}

type countingRemover struct{ calls int }

func (c *countingRemover) Remove(context.Context, int) error {
	c.calls++
	return nil
}
