package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Actions understood by the shell and the screens.
const (
	ActionQuit     = "quit"
	ActionUp       = "move-up"
	ActionDown     = "move-down"
	ActionActivate = "activate"
	ActionCreate   = "create"
	ActionBack     = "back"
	ActionLogin    = "login"
	ActionLogout   = "logout"
	ActionDismiss  = "dismiss"
	ActionSubmit   = "submit"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	if r == nil {
		return false
	}
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"k", "up"}, Action: ActionUp, Description: "up", Scopes: []string{ScopeRestaurants}},
		{Keys: []string{"j", "down"}, Action: ActionDown, Description: "down", Scopes: []string{ScopeRestaurants}},
		{Keys: []string{"enter"}, Action: ActionActivate, Description: "open", Scopes: []string{ScopeRestaurants}},
		{Keys: []string{"n"}, Action: ActionCreate, Description: "create restaurant", Scopes: []string{ScopeRestaurants}},
		{Keys: []string{"enter"}, Action: ActionSubmit, Description: "sign in", Scopes: []string{ScopeLogin}},
		{Keys: []string{"esc"}, Action: ActionBack, Description: "back", Scopes: []string{ScopeRestaurantDetail, ScopeCreateRestaurant, ScopeLogin}},
		{Keys: []string{"ctrl+l"}, Action: ActionLogin, Description: "sign in", Scopes: []string{ScopeRestaurants}},
		{Keys: []string{"ctrl+o"}, Action: ActionLogout, Description: "sign out", Scopes: []string{"*"}},
		{Keys: []string{"x"}, Action: ActionDismiss, Description: "dismiss", Scopes: []string{ScopeRestaurants, ScopeRestaurantDetail, ScopeCreateRestaurant}},
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopeRestaurants}},
	}
}

// Scopes of the built-in screens.
const (
	ScopeRestaurants      = "screen:restaurants"
	ScopeRestaurantDetail = "screen:restaurant-detail"
	ScopeCreateRestaurant = "screen:create-restaurant"
	ScopeLogin            = "screen:login"
)
