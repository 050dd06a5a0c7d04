package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/deliverus-owner/internal/auth"
	"github.com/jask/deliverus-owner/internal/core"
	"github.com/jask/deliverus-owner/internal/notify"
)

// Login asks for a session token and signs the user in with it.
type Login struct {
	input textinput.Model
	store *auth.Store
	keys  *core.KeyRegistry
	err   string
}

func NewLogin(store *auth.Store, keys *core.KeyRegistry) *Login {
	in := textinput.New()
	in.Placeholder = "paste session token"
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.CharLimit = 4096
	in.Focus()
	return &Login{input: in, store: store, keys: keys}
}

func (s *Login) Title() string { return "Sign in" }
func (s *Login) Scope() string { return core.ScopeLogin }

func (s *Login) Init() tea.Cmd { return textinput.Blink }

// Err is the last validation error, if any.
func (s *Login) Err() string { return s.err }

func (s *Login) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case s.keys.IsAction(km, core.ActionBack, s.Scope()):
			return s, nil, true
		case s.keys.IsAction(km, core.ActionSubmit, s.Scope()):
			user, err := auth.UserFromToken(s.input.Value())
			if err != nil {
				s.err = "That token could not be read: " + err.Error()
				return s, nil, false
			}
			s.err = ""
			s.store.SignIn(user)
			return s, notify.Show(notify.Notification{Type: notify.TypeSuccess, Message: "Signed in as " + user.DisplayName()}), true
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *Login) View(width, height int) string {
	s.input.Width = max(10, min(56, width-8))
	lines := []string{
		titleStyle.Render("Sign in"),
		"",
		s.input.View(),
	}
	if strings.TrimSpace(s.err) != "" {
		lines = append(lines, "", errorStyle.Render(s.err))
	}
	lines = append(lines, "", mutedStyle.Render("enter to sign in · esc to cancel"))
	box := boxStyle.Width(max(1, min(64, width-2))).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
