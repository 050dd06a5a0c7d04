package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

// Notification is a transient message shown in the status bar.
type Notification struct {
	Type    Type
	Message string
}

// ShowMsg asks the shell to display a notification.
type ShowMsg struct {
	Notification Notification
}

// expireMsg dismisses the notification with the given sequence number.
type expireMsg struct {
	seq int
}

// Notifier is the outbound notification surface used by screens.
type Notifier interface {
	Show(n Notification) tea.Cmd
}

// Func adapts a function to Notifier.
type Func func(n Notification) tea.Cmd

func (f Func) Show(n Notification) tea.Cmd { return f(n) }

// Bus is the default Notifier: it emits a ShowMsg for the shell's Flash.
var Bus Notifier = Func(Show)

func Show(n Notification) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Notification: n} }
}

func Error(message string) tea.Cmd {
	return Show(Notification{Type: TypeError, Message: message})
}

// Flash holds the notification currently on screen.
type Flash struct {
	ttl     time.Duration
	seq     int
	current *Notification
}

func NewFlash(ttl time.Duration) Flash {
	if ttl <= 0 {
		ttl = 4 * time.Second
	}
	return Flash{ttl: ttl}
}

// Current returns the visible notification, if any.
func (f Flash) Current() (Notification, bool) {
	if f.current == nil {
		return Notification{}, false
	}
	return *f.current, true
}

// Update handles ShowMsg and expiry ticks. handled reports whether msg belonged to Flash.
func (f Flash) Update(msg tea.Msg) (Flash, tea.Cmd, bool) {
	switch m := msg.(type) {
	case ShowMsg:
		f.seq++
		n := m.Notification
		f.current = &n
		seq := f.seq
		return f, tea.Tick(f.ttl, func(time.Time) tea.Msg { return expireMsg{seq: seq} }), true
	case expireMsg:
		// a newer notification replaced the one this tick was for
		if m.seq == f.seq {
			f.current = nil
		}
		return f, nil, true
	}
	return f, nil, false
}

// Dismiss hides the current notification.
func (f Flash) Dismiss() Flash {
	f.current = nil
	return f
}
