package core

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/deliverus-owner/internal/auth"
	"github.com/jask/deliverus-owner/internal/notify"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if next, cmd, handled := m.flash.Update(msg); handled {
		m.flash = next
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case auth.UserChangedMsg:
		m.log.Info("auth user changed", slog.Bool("signed_in", msg.User != nil))
		cmds := []tea.Cmd{auth.WaitForChange(m.userSub)}
		// every mounted screen observes the user, not just the visible one
		for i := range m.screens.items {
			next, cmd, _ := m.screens.items[i].screen.Update(msg)
			if next != nil {
				m.screens.items[i].screen = next
			}
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case ScopedMsg:
		var cmds []tea.Cmd
		for i := range m.screens.items {
			if m.screens.items[i].screen.Scope() != msg.TargetScope() {
				continue
			}
			next, cmd, _ := m.screens.items[i].screen.Update(msg)
			if next != nil {
				m.screens.items[i].screen = next
			}
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case NavigateMsg:
		return m.push(msg.Name, msg.Params)
	case PopScreenMsg:
		return m.pop()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		scope := m.ActiveScope()
		switch {
		case m.keys.IsAction(msg, ActionQuit, scope):
			m.quitting = true
			return m, tea.Quit
		case m.keys.IsAction(msg, ActionLogout, scope):
			m.auth.SignOut()
			return m, notify.Show(notify.Notification{Type: notify.TypeInfo, Message: "Signed out"})
		case m.keys.IsAction(msg, ActionLogin, scope):
			return m.push(RouteLogin, nil)
		case m.keys.IsAction(msg, ActionDismiss, scope):
			if _, ok := m.flash.Current(); ok {
				m.flash = m.flash.Dismiss()
				return m, nil
			}
		}
	}

	return m.updateTop(msg)
}

func (m Model) updateTop(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := m.screens.Top()
	if top == nil {
		return m, nil
	}
	next, cmd, pop := top.Update(msg)
	m.screens.replaceTop(next)
	if pop {
		popped, popCmd := m.pop()
		return popped, tea.Batch(cmd, popCmd)
	}
	return m, cmd
}

func (m Model) push(name string, params map[string]any) (tea.Model, tea.Cmd) {
	factory, ok := m.routes[name]
	if !ok {
		m.log.Warn("navigate to unknown route", slog.String("route", name))
		return m, notify.Error("Unknown screen: " + name)
	}
	route := m.newRoute(name, params)
	screen := factory(route)
	m.screens.Push(route, screen)
	m.log.Debug("route pushed", slog.String("route", name), slog.Int("depth", m.screens.Len()))

	var cmds []tea.Cmd
	if initer, ok := screen.(ScreenInitializer); ok {
		cmds = append(cmds, initer.Init())
	}
	next, cmd, _ := screen.Update(RouteChangedMsg{Route: route})
	m.screens.replaceTop(next)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// pop closes the top screen and hands the revealed one a fresh route key.
// The root screen is never popped.
func (m Model) pop() (tea.Model, tea.Cmd) {
	if m.screens.Len() <= 1 {
		return m, nil
	}
	m.screens.Pop()
	entry := &m.screens.items[len(m.screens.items)-1]
	m.nextKey++
	entry.route.Key = m.nextKey
	m.log.Debug("route revealed", slog.String("route", entry.route.Name), slog.Int("depth", m.screens.Len()))

	next, cmd, _ := entry.screen.Update(RouteChangedMsg{Route: entry.route})
	if next != nil {
		entry.screen = next
	}
	return m, cmd
}
