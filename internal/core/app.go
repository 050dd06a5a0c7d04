package core

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/deliverus-owner/internal/auth"
	"github.com/jask/deliverus-owner/internal/notify"
)

// Options configure the shell model.
type Options struct {
	Routes   map[string]ScreenFactory
	Root     string
	Keys     *KeyRegistry
	Auth     *auth.Store
	Flash    notify.Flash
	AppTitle string
	Log      *slog.Logger
}

type Model struct {
	width    int
	height   int
	screens  ScreenStack
	routes   map[string]ScreenFactory
	keys     *KeyRegistry
	auth     *auth.Store
	userSub  <-chan *auth.User
	flash    notify.Flash
	title    string
	nextKey  int
	quitting bool
	log      *slog.Logger
}

// NewModel builds the shell with the root route already on the stack.
func NewModel(opts Options) Model {
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	store := opts.Auth
	if store == nil {
		store = auth.NewStore(nil)
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	title := opts.AppTitle
	if title == "" {
		title = "DeliverUS Owner"
	}
	m := Model{
		width:   100,
		height:  32,
		routes:  opts.Routes,
		keys:    keys,
		auth:    store,
		userSub: store.Subscribe(),
		flash:   opts.Flash,
		title:   title,
		log:     log,
	}
	if factory, ok := m.routes[opts.Root]; ok {
		route := m.newRoute(opts.Root, nil)
		m.screens.Push(route, factory(route))
	}
	return m
}

func (m *Model) newRoute(name string, params map[string]any) Route {
	m.nextKey++
	return Route{Name: name, Params: params, Key: m.nextKey}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{auth.WaitForChange(m.userSub)}
	if top := m.screens.Top(); top != nil {
		if initer, ok := top.(ScreenInitializer); ok {
			cmds = append(cmds, initer.Init())
		}
	}
	if route, ok := m.screens.TopRoute(); ok {
		cmds = append(cmds, func() tea.Msg { return RouteChangedMsg{Route: route} })
	}
	return tea.Batch(cmds...)
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return "app"
}

// Depth is the number of screens on the route stack.
func (m Model) Depth() int { return m.screens.Len() }

// TopRoute returns the route of the visible screen.
func (m Model) TopRoute() (Route, bool) { return m.screens.TopRoute() }

// Notification returns the visible notification, if any.
func (m Model) Notification() (notify.Notification, bool) { return m.flash.Current() }
