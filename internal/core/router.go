package core

type stackEntry struct {
	route  Route
	screen Screen
}

type ScreenStack struct {
	items []stackEntry
}

func (s *ScreenStack) Push(route Route, screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, stackEntry{route: route, screen: screen})
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last.screen
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1].screen
}

func (s ScreenStack) TopRoute() (Route, bool) {
	if len(s.items) == 0 {
		return Route{}, false
	}
	return s.items[len(s.items)-1].route, true
}

func (s *ScreenStack) replaceTop(screen Screen) {
	if screen != nil && len(s.items) > 0 {
		s.items[len(s.items)-1].screen = screen
	}
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
