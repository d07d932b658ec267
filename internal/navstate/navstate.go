// Package navstate models the header chrome of the catalog UI: at most one
// of the menu and the search box is open at any time.
package navstate

import (
	"encoding/json"
	"fmt"
)

type State string

const (
	Idle       State = "idle"
	MenuOpen   State = "menu-open"
	SearchOpen State = "search-open"
)

type Event string

const (
	ToggleMenu   Event = "toggle-menu"
	ToggleSearch Event = "toggle-search"
	CloseAll     Event = "close"
	// Navigated fires when the user follows a link; chrome closes.
	Navigated Event = "navigated"
)

// Transition returns the state after ev. Opening one panel closes the other.
func Transition(s State, ev Event) (State, error) {
	if !s.Valid() {
		return s, fmt.Errorf("unknown navigation state %q", s)
	}

	switch ev {
	case ToggleMenu:
		if s == MenuOpen {
			return Idle, nil
		}
		return MenuOpen, nil
	case ToggleSearch:
		if s == SearchOpen {
			return Idle, nil
		}
		return SearchOpen, nil
	case CloseAll, Navigated:
		return Idle, nil
	}
	return s, fmt.Errorf("unknown navigation event %q", ev)
}

func (s State) Valid() bool {
	switch s {
	case Idle, MenuOpen, SearchOpen:
		return true
	}
	return false
}

func (s State) MenuVisible() bool   { return s == MenuOpen }
func (s State) SearchVisible() bool { return s == SearchOpen }

// View is the JSON form returned to clients.
type View struct {
	State         State `json:"state"`
	MenuVisible   bool  `json:"menu_visible"`
	SearchVisible bool  `json:"search_visible"`
}

func (s State) View() View {
	return View{State: s, MenuVisible: s.MenuVisible(), SearchVisible: s.SearchVisible()}
}

// UnmarshalJSON treats an empty state as Idle.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = Idle
		return nil
	}
	*s = State(raw)
	return nil
}
