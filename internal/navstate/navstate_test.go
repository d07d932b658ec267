package navstate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitions(t *testing.T) {
	tests := []struct {
		from State
		ev   Event
		want State
	}{
		{Idle, ToggleMenu, MenuOpen},
		{Idle, ToggleSearch, SearchOpen},
		{MenuOpen, ToggleMenu, Idle},
		{MenuOpen, ToggleSearch, SearchOpen},
		{SearchOpen, ToggleMenu, MenuOpen},
		{SearchOpen, ToggleSearch, Idle},
		{SearchOpen, CloseAll, Idle},
		{MenuOpen, Navigated, Idle},
		{Idle, CloseAll, Idle},
	}

	for _, tt := range tests {
		got, err := Transition(tt.from, tt.ev)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s + %s", tt.from, tt.ev)
	}
}

func TestPanelsAreMutuallyExclusive(t *testing.T) {
	events := []Event{ToggleMenu, ToggleSearch, CloseAll, Navigated}
	for _, s := range []State{Idle, MenuOpen, SearchOpen} {
		for _, ev := range events {
			next, err := Transition(s, ev)
			require.NoError(t, err)
			v := next.View()
			assert.False(t, v.MenuVisible && v.SearchVisible)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	_, err := Transition("both-open", ToggleMenu)
	assert.Error(t, err)

	s, err := Transition(MenuOpen, "explode")
	assert.Error(t, err)
	assert.Equal(t, MenuOpen, s)
}

func TestStateJSON(t *testing.T) {
	var body struct {
		State State `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"state":""}`), &body))
	assert.Equal(t, Idle, body.State)

	require.NoError(t, json.Unmarshal([]byte(`{"state":"search-open"}`), &body))
	assert.Equal(t, SearchOpen, body.State)
}
