package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/require"
)

func itemByLabel(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu item %q not found", label)
	return nil
}

func TestMenuItemsInvokeCallbacks(t *testing.T) {
	var calls []string
	record := func(name string) func() {
		return func() { calls = append(calls, name) }
	}
	manager := New(nil, Callbacks{
		OnHome:        record("home"),
		OnGame:        record("game"),
		OnPomodoro:    record("pomodoro"),
		OnToggleTimer: record("toggle"),
		OnResetTimer:  record("reset"),
		OnToggleSound: record("sound"),
		OnQuit:        record("quit"),
	})

	menu := manager.Menu()
	for _, label := range []string{"Home", "Tic-Tac-Toe", "Pomodoro", "Start timer", "Reset timer", "Sound", "Preferences", "Quit"} {
		itemByLabel(t, menu, label).Action()
	}
	require.Equal(t, []string{"home", "game", "pomodoro", "toggle", "reset", "sound", "quit"}, calls)
}

func TestStateUpdatesLabels(t *testing.T) {
	manager := New(nil, Callbacks{})
	menu := manager.Menu()
	require.Equal(t, "Pomodoro: paused", menu.Items[0].Label)
	require.True(t, menu.Items[0].Disabled)

	manager.SetStatus("Work 24:59")
	require.Equal(t, "Pomodoro: Work 24:59", menu.Items[0].Label)

	manager.SetRunning(true)
	itemByLabel(t, menu, "Pause timer")
	manager.SetRunning(false)
	itemByLabel(t, menu, "Start timer")

	manager.SetSoundOn(true)
	require.True(t, itemByLabel(t, menu, "Sound").Checked)
	manager.SetSoundOn(false)
	require.False(t, itemByLabel(t, menu, "Sound").Checked)
}
