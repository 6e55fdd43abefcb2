package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Spectro"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnHome        func()
	OnGame        func()
	OnPomodoro    func()
	OnToggleTimer func()
	OnResetTimer  func()
	OnToggleSound func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	timerItem   *fyne.MenuItem
	soundItem   *fyne.MenuItem
	menu        *fyne.Menu
	running     bool
	soundOn     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks. app may be nil when the
// platform has no system tray; the manager then only tracks state.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		statusLabel: "paused",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.timerItem = fyne.NewMenuItem("Start timer", handler(callbacks.OnToggleTimer))
	manager.soundItem = fyne.NewMenuItem("Sound", handler(callbacks.OnToggleSound))

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Home", handler(callbacks.OnHome)),
		fyne.NewMenuItem("Tic-Tac-Toe", handler(callbacks.OnGame)),
		fyne.NewMenuItem("Pomodoro", handler(callbacks.OnPomodoro)),
		fyne.NewMenuItemSeparator(),
		manager.timerItem,
		fyne.NewMenuItem("Reset timer", handler(callbacks.OnResetTimer)),
		manager.soundItem,
		fyne.NewMenuItem("Preferences", handler(callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", handler(callbacks.OnQuit)),
	)
	manager.refreshStatus()

	return manager
}

func handler(callback func()) func() {
	return func() {
		if callback != nil {
			callback()
		}
	}
}

// Menu returns the tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetRunning updates the timer toggle.
func (manager *Manager) SetRunning(running bool) {
	if manager.running == running {
		return
	}
	manager.running = running
	if running {
		manager.timerItem.Label = "Pause timer"
	} else {
		manager.timerItem.Label = "Start timer"
	}
	manager.refreshMenu()
}

// SetSoundOn updates the sound checkbox.
func (manager *Manager) SetSoundOn(soundOn bool) {
	manager.soundOn = soundOn
	manager.soundItem.Checked = soundOn
	manager.refreshMenu()
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Pomodoro: %s", manager.statusLabel)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}
