package home

import (
	"context"

	"spectro/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines navigation handlers.
type Callbacks struct {
	OnGame        func()
	OnPomodoro    func()
	OnPreferences func()
}

// Tiles carries the artwork of the home screen.
type Tiles struct {
	Game           fyne.Resource
	Pomodoro       fyne.Resource
	PomodoroFrames []fyne.Resource
}

// View is the home screen with one tile per feature.
type View struct {
	callbacks Callbacks
	tiles     Tiles
	engine    *animation.Engine

	game     *widget.Button
	pomodoro *widget.Button
	content  fyne.CanvasObject
}

// New builds the home screen. The pomodoro tile cycles through tiles.PomodoroFrames while shown.
func New(tiles Tiles, config animation.Config, callbacks Callbacks) *View {
	view := &View{
		callbacks: callbacks,
		tiles:     tiles,
	}

	view.game = widget.NewButtonWithIcon("Tic-Tac-Toe", tiles.Game, func() {
		if view.callbacks.OnGame != nil {
			view.callbacks.OnGame()
		}
	})
	view.game.IconPlacement = widget.ButtonIconTrailingText
	view.pomodoro = widget.NewButtonWithIcon("Pomodoro", tiles.Pomodoro, func() {
		if view.callbacks.OnPomodoro != nil {
			view.callbacks.OnPomodoro()
		}
	})
	view.pomodoro.IconPlacement = widget.ButtonIconTrailingText
	view.engine = animation.New(config, view.setPomodoroIcon)

	settings := widget.NewButton("Settings", func() {
		if view.callbacks.OnPreferences != nil {
			view.callbacks.OnPreferences()
		}
	})

	title := widget.NewLabelWithStyle("Spectro", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	tilesGrid := container.NewGridWithColumns(2, view.game, view.pomodoro)
	view.content = container.NewBorder(title, container.NewHBox(layout.NewSpacer(), settings), nil, nil, tilesGrid)
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Activate starts the tile animation.
func (view *View) Activate() {
	view.engine.StartLoop(context.Background(), view.tiles.PomodoroFrames)
}

// Deactivate stops the tile animation and restores the still icon.
func (view *View) Deactivate() {
	if !view.engine.Running() {
		return
	}
	view.engine.Show(view.tiles.Pomodoro)
}

func (view *View) setPomodoroIcon(resource fyne.Resource) {
	fyne.Do(func() {
		view.pomodoro.SetIcon(resource)
	})
}
