package preferences

import (
	"fmt"
	"strconv"
	"time"

	"spectro/internal/core/board"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	soundOn  *widget.Check
	volume   *widget.Slider
	workDur  *widget.Entry
	breakDur *widget.Entry
	opponent *widget.RadioGroup
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Spectro Settings")

	soundOn := widget.NewCheck("Sound effects", nil)
	volume := widget.NewSlider(MinVolume, MaxVolume)
	volume.Step = 5
	workDur := widget.NewEntry()
	breakDur := widget.NewEntry()
	opponent := widget.NewRadioGroup([]string{
		board.OpponentFriend.Label(),
		board.OpponentRobot.Label(),
	}, nil)
	opponent.Required = true

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		soundOn,
		container.NewBorder(nil, nil, widget.NewLabel("Volume"), nil, volume),
		widget.NewLabelWithStyle("Pomodoro", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work duration"), workDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break duration"), breakDur, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Tic-Tac-Toe", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		opponent,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 380))

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		soundOn:  soundOn,
		volume:   volume,
		workDur:  workDur,
		breakDur: breakDur,
		opponent: opponent,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	settings = settings.Normalized()
	prefs.settings = settings
	prefs.soundOn.SetChecked(settings.SoundOn)
	prefs.volume.SetValue(float64(settings.Volume))
	prefs.workDur.SetText(fmt.Sprintf("%d", int(settings.WorkDuration.Minutes())))
	prefs.breakDur.SetText(fmt.Sprintf("%d", int(settings.BreakDuration.Minutes())))
	prefs.opponent.SetSelected(settings.Opponent.Label())
}

func (prefs *Window) handleSave() {
	settings := prefs.collect()
	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) collect() Settings {
	settings := prefs.settings
	settings.SoundOn = prefs.soundOn.Checked
	settings.Volume = int(prefs.volume.Value)

	if minutes, ok := parsePositiveInt(prefs.workDur.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.breakDur.Text); ok {
		settings.BreakDuration = time.Duration(minutes) * time.Minute
	}
	if prefs.opponent.Selected == board.OpponentRobot.Label() {
		settings.Opponent = board.OpponentRobot
	} else {
		settings.Opponent = board.OpponentFriend
	}
	return settings.Normalized()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
