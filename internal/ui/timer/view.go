package timer

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	"spectro/internal/audio"
	"spectro/internal/core/model"
	"spectro/internal/core/pomodoro"
	"spectro/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const soundSelectedMessage = "Music file selected"

var clockColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}

// Callbacks defines navigation and persistence hooks.
type Callbacks struct {
	OnExit       func()
	OnDurations  func(work, brk time.Duration)
	OnAlarmSound func(path string)
}

// View is the pomodoro screen.
type View struct {
	app       fyne.App
	window    fyne.Window
	timer     *pomodoro.Timer
	player    audio.Player
	engine    *animation.Engine
	frames    []fyne.Resource
	callbacks Callbacks

	clock       *canvas.Text
	phase       *widget.Label
	message     *widget.Label
	sprite      *canvas.Image
	workLabel   *widget.Label
	breakLabel  *widget.Label
	workSlider  *widget.Slider
	breakSlider *widget.Slider
	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	content     fyne.CanvasObject

	animating bool
}

// New builds the pomodoro screen around timer. The expiry handler of timer is taken over by the view.
func New(app fyne.App, window fyne.Window, timer *pomodoro.Timer, player audio.Player, frames []fyne.Resource, config animation.Config, callbacks Callbacks) *View {
	if player == nil {
		player = audio.Nop{}
	}
	view := &View{
		app:       app,
		window:    window,
		timer:     timer,
		player:    player,
		frames:    frames,
		callbacks: callbacks,
		phase:     widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		message:   widget.NewLabel(""),
		sprite:    canvas.NewImageFromResource(nil),
	}
	view.engine = animation.New(config, view.setSprite)
	view.sprite.FillMode = canvas.ImageFillContain
	view.sprite.SetMinSize(fyne.NewSize(96, 96))

	view.clock = canvas.NewText("", clockColor)
	view.clock.TextSize = 48
	view.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.clock.Alignment = fyne.TextAlignCenter

	snapshot := timer.Snapshot()
	view.workLabel = widget.NewLabel("")
	view.breakLabel = widget.NewLabel("")
	view.workSlider = newDurationSlider(model.WorkBounds, snapshot.Work)
	view.breakSlider = newDurationSlider(model.BreakBounds, snapshot.Break)
	view.workSlider.OnChanged = func(value float64) {
		view.setDuration(pomodoro.PhaseWork, int(value))
	}
	view.breakSlider.OnChanged = func(value float64) {
		view.setDuration(pomodoro.PhaseBreak, int(value))
	}
	view.workSlider.OnChangeEnded = func(float64) { view.saveDurations() }
	view.breakSlider.OnChangeEnded = func(float64) { view.saveDurations() }

	view.startButton = widget.NewButton("Start", view.Start)
	view.startButton.Importance = widget.HighImportance
	view.pauseButton = widget.NewButton("Pause", view.Pause)
	view.resetButton = widget.NewButton("Reset", view.Reset)
	selectButton := widget.NewButton("Select Sound", view.ShowSoundPicker)
	stopButton := widget.NewButton("Stop Sound", view.player.StopAlarm)
	backButton := widget.NewButton("Back", func() {
		if view.callbacks.OnExit != nil {
			view.callbacks.OnExit()
		}
	})

	timer.SetOnExpire(view.handleExpire)

	header := container.NewHBox(backButton, layout.NewSpacer(), view.phase)
	display := container.NewVBox(view.sprite, view.clock)
	durations := container.NewVBox(
		view.workLabel, view.workSlider,
		view.breakLabel, view.breakSlider,
	)
	controls := container.NewVBox(
		container.NewGridWithColumns(3, view.startButton, view.pauseButton, view.resetButton),
		container.NewGridWithColumns(2, selectButton, stopButton),
		view.message,
	)
	view.content = container.NewBorder(header, controls, nil, nil, container.NewVBox(display, durations))

	view.refresh()
	return view
}

func newDurationSlider(bounds model.Bounds, value time.Duration) *widget.Slider {
	slider := widget.NewSlider(float64(bounds.MinMinutes), float64(bounds.MaxMinutes))
	slider.Step = 1
	slider.Value = float64(bounds.Clamp(int(value / time.Minute)))
	return slider
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Clock returns the displayed countdown.
func (view *View) Clock() string {
	return view.clock.Text
}

// Message returns the last feedback message.
func (view *View) Message() string {
	return view.message.Text
}

// Start resumes the countdown.
func (view *View) Start() {
	view.timer.Start()
	view.refresh()
}

// Pause halts the countdown.
func (view *View) Pause() {
	view.timer.Pause()
	view.refresh()
}

// Reset halts the countdown and refills the current phase.
func (view *View) Reset() {
	view.timer.Reset()
	view.refresh()
}

// SetDurations moves both sliders, e.g. after preferences were saved elsewhere.
func (view *View) SetDurations(work, brk time.Duration) {
	view.workSlider.SetValue(float64(model.WorkBounds.Clamp(int(work / time.Minute))))
	view.breakSlider.SetValue(float64(model.BreakBounds.Clamp(int(brk / time.Minute))))
	view.refresh()
}

// Bind applies timer events to the screen until the subscription is closed.
func (view *View) Bind(events <-chan pomodoro.Event) {
	go func() {
		for range events {
			fyne.Do(view.refresh)
		}
	}()
}

// ShowSoundPicker opens a file dialog limited to WAV and MP3 files.
func (view *View) ShowSoundPicker() {
	if view.window == nil {
		return
	}
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, view.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		if err := view.SelectSound(path); err != nil {
			dialog.ShowError(err, view.window)
		}
	}, view.window)
	picker.SetFilter(storage.NewExtensionFileFilter([]string{".wav", ".mp3"}))
	picker.Show()
}

// SelectSound loads path as the alarm.
func (view *View) SelectSound(path string) error {
	if err := view.player.SetAlarmFile(path); err != nil {
		log.Printf("alarm sound: %v", err)
		return fmt.Errorf("select sound: %w", err)
	}
	view.message.SetText(soundSelectedMessage)
	if view.callbacks.OnAlarmSound != nil {
		view.callbacks.OnAlarmSound(path)
	}
	return nil
}

// Stop ends the clock animation.
func (view *View) Stop() {
	view.engine.Stop()
	view.animating = false
}

func (view *View) setDuration(phase pomodoro.Phase, minutes int) {
	view.timer.SetDuration(phase, minutes)
	view.refresh()
}

func (view *View) saveDurations() {
	if view.callbacks.OnDurations == nil {
		return
	}
	snapshot := view.timer.Snapshot()
	view.callbacks.OnDurations(snapshot.Work, snapshot.Break)
}

func (view *View) handleExpire(next pomodoro.Phase) {
	view.player.PlayAlarm()
	fyne.Do(func() {
		message := fmt.Sprintf("%s time is over. %s starts now.", next.Other().Label(), next.Label())
		view.message.SetText(message)
		if view.app != nil {
			view.app.SendNotification(fyne.NewNotification("Pomodoro", message))
		}
	})
}

func (view *View) refresh() {
	snapshot := view.timer.Snapshot()
	view.clock.Text = pomodoro.FormatClock(snapshot.Remaining)
	view.clock.Refresh()
	view.phase.SetText(snapshot.Phase.Label())
	view.workLabel.SetText(fmt.Sprintf("Work Duration: %d mins", int(snapshot.Work/time.Minute)))
	view.breakLabel.SetText(fmt.Sprintf("Break Duration: %d mins", int(snapshot.Break/time.Minute)))

	if snapshot.Running {
		view.startButton.Disable()
		view.pauseButton.Enable()
	} else {
		view.startButton.Enable()
		view.pauseButton.Disable()
	}
	view.animate(snapshot.Running)
}

func (view *View) animate(running bool) {
	if len(view.frames) == 0 {
		return
	}
	if running && !view.animating {
		view.animating = true
		view.engine.StartLoop(context.Background(), view.frames)
		return
	}
	if !running && (view.animating || view.sprite.Resource == nil) {
		view.animating = false
		view.engine.Show(view.frames[0])
	}
}

func (view *View) setSprite(resource fyne.Resource) {
	fyne.Do(func() {
		view.sprite.Resource = resource
		view.sprite.Refresh()
	})
}
