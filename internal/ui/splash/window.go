package splash

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// DefaultDelay is how long the splash stays up.
const DefaultDelay = time.Second

// Config defines splash visuals.
type Config struct {
	Title    string
	Subtitle string
	Logo     fyne.Resource
	Opacity  uint8
	Delay    time.Duration
	FadeOut  time.Duration
}

// Window manages the splash UI.
type Window struct {
	window     fyne.Window
	background *canvas.Rectangle
	config     Config
	native     nativeWindow

	once  sync.Once
	timer *time.Timer
}

const (
	splashWidth  = float32(360)
	splashHeight = float32(240)
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the splash window without showing it.
func New(app fyne.App, config Config) *Window {
	if config.Delay <= 0 {
		config.Delay = DefaultDelay
	}
	if config.Opacity == 0 {
		config.Opacity = 255
	}

	window := app.NewWindow(config.Title)
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 20, G: 24, B: 33, A: config.Opacity})

	logo := canvas.NewImageFromResource(config.Logo)
	logo.FillMode = canvas.ImageFillContain

	title := canvas.NewText(config.Title, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 26

	subtitle := canvas.NewText(config.Subtitle, color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	subtitle.Alignment = fyne.TextAlignCenter
	subtitle.TextSize = 14

	content := container.New(&splashLayout{}, logo, title, subtitle)
	window.SetContent(container.NewStack(background, content))
	window.Resize(fyne.NewSize(splashWidth, splashHeight))

	return &Window{
		window:     window,
		background: background,
		config:     config,
	}
}

// Show displays the splash and calls onDone on the UI thread once the delay and
// the fade-out have passed.
func (splash *Window) Show(onDone func()) {
	splash.window.CenterOnScreen()
	splash.window.Show()
	if splash.config.Opacity < 255 {
		splash.applyNativeOpacity(splash.config.Opacity)
	}

	splash.timer = time.AfterFunc(splash.config.Delay, func() {
		fyne.Do(func() {
			splash.fadeOut(onDone)
		})
	})
}

// Skip closes the splash immediately.
func (splash *Window) Skip(onDone func()) {
	if splash.timer != nil {
		splash.timer.Stop()
	}
	splash.finish(onDone)
}

func (splash *Window) fadeOut(onDone func()) {
	if splash.config.FadeOut <= 0 {
		splash.finish(onDone)
		return
	}
	fade := fyne.NewAnimation(splash.config.FadeOut, func(progress float32) {
		splash.setAlpha(fadedAlpha(splash.config.Opacity, progress))
		if progress >= 1 {
			splash.finish(onDone)
		}
	})
	fade.Start()
	// The last animation frame may be skipped when the window is already hidden.
	time.AfterFunc(splash.config.FadeOut+100*time.Millisecond, func() {
		fyne.Do(func() {
			splash.finish(onDone)
		})
	})
}

func (splash *Window) setAlpha(alpha uint8) {
	fill := splash.background.FillColor.(color.NRGBA)
	fill.A = alpha
	splash.background.FillColor = fill
	splash.background.Refresh()
	splash.applyNativeOpacity(alpha)
}

func fadedAlpha(alpha uint8, progress float32) uint8 {
	if progress <= 0 {
		return alpha
	}
	if progress >= 1 {
		return 0
	}
	return uint8(float32(alpha) * (1 - progress))
}

func (splash *Window) finish(onDone func()) {
	splash.once.Do(func() {
		splash.window.Close()
		if onDone != nil {
			onDone()
		}
	})
}

type splashLayout struct{}

func (layout *splashLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	logo := objects[0]
	title := objects[1]
	subtitle := objects[2]

	pad := size.Height * 0.08
	titleSize := title.MinSize()
	subtitleSize := subtitle.MinSize()

	subtitleY := size.Height - pad - subtitleSize.Height
	titleY := subtitleY - 6 - titleSize.Height
	logoSide := titleY - pad*2
	if logoSide > size.Width-pad*2 {
		logoSide = size.Width - pad*2
	}
	if logoSide < 0 {
		logoSide = 0
	}

	logo.Move(fyne.NewPos((size.Width-logoSide)/2, pad))
	logo.Resize(fyne.NewSize(logoSide, logoSide))
	title.Move(fyne.NewPos(0, titleY))
	title.Resize(fyne.NewSize(size.Width, titleSize.Height))
	subtitle.Move(fyne.NewPos(0, subtitleY))
	subtitle.Resize(fyne.NewSize(size.Width, subtitleSize.Height))
}

func (layout *splashLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	logoMin := objects[0].MinSize()
	titleMin := objects[1].MinSize()
	subtitleMin := objects[2].MinSize()

	width := titleMin.Width
	if subtitleMin.Width > width {
		width = subtitleMin.Width
	}
	if logoMin.Width > width {
		width = logoMin.Width
	}
	height := logoMin.Height + titleMin.Height + subtitleMin.Height + 40
	return fyne.NewSize(width+20, height)
}
