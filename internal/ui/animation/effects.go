package animation

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Flash pulses a background rectangle from its colour to highlight and back.
func Flash(background *canvas.Rectangle, highlight color.Color, duration time.Duration) *fyne.Animation {
	base := background.FillColor
	flash := canvas.NewColorRGBAAnimation(base, highlight, duration, func(value color.Color) {
		background.FillColor = value
		canvas.Refresh(background)
	})
	flash.AutoReverse = true
	flash.Curve = fyne.AnimationEaseOut
	flash.Start()
	return flash
}

// FadeIn raises the alpha of text from zero to the alpha of target.
func FadeIn(text *canvas.Text, target color.NRGBA, duration time.Duration) *fyne.Animation {
	fade := fyne.NewAnimation(duration, func(progress float32) {
		value := target
		value.A = fadeAlpha(target.A, progress)
		text.Color = value
		text.Refresh()
	})
	fade.Start()
	return fade
}

func fadeAlpha(alpha uint8, progress float32) uint8 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return alpha
	}
	return uint8(float32(alpha) * progress)
}
