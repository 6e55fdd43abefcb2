package resources

import (
	"embed"
	"fmt"
	"math"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
)

const iconDir = "icons/"

//go:embed icons/*.svg
var iconFS embed.FS

var iconCache sync.Map
var clockCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	path := iconDir + fileName
	if cached, ok := iconCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := iconFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(fileName, data)
	iconCache.Store(path, resource)
	return resource, nil
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// ClockFrames returns count frames of a clock face whose hand sweeps one full turn.
func ClockFrames(count int) []fyne.Resource {
	if count <= 0 {
		count = 1
	}
	if cached, ok := clockCache.Load(count); ok {
		return cached.([]fyne.Resource)
	}

	frames := make([]fyne.Resource, count)
	for index := range frames {
		angle := 2 * math.Pi * float64(index) / float64(count)
		name := fmt.Sprintf("clock_%02d_of_%02d.svg", index, count)
		frames[index] = fyne.NewStaticResource(name, []byte(clockFace(angle)))
	}
	clockCache.Store(count, frames)
	return frames
}

func clockFace(angle float64) string {
	const (
		center = 64.0
		hand   = 40.0
	)
	handX := center + hand*math.Sin(angle)
	handY := center - hand*math.Cos(angle)

	var ticks strings.Builder
	for mark := 0; mark < 12; mark++ {
		tickAngle := 2 * math.Pi * float64(mark) / 12
		fmt.Fprintf(&ticks, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`,
			center+50*math.Sin(tickAngle), center-50*math.Cos(tickAngle),
			center+56*math.Sin(tickAngle), center-56*math.Cos(tickAngle))
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="128" height="128" viewBox="0 0 128 128">`+
		`<circle cx="64" cy="64" r="60" fill="#e53935"/>`+
		`<g stroke="#ffffff" stroke-width="3" stroke-linecap="round">%s</g>`+
		`<line x1="64" y1="64" x2="%.1f" y2="%.1f" stroke="#ffffff" stroke-width="6" stroke-linecap="round"/>`+
		`<circle cx="64" cy="64" r="5" fill="#ffffff"/>`+
		`</svg>`, ticks.String(), handX, handY)
}
