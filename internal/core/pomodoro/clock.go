package pomodoro

import (
	"fmt"
	"time"
)

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock provides time-related operations so tests can drive the tick loop.
type Clock interface {
	NewTicker(interval time.Duration) Ticker
	Now() time.Time
}

// SystemClock is the default Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(interval time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(interval)}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type systemTicker struct {
	ticker *time.Ticker
}

func (ticker *systemTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker *systemTicker) Stop() {
	ticker.ticker.Stop()
}

// FormatClock renders a duration as MM:SS. Negative values render as 00:00.
func FormatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value / time.Second)
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
