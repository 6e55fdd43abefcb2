package animation

import "time"

// DefaultConfig returns timings tuned for the pomodoro clock and button feedback.
func DefaultConfig() Config {
	return Config{
		FrameInterval: Range{
			Min: 110 * time.Millisecond,
			Max: 140 * time.Millisecond,
		},
		FlashDuration: 120 * time.Millisecond,
		FadeDuration:  400 * time.Millisecond,
	}
}
