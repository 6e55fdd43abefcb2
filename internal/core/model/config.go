package model

import "time"

// Bounds limits a configurable duration, in whole minutes.
type Bounds struct {
	MinMinutes int
	MaxMinutes int
}

// Clamp forces minutes into the bounds.
func (bounds Bounds) Clamp(minutes int) int {
	if minutes < bounds.MinMinutes {
		return bounds.MinMinutes
	}
	if bounds.MaxMinutes > 0 && minutes > bounds.MaxMinutes {
		return bounds.MaxMinutes
	}
	return minutes
}

// Default slider ranges for the two phases.
var (
	WorkBounds  = Bounds{MinMinutes: 1, MaxMinutes: 60}
	BreakBounds = Bounds{MinMinutes: 1, MaxMinutes: 30}
)

// TimerConfig contains runtime settings for the pomodoro state machine.
type TimerConfig struct {
	Work  time.Duration
	Break time.Duration

	WorkBounds  Bounds
	BreakBounds Bounds
}

// DefaultTimerConfig returns a 25/5 minute cycle.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:        25 * time.Minute,
		Break:       5 * time.Minute,
		WorkBounds:  WorkBounds,
		BreakBounds: BreakBounds,
	}
}
