package pomodoro

import "time"

// Phase is the half of the pomodoro cycle the timer is counting down.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Other returns the phase that follows.
func (phase Phase) Other() Phase {
	if phase == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// Label returns the display name of the phase.
func (phase Phase) Label() string {
	if phase == PhaseBreak {
		return "Break"
	}
	return "Work"
}

// EventType defines the type of Timer event.
type EventType string

const (
	EventTick        EventType = "tick"
	EventPhaseChange EventType = "phase_change"
	EventStateChange EventType = "state_change"
	EventExpired     EventType = "expired"
)

// Event represents a Timer update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Remaining time.Duration
	Running   bool
	At        time.Time
}

// Snapshot is a consistent copy of the timer state.
type Snapshot struct {
	Phase     Phase
	Remaining time.Duration
	Running   bool
	Work      time.Duration
	Break     time.Duration
}
