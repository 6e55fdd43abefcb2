package pomodoro

import (
	"sync"
	"time"

	"spectro/internal/core/model"
)

// step is the amount of time removed by one tick.
const step = time.Second

// Options contains runtime options for Timer.
type Options struct {
	TickInterval time.Duration
	Clock        Clock
}

// Timer is a work/break countdown state machine.
//
// Every Start opens a new tick chain with its own stop channel; Pause, Reset and Stop
// close it and bump the generation so a tick already in flight is dropped.
type Timer struct {
	mu         sync.Mutex
	config     model.TimerConfig
	options    Options
	phase      Phase
	remaining  time.Duration
	running    bool
	closed     bool
	generation uint64
	stopCh     chan struct{}
	events     []chan Event
	onExpire   func(Phase)
}

// New creates a paused Timer in the work phase.
func New(config model.TimerConfig, options Options) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}

	timer := &Timer{
		config:  normalizeConfig(config),
		options: options,
		phase:   PhaseWork,
	}
	timer.remaining = timer.durationLocked(PhaseWork)
	return timer
}

// SetOnExpire registers the handler fired once per phase expiry with the new phase.
func (timer *Timer) SetOnExpire(handler func(Phase)) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.onExpire = handler
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		close(ch)
		return ch
	}
	timer.events = append(timer.events, ch)
	return ch
}

// Snapshot returns the current state.
func (timer *Timer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return Snapshot{
		Phase:     timer.phase,
		Remaining: timer.remaining,
		Running:   timer.running,
		Work:      timer.config.Work,
		Break:     timer.config.Break,
	}
}

// Start begins counting down. The first tick happens immediately.
func (timer *Timer) Start() {
	timer.mu.Lock()
	if timer.running || timer.closed {
		timer.mu.Unlock()
		return
	}
	timer.running = true
	timer.generation++
	generation := timer.generation
	stopCh := make(chan struct{})
	timer.stopCh = stopCh
	timer.emitStateLocked()
	timer.mu.Unlock()

	timer.advance(generation)
	go timer.run(generation, stopCh)
}

// Pause halts the tick chain and keeps the remaining time.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if !timer.running {
		return
	}
	timer.haltLocked()
	timer.emitStateLocked()
}

// Reset halts the tick chain and refills the current phase. The phase is kept.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.haltLocked()
	timer.remaining = timer.durationLocked(timer.phase)
	timer.emitStateLocked()
}

// SetDuration configures the length of a phase in minutes, clamped to the phase
// bounds. It returns the minutes actually applied.
func (timer *Timer) SetDuration(phase Phase, minutes int) int {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	var applied int
	if phase == PhaseBreak {
		applied = timer.config.BreakBounds.Clamp(minutes)
		timer.config.Break = time.Duration(applied) * time.Minute
	} else {
		applied = timer.config.WorkBounds.Clamp(minutes)
		timer.config.Work = time.Duration(applied) * time.Minute
	}

	if !timer.running && phase == timer.phase {
		timer.remaining = timer.durationLocked(phase)
		timer.emitStateLocked()
	}
	return applied
}

// UpdateConfig replaces both phase durations. A paused timer refills the current phase.
func (timer *Timer) UpdateConfig(config model.TimerConfig) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.config = normalizeConfig(config)
	if !timer.running {
		timer.remaining = timer.durationLocked(timer.phase)
		timer.emitStateLocked()
	}
}

// Tick advances the countdown by one step if the timer is running.
func (timer *Timer) Tick() {
	timer.mu.Lock()
	generation := timer.generation
	timer.mu.Unlock()
	timer.advance(generation)
}

// Stop halts the timer for good and closes observers.
func (timer *Timer) Stop() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		return
	}
	timer.haltLocked()
	timer.closed = true
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (timer *Timer) run(generation uint64, stopCh <-chan struct{}) {
	ticker := timer.options.Clock.NewTicker(timer.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			timer.advance(generation)
		}
	}
}

func (timer *Timer) advance(generation uint64) {
	timer.mu.Lock()
	if !timer.running || generation != timer.generation {
		timer.mu.Unlock()
		return
	}

	now := timer.options.Clock.Now()
	if timer.remaining > 0 {
		timer.remaining -= step
		if timer.remaining < 0 {
			timer.remaining = 0
		}
		timer.emitLocked(Event{
			Type:      EventTick,
			Phase:     timer.phase,
			Remaining: timer.remaining,
			Running:   true,
			At:        now,
		})
		timer.mu.Unlock()
		return
	}

	timer.phase = timer.phase.Other()
	timer.remaining = timer.durationLocked(timer.phase)
	phase := timer.phase
	handler := timer.onExpire
	timer.emitLocked(Event{
		Type:      EventPhaseChange,
		Phase:     phase,
		Remaining: timer.remaining,
		Running:   true,
		At:        now,
	})
	timer.emitLocked(Event{
		Type:      EventExpired,
		Phase:     phase,
		Remaining: timer.remaining,
		Running:   true,
		At:        now,
	})
	timer.mu.Unlock()

	if handler != nil {
		handler(phase)
	}
}

func (timer *Timer) haltLocked() {
	timer.running = false
	timer.generation++
	if timer.stopCh != nil {
		close(timer.stopCh)
		timer.stopCh = nil
	}
}

func (timer *Timer) durationLocked(phase Phase) time.Duration {
	if phase == PhaseBreak {
		return timer.config.Break
	}
	return timer.config.Work
}

func (timer *Timer) emitStateLocked() {
	timer.emitLocked(Event{
		Type:      EventStateChange,
		Phase:     timer.phase,
		Remaining: timer.remaining,
		Running:   timer.running,
		At:        timer.options.Clock.Now(),
	})
}

func (timer *Timer) emitLocked(event Event) {
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func normalizeConfig(config model.TimerConfig) model.TimerConfig {
	if config.WorkBounds == (model.Bounds{}) {
		config.WorkBounds = model.WorkBounds
	}
	if config.BreakBounds == (model.Bounds{}) {
		config.BreakBounds = model.BreakBounds
	}
	config.Work = clampDuration(config.Work, config.WorkBounds)
	config.Break = clampDuration(config.Break, config.BreakBounds)
	return config
}

func clampDuration(value time.Duration, bounds model.Bounds) time.Duration {
	minutes := bounds.Clamp(int(value / time.Minute))
	return time.Duration(minutes) * time.Minute
}
