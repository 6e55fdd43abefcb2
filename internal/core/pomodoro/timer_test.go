package pomodoro

import (
	"sync"
	"testing"
	"time"

	"spectro/internal/core/model"

	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (ticker *fakeTicker) C() <-chan time.Time {
	return ticker.ch
}

func (ticker *fakeTicker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.stopped = true
}

func (ticker *fakeTicker) isStopped() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.stopped
}

type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

func (clock *fakeClock) NewTicker(time.Duration) Ticker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	ticker := &fakeTicker{ch: make(chan time.Time, 1)}
	clock.tickers = append(clock.tickers, ticker)
	return ticker
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) ticker(index int) *fakeTicker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if index >= len(clock.tickers) {
		return nil
	}
	return clock.tickers[index]
}

func newTestTimer(work, breakMinutes int) (*Timer, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	config := model.DefaultTimerConfig()
	config.Work = time.Duration(work) * time.Minute
	config.Break = time.Duration(breakMinutes) * time.Minute
	return New(config, Options{Clock: clock}), clock
}

func TestNewTimerIsPausedInWork(t *testing.T) {
	timer, _ := newTestTimer(25, 5)
	snapshot := timer.Snapshot()
	require.Equal(t, PhaseWork, snapshot.Phase)
	require.False(t, snapshot.Running)
	require.Equal(t, 25*time.Minute, snapshot.Remaining)
}

func TestTickIgnoredWhilePaused(t *testing.T) {
	timer, _ := newTestTimer(1, 1)
	timer.Tick()
	require.Equal(t, time.Minute, timer.Snapshot().Remaining)
}

func TestStartTicksImmediately(t *testing.T) {
	timer, _ := newTestTimer(1, 1)
	timer.Start()
	defer timer.Stop()
	snapshot := timer.Snapshot()
	require.True(t, snapshot.Running)
	require.Equal(t, 59*time.Second, snapshot.Remaining)

	timer.Start()
	require.Equal(t, 59*time.Second, timer.Snapshot().Remaining)
}

func TestPhaseFlipsOnceAfterOneMinute(t *testing.T) {
	timer, _ := newTestTimer(1, 3)
	var expiries []Phase
	timer.SetOnExpire(func(phase Phase) {
		expiries = append(expiries, phase)
	})

	timer.Start()
	defer timer.Stop()
	for i := 0; i < 59; i++ {
		timer.Tick()
	}
	require.Equal(t, PhaseWork, timer.Snapshot().Phase)
	require.Equal(t, time.Duration(0), timer.Snapshot().Remaining)
	require.Empty(t, expiries)

	timer.Tick()
	snapshot := timer.Snapshot()
	require.Equal(t, PhaseBreak, snapshot.Phase)
	require.Equal(t, 3*time.Minute, snapshot.Remaining)
	require.True(t, snapshot.Running)
	require.Equal(t, []Phase{PhaseBreak}, expiries)

	timer.Tick()
	require.Equal(t, 3*time.Minute-time.Second, timer.Snapshot().Remaining)
	require.Len(t, expiries, 1)
}

func TestPauseThenResetRefillsCurrentPhase(t *testing.T) {
	timer, _ := newTestTimer(1, 2)
	timer.Start()
	for i := 0; i < 60; i++ {
		timer.Tick()
	}
	timer.Tick()
	require.Equal(t, PhaseBreak, timer.Snapshot().Phase)

	timer.Pause()
	timer.Reset()
	snapshot := timer.Snapshot()
	require.False(t, snapshot.Running)
	require.Equal(t, PhaseBreak, snapshot.Phase)
	require.Equal(t, 2*time.Minute, snapshot.Remaining)
}

func TestPauseIsIdempotent(t *testing.T) {
	timer, _ := newTestTimer(5, 5)
	events := timer.Subscribe(16)
	timer.Start()
	timer.Tick()
	drain(events)

	timer.Pause()
	once := timer.Snapshot()
	timer.Pause()
	require.Equal(t, once, timer.Snapshot())
	require.False(t, once.Running)
	require.Equal(t, 5*time.Minute-2*time.Second, once.Remaining)

	received := drain(events)
	require.Len(t, received, 1)
	require.Equal(t, EventStateChange, received[0].Type)
	require.False(t, received[0].Running)
}

func TestResumeKeepsRemaining(t *testing.T) {
	timer, _ := newTestTimer(5, 5)
	timer.Start()
	timer.Tick()
	timer.Pause()
	timer.Tick()
	require.Equal(t, 5*time.Minute-2*time.Second, timer.Snapshot().Remaining)

	timer.Start()
	defer timer.Stop()
	require.Equal(t, 5*time.Minute-3*time.Second, timer.Snapshot().Remaining)
}

func TestSetDurationClampsAndRefills(t *testing.T) {
	timer, _ := newTestTimer(25, 5)

	require.Equal(t, 60, timer.SetDuration(PhaseWork, 500))
	require.Equal(t, 60*time.Minute, timer.Snapshot().Remaining)

	require.Equal(t, 1, timer.SetDuration(PhaseWork, 0))
	require.Equal(t, time.Minute, timer.Snapshot().Remaining)

	require.Equal(t, 10, timer.SetDuration(PhaseBreak, 10))
	snapshot := timer.Snapshot()
	require.Equal(t, time.Minute, snapshot.Remaining)
	require.Equal(t, 10*time.Minute, snapshot.Break)
}

func TestSetDurationWhileRunningKeepsRemaining(t *testing.T) {
	timer, _ := newTestTimer(25, 5)
	timer.Start()
	defer timer.Stop()
	timer.SetDuration(PhaseWork, 10)
	snapshot := timer.Snapshot()
	require.Equal(t, 25*time.Minute-time.Second, snapshot.Remaining)
	require.Equal(t, 10*time.Minute, snapshot.Work)

	timer.Reset()
	require.Equal(t, 10*time.Minute, timer.Snapshot().Remaining)
}

func TestTickerChainDrivesAndStops(t *testing.T) {
	timer, clock := newTestTimer(5, 5)
	events := timer.Subscribe(16)
	timer.Start()

	var ticker *fakeTicker
	require.Eventually(t, func() bool {
		ticker = clock.ticker(0)
		return ticker != nil
	}, time.Second, time.Millisecond)

	drain(events)
	ticker.ch <- time.Now()
	require.Eventually(t, func() bool {
		return timer.Snapshot().Remaining == 5*time.Minute-2*time.Second
	}, time.Second, time.Millisecond)

	timer.Pause()
	require.Eventually(t, ticker.isStopped, time.Second, time.Millisecond)

	select {
	case ticker.ch <- time.Now():
	default:
	}
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, 5*time.Minute-2*time.Second, timer.Snapshot().Remaining)
}

func TestStopClosesSubscribers(t *testing.T) {
	timer, _ := newTestTimer(5, 5)
	events := timer.Subscribe(1)
	timer.Stop()
	_, ok := <-events
	require.False(t, ok)

	timer.Start()
	require.False(t, timer.Snapshot().Running)

	late := timer.Subscribe(1)
	_, ok = <-late
	require.False(t, ok)
}

func TestFormatClock(t *testing.T) {
	require.Equal(t, "25:00", FormatClock(25*time.Minute))
	require.Equal(t, "00:59", FormatClock(59*time.Second))
	require.Equal(t, "01:05", FormatClock(65*time.Second))
	require.Equal(t, "00:00", FormatClock(-time.Second))
}

func TestPhaseHelpers(t *testing.T) {
	require.Equal(t, PhaseBreak, PhaseWork.Other())
	require.Equal(t, PhaseWork, PhaseBreak.Other())
	require.Equal(t, "Work", PhaseWork.Label())
	require.Equal(t, "Break", PhaseBreak.Label())
}

func drain(events <-chan Event) []Event {
	var received []Event
	for {
		select {
		case event := <-events:
			received = append(received, event)
		default:
			return received
		}
	}
}

func TestUpdateConfigRefillsPausedTimer(t *testing.T) {
	timer, _ := newTestTimer(25, 5)
	events := timer.Subscribe(4)

	config := model.DefaultTimerConfig()
	config.Work = 500 * time.Minute
	config.Break = 0
	timer.UpdateConfig(config)

	snapshot := timer.Snapshot()
	require.Equal(t, 60*time.Minute, snapshot.Work)
	require.Equal(t, time.Minute, snapshot.Break)
	require.Equal(t, 60*time.Minute, snapshot.Remaining)

	event := <-events
	require.Equal(t, EventStateChange, event.Type)
	require.Equal(t, 60*time.Minute, event.Remaining)
	require.False(t, event.Running)
}

func TestUpdateConfigKeepsRunningCountdown(t *testing.T) {
	timer, _ := newTestTimer(25, 5)
	timer.Start()
	defer timer.Stop()
	require.Equal(t, 25*time.Minute-time.Second, timer.Snapshot().Remaining)

	config := model.DefaultTimerConfig()
	config.Work = 10 * time.Minute
	config.Break = 2 * time.Minute
	timer.UpdateConfig(config)

	snapshot := timer.Snapshot()
	require.True(t, snapshot.Running)
	require.Equal(t, 25*time.Minute-time.Second, snapshot.Remaining)
	require.Equal(t, 10*time.Minute, snapshot.Work)
	require.Equal(t, 2*time.Minute, snapshot.Break)
}
