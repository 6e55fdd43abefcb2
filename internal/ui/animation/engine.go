package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains animation timing values.
type Config struct {
	FrameInterval Range

	FlashDuration time.Duration
	FadeDuration  time.Duration
}

// Engine cycles sprite frames until its context is cancelled.
type Engine struct {
	mu          sync.Mutex
	config      Config
	updateFrame func(fyne.Resource)
	cancel      context.CancelFunc
	rng         *rand.Rand
}

// New creates a new animation engine.
func New(config Config, updateFrame func(fyne.Resource)) *Engine {
	return &Engine{
		config:      config,
		updateFrame: updateFrame,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartLoop shows frames in order, wrapping around, until ctx is done or Stop is called.
func (engine *Engine) StartLoop(ctx context.Context, frames []fyne.Resource) {
	if len(frames) == 0 {
		return
	}
	engine.start(ctx, func(runCtx context.Context) {
		for index := 0; runCtx.Err() == nil; index = (index + 1) % len(frames) {
			engine.updateFrame(frames[index])
			if !sleepWithContext(runCtx, engine.interval()) {
				return
			}
		}
	})
}

// Show stops any loop and shows a single frame.
func (engine *Engine) Show(frame fyne.Resource) {
	engine.Stop()
	engine.updateFrame(frame)
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// Running reports whether a loop is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

func (engine *Engine) interval() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.config.FrameInterval.Random(engine.rng)
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
