package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnsupportedFormat indicates an alarm file that is neither WAV nor MP3.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// DefaultSampleRate is used for the speaker and all synthesized sounds.
const DefaultSampleRate = beep.SampleRate(44100)

// Effect identifies a short UI sound.
type Effect int

const (
	EffectClick Effect = iota
	EffectWin
	EffectDraw
)

// Player plays UI effects and the pomodoro alarm.
type Player interface {
	PlayEffect(effect Effect)
	PlayAlarm()
	StopAlarm()
	SetEnabled(enabled bool)
	SetAlarmFile(path string) error
}

// Output is the audio device. The speaker package is the default.
type Output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(streamer beep.Streamer)
	Clear()
}

type speakerOutput struct{}

func (speakerOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	return speaker.Init(sampleRate, bufferSize)
}

func (speakerOutput) Play(streamer beep.Streamer) {
	speaker.Play(streamer)
}

func (speakerOutput) Clear() {
	speaker.Clear()
}

// Engine plays sounds through beep. Device or decode failures are logged and the
// sound is skipped.
type Engine struct {
	mu         sync.Mutex
	output     Output
	sampleRate beep.SampleRate
	enabled    bool
	volume     int
	ready      bool
	initOnce   sync.Once
	alarm      *beep.Buffer
	alarmPath  string
}

// NewEngine creates an engine on the system speaker.
func NewEngine(enabled bool) *Engine {
	return NewEngineWithOutput(speakerOutput{}, enabled)
}

// NewEngineWithOutput creates an engine on a custom output.
func NewEngineWithOutput(output Output, enabled bool) *Engine {
	return &Engine{
		output:     output,
		sampleRate: DefaultSampleRate,
		enabled:    enabled,
		volume:     100,
	}
}

// SetEnabled toggles UI effects. The alarm is not affected.
func (engine *Engine) SetEnabled(enabled bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.enabled = enabled
}

// Enabled reports whether UI effects are played.
func (engine *Engine) Enabled() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.enabled
}

// SetVolume sets the output level in percent of full scale. 0 mutes everything,
// the alarm included.
func (engine *Engine) SetVolume(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.volume = percent
}

// PlayEffect plays a UI effect when sound is on.
func (engine *Engine) PlayEffect(effect Effect) {
	notes := effectNotes(effect)
	if len(notes) == 0 || !engine.Enabled() {
		return
	}
	engine.play(melody(engine.sampleRate, notes...))
}

// PlayAlarm plays the selected alarm file, or a built-in beep pattern.
func (engine *Engine) PlayAlarm() {
	engine.mu.Lock()
	alarm := engine.alarm
	engine.mu.Unlock()

	if alarm != nil {
		engine.play(alarm.Streamer(0, alarm.Len()))
		return
	}
	engine.play(melody(engine.sampleRate, alarmNotes()...))
}

// StopAlarm silences everything currently playing.
func (engine *Engine) StopAlarm() {
	if !engine.ensureReady() {
		return
	}
	engine.output.Clear()
}

// AlarmFile returns the path of the loaded alarm, if any.
func (engine *Engine) AlarmFile() string {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.alarmPath
}

// SetAlarmFile decodes a WAV or MP3 file into memory. An empty path restores the
// built-in alarm.
func (engine *Engine) SetAlarmFile(path string) error {
	if path == "" {
		engine.mu.Lock()
		engine.alarm = nil
		engine.alarmPath = ""
		engine.mu.Unlock()
		return nil
	}

	buffer, err := decodeFile(path, engine.sampleRate)
	if err != nil {
		return err
	}

	engine.mu.Lock()
	engine.alarm = buffer
	engine.alarmPath = path
	engine.mu.Unlock()
	return nil
}

func (engine *Engine) play(streamer beep.Streamer) {
	if !engine.ensureReady() {
		return
	}
	engine.mu.Lock()
	volume := engine.volume
	engine.mu.Unlock()

	engine.output.Play(withVolume(streamer, volume))
}

// withVolume maps percent onto beep's base-2 gain, so 50 halves every sample.
func withVolume(streamer beep.Streamer, percent int) beep.Streamer {
	return &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   math.Log2(float64(percent) / 100),
		Silent:   percent <= 0,
	}
}

func (engine *Engine) ensureReady() bool {
	engine.initOnce.Do(func() {
		err := engine.output.Init(engine.sampleRate, engine.sampleRate.N(time.Second/10))
		if err != nil {
			log.Printf("audio: init speaker: %v", err)
			return
		}
		engine.mu.Lock()
		engine.ready = true
		engine.mu.Unlock()
	})
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.ready
}

func decodeFile(path string, sampleRate beep.SampleRate) (*beep.Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alarm file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(file)
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	default:
		_ = file.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		source = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(source)
	return buffer, nil
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) PlayEffect(Effect) {}

func (Nop) PlayAlarm() {}

func (Nop) StopAlarm() {}

func (Nop) SetEnabled(bool) {}

func (Nop) SetAlarmFile(string) error { return nil }
