package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// note is a single synthesized tone.
type note struct {
	Frequency float64
	Duration  time.Duration
}

// toneStreamer returns a sine tone with a short linear fade at both ends so
// playback does not click.
func toneStreamer(sampleRate beep.SampleRate, frequency float64, duration time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	fade := sampleRate.N(5 * time.Millisecond)
	if fade*2 > total {
		fade = total / 2
	}
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && position < total {
			value := math.Sin(2 * math.Pi * frequency * float64(position) / float64(sampleRate))
			value *= envelope(position, total, fade) * 0.4
			samples[n][0] = value
			samples[n][1] = value
			n++
			position++
		}
		return n, true
	})
}

func envelope(position, total, fade int) float64 {
	if fade <= 0 {
		return 1
	}
	if position < fade {
		return float64(position) / float64(fade)
	}
	if tail := total - position; tail < fade {
		return float64(tail) / float64(fade)
	}
	return 1
}

// melody chains notes into one streamer.
func melody(sampleRate beep.SampleRate, notes ...note) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		streamers = append(streamers, toneStreamer(sampleRate, n.Frequency, n.Duration))
	}
	return beep.Seq(streamers...)
}

func effectNotes(effect Effect) []note {
	switch effect {
	case EffectClick:
		return []note{{Frequency: 1200, Duration: 40 * time.Millisecond}}
	case EffectWin:
		return []note{
			{Frequency: 523.25, Duration: 120 * time.Millisecond},
			{Frequency: 659.25, Duration: 120 * time.Millisecond},
			{Frequency: 783.99, Duration: 240 * time.Millisecond},
		}
	case EffectDraw:
		return []note{
			{Frequency: 440, Duration: 180 * time.Millisecond},
			{Frequency: 349.23, Duration: 260 * time.Millisecond},
		}
	default:
		return nil
	}
}

func alarmNotes() []note {
	notes := make([]note, 0, 8)
	for i := 0; i < 4; i++ {
		notes = append(notes,
			note{Frequency: 880, Duration: 150 * time.Millisecond},
			note{Frequency: 0, Duration: 100 * time.Millisecond},
		)
	}
	return notes
}
