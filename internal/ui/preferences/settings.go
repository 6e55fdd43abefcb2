package preferences

import (
	"time"

	"spectro/internal/core/board"
	"spectro/internal/core/model"
)

// Volume limits, in percent of full scale.
const (
	MinVolume = 0
	MaxVolume = 100
)

// Settings defines editable user preferences.
type Settings struct {
	SoundOn bool
	Volume  int

	WorkDuration  time.Duration
	BreakDuration time.Duration
	AlarmSound    string

	Opponent board.Opponent
}

// DefaultSettings returns default settings for Spectro.
func DefaultSettings() Settings {
	return Settings{
		SoundOn:       true,
		Volume:        MaxVolume,
		WorkDuration:  25 * time.Minute,
		BreakDuration: 5 * time.Minute,
		Opponent:      board.OpponentFriend,
	}
}

// Normalized returns a copy with durations clamped to the slider bounds and the
// volume clamped to 0-100.
func (settings Settings) Normalized() Settings {
	config := settings.TimerConfig()
	settings.WorkDuration = config.Work
	settings.BreakDuration = config.Break
	settings.Volume = ClampVolume(settings.Volume)
	return settings
}

// ClampVolume forces percent into the volume range.
func ClampVolume(percent int) int {
	if percent < MinVolume {
		return MinVolume
	}
	if percent > MaxVolume {
		return MaxVolume
	}
	return percent
}

// TimerConfig converts settings to TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	config := model.DefaultTimerConfig()
	config.Work = time.Duration(config.WorkBounds.Clamp(int(settings.WorkDuration/time.Minute))) * time.Minute
	config.Break = time.Duration(config.BreakBounds.Clamp(int(settings.BreakDuration/time.Minute))) * time.Minute
	return config
}
