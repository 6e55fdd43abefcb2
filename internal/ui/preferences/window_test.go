package preferences

import (
	"testing"
	"time"

	"spectro/internal/core/board"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

func TestSaveCollectsEditedValues(t *testing.T) {
	app := test.NewTempApp(t)

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.soundOn.SetChecked(false)
	prefs.workDur.SetText("40")
	prefs.breakDur.SetText("not a number")
	prefs.opponent.SetSelected(board.OpponentRobot.Label())
	prefs.handleSave()

	require.Len(t, saved, 1)
	require.False(t, saved[0].SoundOn)
	require.Equal(t, 40*time.Minute, saved[0].WorkDuration)
	require.Equal(t, 5*time.Minute, saved[0].BreakDuration)
	require.Equal(t, board.OpponentRobot, saved[0].Opponent)
}

func TestUpdateSettingsFillsFields(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, DefaultSettings(), nil)

	settings := DefaultSettings()
	settings.WorkDuration = 50 * time.Minute
	settings.BreakDuration = 10 * time.Minute
	prefs.UpdateSettings(settings)

	require.Equal(t, "50", prefs.workDur.Text)
	require.Equal(t, "10", prefs.breakDur.Text)
	require.True(t, prefs.soundOn.Checked)
	require.Equal(t, board.OpponentFriend.Label(), prefs.opponent.Selected)
}

func TestSaveClampsOutOfRangeValues(t *testing.T) {
	app := test.NewTempApp(t)

	var saved Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = settings
	})

	prefs.workDur.SetText("500")
	prefs.breakDur.SetText("999")
	prefs.volume.SetValue(40)
	prefs.handleSave()

	require.Equal(t, 60*time.Minute, saved.WorkDuration)
	require.Equal(t, 30*time.Minute, saved.BreakDuration)
	require.Equal(t, 40, saved.Volume)
	require.Equal(t, "60", prefs.workDur.Text)
	require.Equal(t, "30", prefs.breakDur.Text)
}

func TestUpdateSettingsShowsClampedValues(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, DefaultSettings(), nil)

	settings := DefaultSettings()
	settings.WorkDuration = 3 * time.Hour
	settings.Volume = 250
	prefs.UpdateSettings(settings)

	require.Equal(t, "60", prefs.workDur.Text)
	require.Equal(t, float64(MaxVolume), prefs.volume.Value)
}
