package timer

import (
	"errors"
	"sync"
	"testing"
	"time"

	"spectro/internal/audio"
	"spectro/internal/core/model"
	"spectro/internal/core/pomodoro"
	"spectro/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

type alarmRecorder struct {
	audio.Nop
	mu       sync.Mutex
	alarms   int
	file     string
	loadFail error
}

func (recorder *alarmRecorder) PlayAlarm() {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.alarms++
}

func (recorder *alarmRecorder) SetAlarmFile(path string) error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	if recorder.loadFail != nil {
		return recorder.loadFail
	}
	recorder.file = path
	return nil
}

func (recorder *alarmRecorder) alarmCount() int {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return recorder.alarms
}

func newTestView(t *testing.T, callbacks Callbacks) (*View, *pomodoro.Timer, *alarmRecorder) {
	t.Helper()
	app := test.NewTempApp(t)
	timer := pomodoro.New(model.DefaultTimerConfig(), pomodoro.Options{TickInterval: time.Hour})
	t.Cleanup(timer.Stop)

	recorder := &alarmRecorder{}
	config := animation.Config{FrameInterval: animation.Range{Min: time.Hour, Max: time.Hour}}
	view := New(app, nil, timer, recorder, []fyne.Resource{fyne.NewStaticResource("frame", nil)}, config, callbacks)
	t.Cleanup(view.Stop)
	return view, timer, recorder
}

func TestInitialDisplay(t *testing.T) {
	view, _, _ := newTestView(t, Callbacks{})

	require.Equal(t, "25:00", view.Clock())
	require.Equal(t, "Work", view.phase.Text)
	require.Equal(t, "Work Duration: 25 mins", view.workLabel.Text)
	require.Equal(t, "Break Duration: 5 mins", view.breakLabel.Text)
	require.False(t, view.startButton.Disabled())
	require.True(t, view.pauseButton.Disabled())
}

func TestStartPauseReset(t *testing.T) {
	view, timer, _ := newTestView(t, Callbacks{})

	test.Tap(view.startButton)
	require.True(t, timer.Snapshot().Running)
	require.Equal(t, "24:59", view.Clock())
	require.True(t, view.startButton.Disabled())
	require.False(t, view.pauseButton.Disabled())

	test.Tap(view.pauseButton)
	require.False(t, timer.Snapshot().Running)
	require.Equal(t, "24:59", view.Clock())

	test.Tap(view.resetButton)
	require.Equal(t, "25:00", view.Clock())
	require.False(t, view.startButton.Disabled())
}

func TestSlidersChangeDurations(t *testing.T) {
	var saved []time.Duration
	view, timer, _ := newTestView(t, Callbacks{
		OnDurations: func(work, brk time.Duration) {
			saved = []time.Duration{work, brk}
		},
	})

	view.workSlider.SetValue(10)
	require.Equal(t, "Work Duration: 10 mins", view.workLabel.Text)
	require.Equal(t, "10:00", view.Clock())

	view.breakSlider.SetValue(15)
	require.Equal(t, "Break Duration: 15 mins", view.breakLabel.Text)
	require.Equal(t, "10:00", view.Clock())
	require.Equal(t, 15*time.Minute, timer.Snapshot().Break)

	view.saveDurations()
	require.Equal(t, []time.Duration{10 * time.Minute, 15 * time.Minute}, saved)
}

func TestSetDurationsClampsToBounds(t *testing.T) {
	view, timer, _ := newTestView(t, Callbacks{})

	view.SetDurations(90*time.Minute, 0)
	snapshot := timer.Snapshot()
	require.Equal(t, 60*time.Minute, snapshot.Work)
	require.Equal(t, time.Minute, snapshot.Break)
	require.Equal(t, "60:00", view.Clock())
}

func TestSelectSound(t *testing.T) {
	var selected string
	view, _, recorder := newTestView(t, Callbacks{
		OnAlarmSound: func(path string) { selected = path },
	})

	require.NoError(t, view.SelectSound("/tmp/alarm.mp3"))
	require.Equal(t, "/tmp/alarm.mp3", recorder.file)
	require.Equal(t, "/tmp/alarm.mp3", selected)
	require.Equal(t, "Music file selected", view.Message())

	recorder.loadFail = audio.ErrUnsupportedFormat
	selected = ""
	err := view.SelectSound("/tmp/alarm.ogg")
	require.True(t, errors.Is(err, audio.ErrUnsupportedFormat))
	require.Empty(t, selected)
}

func TestExpiryPlaysAlarm(t *testing.T) {
	view, timer, recorder := newTestView(t, Callbacks{})
	timer.SetDuration(pomodoro.PhaseWork, 1)

	test.Tap(view.startButton)
	for i := 0; i < 59; i++ {
		timer.Tick()
	}
	require.Equal(t, 0, recorder.alarmCount())

	timer.Tick()
	require.Equal(t, 1, recorder.alarmCount())
	require.Eventually(t, func() bool {
		return view.Message() == "Work time is over. Break starts now."
	}, time.Second, 10*time.Millisecond)
}
