package main

import (
	"log"
	"time"

	"spectro/internal/audio"
	"spectro/internal/core/board"
	"spectro/internal/core/pomodoro"
	"spectro/internal/platform"
	"spectro/internal/storage"
	"spectro/internal/ui/animation"
	"spectro/internal/ui/game"
	"spectro/internal/ui/home"
	"spectro/internal/ui/preferences"
	"spectro/internal/ui/splash"
	"spectro/internal/ui/timer"
	"spectro/internal/ui/tray"
	"spectro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName    = "Spectro"
	clockSteps = 12
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		if err := platform.ActivateRunning(appName); err != nil {
			log.Printf("activate running instance: %v", err)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	store := storage.NewStore(appName, platform.NewService())
	settings, err := store.Load()
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	saveSettings := func() {
		if err := store.Save(settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	}

	fyneApp := app.NewWithID("com.spectro.app")
	logo := resources.MustIcon("logo.svg")
	fyneApp.SetIcon(logo)

	player := audio.NewEngine(settings.SoundOn)
	player.SetVolume(settings.Volume)
	if settings.AlarmSound != "" {
		if err := player.SetAlarmFile(settings.AlarmSound); err != nil {
			log.Printf("alarm sound: %v", err)
		}
	}

	keeper := pomodoro.New(settings.TimerConfig(), pomodoro.Options{TickInterval: time.Second})
	animationConfig := animation.DefaultConfig()
	clockFrames := resources.ClockFrames(clockSteps)

	mainWindow := fyneApp.NewWindow(appName)
	mainWindow.Resize(fyne.NewSize(420, 560))

	var (
		homeView     *home.View
		gameView     *game.View
		timerView    *timer.View
		prefsWindow  *preferences.Window
		trayManager  *tray.Manager
		showHome     func()
		showGame     func()
		showPomodoro func()
	)

	show := func(content fyne.CanvasObject, title string) {
		if content == homeView.Content() {
			homeView.Activate()
		} else {
			homeView.Deactivate()
		}
		mainWindow.SetTitle(title)
		mainWindow.SetContent(content)
		mainWindow.Show()
	}
	showHome = func() { show(homeView.Content(), appName) }
	showGame = func() { show(gameView.Content(), appName+" - Tic-Tac-Toe") }
	showPomodoro = func() { show(timerView.Content(), appName+" - Pomodoro") }

	homeView = home.New(home.Tiles{
		Game:           resources.MustIcon("tictactoe.svg"),
		Pomodoro:       resources.MustIcon("pomodoro.svg"),
		PomodoroFrames: clockFrames,
	}, animationConfig, home.Callbacks{
		OnGame:     func() { showGame() },
		OnPomodoro: func() { showPomodoro() },
		OnPreferences: func() {
			prefsWindow.Show()
		},
	})

	gameView = game.New(mainWindow, player, settings.Opponent, animationConfig, game.Callbacks{
		OnExit: func() { showHome() },
		OnOpponentChange: func(opponent board.Opponent) {
			settings.Opponent = opponent
			saveSettings()
			prefsWindow.UpdateSettings(settings)
		},
	})

	timerView = timer.New(fyneApp, mainWindow, keeper, player, clockFrames, animationConfig, timer.Callbacks{
		OnExit: func() { showHome() },
		OnDurations: func(work, brk time.Duration) {
			settings.WorkDuration = work
			settings.BreakDuration = brk
			saveSettings()
			prefsWindow.UpdateSettings(settings)
		},
		OnAlarmSound: func(path string) {
			settings.AlarmSound = path
			saveSettings()
		},
	})
	timerView.Bind(keeper.Subscribe(8))

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		updated.AlarmSound = settings.AlarmSound
		settings = updated
		player.SetEnabled(settings.SoundOn)
		player.SetVolume(settings.Volume)
		keeper.UpdateConfig(settings.TimerConfig())
		timerView.SetDurations(settings.WorkDuration, settings.BreakDuration)
		if gameView.Opponent() != settings.Opponent {
			gameView.SetOpponent(settings.Opponent)
		}
		trayManager.SetSoundOn(settings.SoundOn)
		saveSettings()
	})

	quit := func() {
		keeper.Stop()
		timerView.Stop()
		homeView.Deactivate()
		player.StopAlarm()
		fyneApp.Quit()
	}

	desktopApp, hasTray := fyneApp.(desktop.App)
	var trayApp desktop.App
	if hasTray {
		trayApp = desktopApp
	} else {
		log.Printf("system tray unsupported on this platform")
	}
	trayManager = tray.New(trayApp, tray.Callbacks{
		OnHome:     func() { showHome() },
		OnGame:     func() { showGame() },
		OnPomodoro: func() { showPomodoro() },
		OnToggleTimer: func() {
			if keeper.Snapshot().Running {
				timerView.Pause()
			} else {
				timerView.Start()
			}
		},
		OnResetTimer: timerView.Reset,
		OnToggleSound: func() {
			settings.SoundOn = !settings.SoundOn
			player.SetEnabled(settings.SoundOn)
			trayManager.SetSoundOn(settings.SoundOn)
			prefsWindow.UpdateSettings(settings)
			saveSettings()
		},
		OnPreferences: func() {
			prefsWindow.Show()
		},
		OnQuit: quit,
	})
	trayManager.SetSoundOn(settings.SoundOn)
	trayManager.SetStatus(statusText(keeper.Snapshot().Phase, keeper.Snapshot().Remaining))

	if hasTray {
		desktopApp.SetSystemTrayIcon(logo)
		desktopApp.SetSystemTrayWindow(mainWindow)
		mainWindow.SetCloseIntercept(func() {
			homeView.Deactivate()
			mainWindow.Hide()
		})
	} else {
		mainWindow.SetCloseIntercept(quit)
	}

	events := keeper.Subscribe(8)
	go func() {
		for event := range events {
			event := event
			fyne.Do(func() {
				trayManager.SetStatus(statusText(event.Phase, event.Remaining))
				trayManager.SetRunning(event.Running)
			})
		}
	}()

	guard.OnActivate(func() {
		fyne.Do(func() {
			mainWindow.Show()
			mainWindow.RequestFocus()
		})
	})

	splashWindow := splash.New(fyneApp, splash.Config{
		Title:    appName,
		Subtitle: "Play a round. Then focus.",
		Logo:     logo,
		Opacity:  235,
		FadeOut:  250 * time.Millisecond,
	})
	splashWindow.Show(showHome)

	fyneApp.Run()
}

func statusText(phase pomodoro.Phase, remaining time.Duration) string {
	return phase.Label() + " " + pomodoro.FormatClock(remaining)
}
