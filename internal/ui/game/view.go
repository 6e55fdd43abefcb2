package game

import (
	"image/color"

	"spectro/internal/audio"
	"spectro/internal/core/board"
	"spectro/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var (
	cellColor    = color.NRGBA{R: 38, G: 50, B: 56, A: 255}
	flashColor   = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	winColor     = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
	drawColor    = color.NRGBA{R: 229, G: 57, B: 53, A: 255}
	messageColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Callbacks defines navigation and preference hooks.
type Callbacks struct {
	OnExit           func()
	OnOpponentChange func(board.Opponent)
}

// View is the tic-tac-toe screen.
type View struct {
	window    fyne.Window
	board     *board.Board
	player    audio.Player
	opponent  board.Opponent
	config    animation.Config
	callbacks Callbacks

	cells       [board.CellCount]*widget.Button
	backgrounds [board.CellCount]*canvas.Rectangle
	status      *widget.Label
	versus      *widget.Label
	content     fyne.CanvasObject
	result      dialog.Dialog
}

// New builds the game screen. Dialogs are shown on window.
func New(window fyne.Window, player audio.Player, opponent board.Opponent, config animation.Config, callbacks Callbacks) *View {
	if player == nil {
		player = audio.Nop{}
	}
	view := &View{
		window:    window,
		board:     board.New(),
		player:    player,
		opponent:  opponent,
		config:    config,
		callbacks: callbacks,
		status:    widget.NewLabelWithStyle(board.StartMessage(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		versus:    widget.NewLabel(opponent.Label()),
	}

	grid := container.NewGridWithColumns(3)
	for index := 0; index < board.CellCount; index++ {
		index := index
		background := canvas.NewRectangle(cellColor)
		button := widget.NewButton("", func() {
			view.TapCell(index)
		})
		view.cells[index] = button
		view.backgrounds[index] = background
		grid.Add(container.NewStack(background, button))
	}

	startButton := widget.NewButton("Start Game", func() {
		view.player.PlayEffect(audio.EffectClick)
		view.StartGame()
	})
	opponentButton := widget.NewButton("Opponent", func() {
		view.player.PlayEffect(audio.EffectClick)
		view.ShowOpponentChooser()
	})
	backButton := widget.NewButton("Back", view.ConfirmExit)

	header := container.NewHBox(backButton, layout.NewSpacer(), view.versus)
	footer := container.NewVBox(view.status, container.NewGridWithColumns(2, startButton, opponentButton))
	view.content = container.NewBorder(header, footer, nil, nil, grid)
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Board exposes the game state.
func (view *View) Board() *board.Board {
	return view.board
}

// Status returns the current status text.
func (view *View) Status() string {
	return view.status.Text
}

// Opponent returns who plays O.
func (view *View) Opponent() board.Opponent {
	return view.opponent
}

// StartGame clears the board and hands the turn to X.
func (view *View) StartGame() {
	view.board.Reset()
	view.renderCells()
	view.status.SetText(board.StartMessage())
}

// SetOpponent switches between friend and robot for the next moves.
func (view *View) SetOpponent(opponent board.Opponent) {
	view.opponent = opponent
	view.versus.SetText(opponent.Label())
	view.status.SetText("Selected: " + opponent.Label())
	if view.callbacks.OnOpponentChange != nil {
		view.callbacks.OnOpponentChange(opponent)
	}
	view.playRobotTurn()
}

// TapCell handles a tap on a cell. Taps on occupied cells or a finished board are ignored.
func (view *View) TapCell(index int) {
	if view.opponent == board.OpponentRobot && view.board.Turn() == board.O {
		return
	}
	if !view.play(index) {
		return
	}
	view.playRobotTurn()
}

// ConfirmExit asks before leaving the game.
func (view *View) ConfirmExit() {
	if view.window == nil {
		view.exit()
		return
	}
	dialog.ShowConfirm("Exit", "Do you want to exit the game?", func(ok bool) {
		if ok {
			view.exit()
		}
	}, view.window)
}

// ShowOpponentChooser lets the player pick a robot or a friend.
func (view *View) ShowOpponentChooser() {
	if view.window == nil {
		return
	}
	options := widget.NewRadioGroup([]string{
		board.OpponentRobot.Label(),
		board.OpponentFriend.Label(),
	}, nil)
	options.SetSelected(view.opponent.Label())
	dialog.ShowCustomConfirm("Choose an opponent", "OK", "Cancel", options, func(ok bool) {
		if !ok || options.Selected == "" {
			return
		}
		if options.Selected == board.OpponentRobot.Label() {
			view.SetOpponent(board.OpponentRobot)
			return
		}
		view.SetOpponent(board.OpponentFriend)
	}, view.window)
}

func (view *View) play(index int) bool {
	mover := view.board.Turn()
	outcome, err := view.board.Play(index)
	if err != nil {
		return false
	}

	view.player.PlayEffect(audio.EffectClick)
	view.renderCell(index)
	animation.Flash(view.backgrounds[index], flashColor, view.config.FlashDuration)

	switch outcome.Status {
	case board.Win:
		view.highlight(outcome.Lines)
		view.status.SetText(outcome.Message(mover))
		view.showResult(outcome)
	case board.Draw:
		view.status.SetText(outcome.Message(mover))
		view.showResult(outcome)
	default:
		view.status.SetText(board.TurnMessage(view.board.Turn()))
	}
	return true
}

func (view *View) playRobotTurn() {
	if view.opponent != board.OpponentRobot || view.board.Turn() != board.O {
		return
	}
	if index, ok := board.SuggestMove(view.board); ok {
		view.play(index)
	}
}

func (view *View) showResult(outcome board.Outcome) {
	background := drawColor
	effect := audio.EffectDraw
	if outcome.Status == board.Win {
		background = winColor
		effect = audio.EffectWin
	}
	view.player.PlayEffect(effect)

	if view.window == nil {
		return
	}

	message := canvas.NewText(outcome.Message(board.Empty), messageColor)
	message.TextSize = 22
	message.TextStyle = fyne.TextStyle{Bold: true}
	message.Alignment = fyne.TextAlignCenter
	content := container.NewStack(canvas.NewRectangle(background), container.NewPadded(message))

	result := dialog.NewCustom("Result", "OK", content, view.window)
	result.SetOnClosed(view.StartGame)
	view.result = result
	result.Show()
	animation.FadeIn(message, messageColor, view.config.FadeDuration)
}

func (view *View) highlight(lines []board.Line) {
	for _, line := range lines {
		for _, index := range line {
			view.cells[index].Importance = widget.HighImportance
			view.cells[index].Refresh()
		}
	}
}

func (view *View) renderCells() {
	for index := range view.cells {
		view.renderCell(index)
	}
}

func (view *View) renderCell(index int) {
	button := view.cells[index]
	button.SetText(view.board.CellText(index))
	if view.board.Cell(index) == board.Empty {
		button.Importance = widget.MediumImportance
	}
	button.Refresh()
}

func (view *View) exit() {
	if view.callbacks.OnExit != nil {
		view.callbacks.OnExit()
	}
}
