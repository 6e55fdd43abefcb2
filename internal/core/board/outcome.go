package board

import "fmt"

// Mark is the content of a cell, also used to name a player.
type Mark int8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O" or "" for an empty cell.
func (mark Mark) String() string {
	switch mark {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player.
func (mark Mark) Opponent() Mark {
	switch mark {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Status is the state of a game after a move.
type Status string

const (
	InProgress Status = "in_progress"
	Win        Status = "win"
	Draw       Status = "draw"
)

// Outcome is the result of evaluating a board.
type Outcome struct {
	Status Status
	Winner Mark
	// Lines holds every completed line; a single move can finish two at once.
	Lines []Line
}

// Message returns the status text shown under the board.
func (outcome Outcome) Message(turn Mark) string {
	switch outcome.Status {
	case Win:
		return fmt.Sprintf("Player %s Wins!", outcome.Winner)
	case Draw:
		return "Draw!"
	default:
		return TurnMessage(turn)
	}
}

// TurnMessage returns "X's Turn" or "O's Turn".
func TurnMessage(turn Mark) string {
	return fmt.Sprintf("%s's Turn", turn)
}

// StartMessage is shown when a new game starts.
func StartMessage() string {
	return "Game Started! " + TurnMessage(X)
}
