package board

import "errors"

var (
	// ErrInvalidCell indicates a cell index outside 0-8 or a player that is not X or O.
	ErrInvalidCell = errors.New("invalid cell")
	// ErrCellOccupied indicates a move into a cell that already holds a mark.
	ErrCellOccupied = errors.New("cell occupied")
	// ErrNotYourTurn indicates a move by the player who is not on turn.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrGameOver indicates a move after a win or draw was reached.
	ErrGameOver = errors.New("game over")
)

// CellCount is the number of cells on the board.
const CellCount = 9

// Line is a winning triple of cell indexes.
type Line [3]int

// Lines lists the 3 rows, 3 columns and 2 diagonals.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the cell marks, the turn and the latest outcome.
type Board struct {
	cells   [CellCount]Mark
	turn    Mark
	outcome Outcome
}

// New returns an empty board with X on turn.
func New() *Board {
	board := &Board{}
	board.Reset()
	return board
}

// FromCells builds a board from existing marks. The turn is X when both players
// placed the same number of marks, O otherwise.
func FromCells(cells [CellCount]Mark) *Board {
	board := &Board{cells: cells, turn: X}
	xCount, oCount := 0, 0
	for _, mark := range cells {
		switch mark {
		case X:
			xCount++
		case O:
			oCount++
		}
	}
	if xCount > oCount {
		board.turn = O
	}
	board.outcome = board.Evaluate()
	return board
}

// Reset clears every cell and gives the turn back to X.
func (board *Board) Reset() {
	board.cells = [CellCount]Mark{}
	board.turn = X
	board.outcome = Outcome{Status: InProgress}
}

// Turn returns the mark that moves next.
func (board *Board) Turn() Mark {
	return board.turn
}

// Cell returns the mark at index, or Empty for an invalid index.
func (board *Board) Cell(index int) Mark {
	if index < 0 || index >= CellCount {
		return Empty
	}
	return board.cells[index]
}

// CellText returns the display text of a cell.
func (board *Board) CellText(index int) string {
	return board.Cell(index).String()
}

// Cells returns a copy of the marks.
func (board *Board) Cells() [CellCount]Mark {
	return board.cells
}

// Outcome returns the result of the last evaluation.
func (board *Board) Outcome() Outcome {
	return board.outcome
}

// Over reports whether the board reached a win or a draw.
func (board *Board) Over() bool {
	return board.outcome.Status != InProgress
}

// ApplyMove places player's mark at index. Rejected moves leave the board untouched.
func (board *Board) ApplyMove(index int, player Mark) error {
	if index < 0 || index >= CellCount || (player != X && player != O) {
		return ErrInvalidCell
	}
	if board.Over() {
		return ErrGameOver
	}
	if player != board.turn {
		return ErrNotYourTurn
	}
	if board.cells[index] != Empty {
		return ErrCellOccupied
	}

	board.cells[index] = player
	board.turn = player.Opponent()
	board.outcome = board.Evaluate()
	return nil
}

// Play applies a move for the player on turn and returns the new outcome.
func (board *Board) Play(index int) (Outcome, error) {
	if err := board.ApplyMove(index, board.turn); err != nil {
		return board.outcome, err
	}
	return board.outcome, nil
}

// Evaluate scans all lines. A completed line wins even on a full board.
func (board *Board) Evaluate() Outcome {
	var outcome Outcome
	for _, line := range Lines {
		first := board.cells[line[0]]
		if first == Empty {
			continue
		}
		if board.cells[line[1]] != first || board.cells[line[2]] != first {
			continue
		}
		if outcome.Winner == Empty {
			outcome.Winner = first
		}
		outcome.Lines = append(outcome.Lines, line)
	}
	if outcome.Winner != Empty {
		outcome.Status = Win
		return outcome
	}

	for _, mark := range board.cells {
		if mark == Empty {
			outcome.Status = InProgress
			return outcome
		}
	}
	outcome.Status = Draw
	return outcome
}
