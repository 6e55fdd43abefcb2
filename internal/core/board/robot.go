package board

// Opponent selects who plays O.
type Opponent string

const (
	OpponentFriend Opponent = "friend"
	OpponentRobot  Opponent = "robot"
)

// Label returns the chooser text for the opponent.
func (opponent Opponent) Label() string {
	if opponent == OpponentRobot {
		return "Play with Robot"
	}
	return "Play with Friend"
}

// ParseOpponent maps stored values to an Opponent, defaulting to a friend.
func ParseOpponent(value string) Opponent {
	if Opponent(value) == OpponentRobot {
		return OpponentRobot
	}
	return OpponentFriend
}

var preferredCells = [CellCount]int{4, 0, 2, 6, 8, 1, 3, 5, 7}

// SuggestMove picks a cell for the player on turn: a winning cell first, then a cell
// that blocks the opponent, then centre, corners and edges.
func SuggestMove(board *Board) (int, bool) {
	if board.Over() {
		return 0, false
	}
	turn := board.Turn()
	if index, ok := completingCell(board, turn); ok {
		return index, true
	}
	if index, ok := completingCell(board, turn.Opponent()); ok {
		return index, true
	}
	for _, index := range preferredCells {
		if board.Cell(index) == Empty {
			return index, true
		}
	}
	return 0, false
}

func completingCell(board *Board, mark Mark) (int, bool) {
	for _, line := range Lines {
		owned := 0
		free := -1
		for _, index := range line {
			switch board.Cell(index) {
			case mark:
				owned++
			case Empty:
				free = index
			}
		}
		if owned == 2 && free >= 0 {
			return free, true
		}
	}
	return 0, false
}
