package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestMovePrefersWin(t *testing.T) {
	board := FromCells([CellCount]Mark{
		O, O, Empty,
		X, X, Empty,
		X, Empty, Empty,
	})
	require.Equal(t, O, board.Turn())
	index, ok := SuggestMove(board)
	require.True(t, ok)
	require.Equal(t, 2, index)
}

func TestSuggestMoveBlocks(t *testing.T) {
	board := FromCells([CellCount]Mark{
		X, X, Empty,
		Empty, O, Empty,
		Empty, Empty, Empty,
	})
	index, ok := SuggestMove(board)
	require.True(t, ok)
	require.Equal(t, 2, index)
}

func TestSuggestMoveTakesCentreFirst(t *testing.T) {
	board := New()
	_, err := board.Play(0)
	require.NoError(t, err)
	index, ok := SuggestMove(board)
	require.True(t, ok)
	require.Equal(t, 4, index)
}

func TestSuggestMoveOnFinishedBoard(t *testing.T) {
	board := FromCells([CellCount]Mark{
		X, O, X,
		O, X, O,
		O, X, O,
	})
	_, ok := SuggestMove(board)
	require.False(t, ok)
}

func TestParseOpponent(t *testing.T) {
	require.Equal(t, OpponentRobot, ParseOpponent("robot"))
	require.Equal(t, OpponentFriend, ParseOpponent(""))
	require.Equal(t, "Play with Robot", OpponentRobot.Label())
	require.Equal(t, "Play with Friend", OpponentFriend.Label())
}
