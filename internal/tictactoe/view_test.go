package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

func TestNewGameView(t *testing.T) {
	// Given: two moves played and a jump back to move 1
	session := entity.NewSession("s1")
	playCells(t, session, 4, 0)
	require.NoError(t, JumpTo(session, 1))

	// When: building the view
	view := NewGameView(session, testImages)

	// Then: every recorded position has a jump entry
	assert.Equal(t, []HistoryEntry{
		{Move: 0, Label: "Game start"},
		{Move: 1, Label: "Go to move #1", Current: true},
		{Move: 2, Label: "Go to move #2"},
	}, view.History)
	assert.Equal(t, "s1", view.SessionID)
	assert.Equal(t, 1, view.CurrentMove)
	assert.Equal(t, "X", view.Board.Cells[4].Value)
	assert.Equal(t, entity.EmptyCell, view.Board.Cells[0].Value)
	assert.Equal(t, "Next move: O", view.Board.Status)
	assert.Nil(t, view.Popup)
}

func TestNewPopupView(t *testing.T) {
	t.Run("Hidden popup", func(t *testing.T) {
		_, ok := NewPopupView(entity.Endgame{Winner: "X", Slot: entity.FirstSlot}, testImages)

		assert.False(t, ok)
	})

	t.Run("Winner image follows the winning player, not the label", func(t *testing.T) {
		endgame := entity.Endgame{Winner: "X", PopupVisible: true, Slot: entity.SecondSlot}

		popup, ok := NewPopupView(endgame, testImages)

		require.True(t, ok)
		assert.Equal(t, "Winner: X", popup.Title)
		assert.Equal(t, testImages.SecondWin, popup.ImageURL)
		assert.False(t, popup.IsDraw)
	})

	t.Run("Draw", func(t *testing.T) {
		popup, ok := NewPopupView(entity.Endgame{IsDraw: true, PopupVisible: true}, testImages)

		require.True(t, ok)
		assert.Equal(t, "Draw!", popup.Title)
		assert.Equal(t, testImages.Draw, popup.ImageURL)
	})
}

func TestOwners(t *testing.T) {
	t.Run("Attributes cells by move parity", func(t *testing.T) {
		// Given: both players labelled the same
		session := entity.NewSession("s1")
		require.NoError(t, SetPlayerLabel(session, entity.FirstSlot, "z"))
		require.NoError(t, SetPlayerLabel(session, entity.SecondSlot, "z"))
		playCells(t, session, 4, 0, 8)

		// When: resolving owners of the last position
		owners, err := Owners(session, 3)

		// Then: player 1 owns 4 and 8, player 2 owns 0
		require.NoError(t, err)
		assert.Equal(t, entity.FirstSlot, owners[4])
		assert.Equal(t, entity.SecondSlot, owners[0])
		assert.Equal(t, entity.FirstSlot, owners[8])
		assert.Equal(t, entity.NoSlot, owners[1])
	})

	t.Run("Earlier positions only include earlier moves", func(t *testing.T) {
		session := entity.NewSession("s1")
		playCells(t, session, 4, 0, 8)

		owners, err := Owners(session, 1)

		require.NoError(t, err)
		assert.Equal(t, entity.FirstSlot, owners[4])
		assert.Equal(t, entity.NoSlot, owners[0])
	})

	t.Run("Rejects a position outside history", func(t *testing.T) {
		_, err := Owners(entity.NewSession("s1"), 1)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}
