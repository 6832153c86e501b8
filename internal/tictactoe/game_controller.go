package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// Play handles a click on cell of the currently displayed board.
// Clicks on an occupied cell or on a finished board are ignored.
func Play(session *entity.Session, cell int) error {
	next, err := NextSnapshot(session.Marks(), session.XIsNext(), session.Current(), cell)
	if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrGameFinished) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	PlayMove(session, next)

	return nil
}

// PlayMove records next as the move after CurrentMove, dropping any
// snapshots beyond it, and raises the popup when next ends the game.
func PlayMove(session *entity.Session, next entity.Board) {
	// the mover is decided before the pointer advances
	mover := session.NextSlot()

	winner := next.Winner()
	isDraw := winner == entity.EmptyCell && next.IsFull()

	if winner != entity.EmptyCell || isDraw {
		session.Endgame = entity.Endgame{
			Winner:       winner,
			IsDraw:       isDraw,
			PopupVisible: true,
			Slot:         mover,
		}
		if isDraw {
			session.Endgame.Slot = entity.NoSlot
		}
	}

	history := make([]entity.Board, session.CurrentMove+1, session.CurrentMove+2)
	copy(history, session.History[:session.CurrentMove+1])

	session.History = append(history, next)
	session.CurrentMove = len(session.History) - 1
}

// JumpTo moves the displayed position to move and clears the endgame state,
// even when move is itself a winning or drawn position.
func JumpTo(session *entity.Session, move int) error {
	if move < 0 || move >= len(session.History) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrInvalidMove, move, len(session.History))
	}

	session.CurrentMove = move
	session.Endgame = entity.Endgame{}

	return nil
}

// ClosePopup hides the popup and keeps the recorded result.
func ClosePopup(session *entity.Session) {
	session.Endgame.PopupVisible = false
}

// SetPlayerLabel stores the normalized label for slot. Marks already on
// the board keep the label they were placed with.
func SetPlayerLabel(session *entity.Session, slot entity.Slot, raw string) error {
	label := entity.NormalizeLabel(raw)

	switch slot {
	case entity.FirstSlot:
		session.Labels.First = label
	case entity.SecondSlot:
		session.Labels.Second = label
	default:
		return fmt.Errorf("%w: %d", apperror.ErrInvalidSlot, slot)
	}

	return nil
}
