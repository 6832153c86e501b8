package tictactoe

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// HistoryEntry is one jump control of the move list.
type HistoryEntry struct {
	Move    int
	Label   string
	Current bool
}

// GameView is everything a display surface renders for a session.
type GameView struct {
	SessionID   string
	Labels      entity.Labels
	Marks       entity.Marks
	CurrentMove int
	Board       BoardView
	History     []HistoryEntry
	Popup       *PopupView
}

func NewGameView(session *entity.Session, images PopupImages) GameView {
	marks := session.Marks()

	view := GameView{
		SessionID:   session.ID,
		Labels:      session.Labels,
		Marks:       marks,
		CurrentMove: session.CurrentMove,
		Board:       NewBoardView(marks, session.XIsNext(), session.Current()),
		History:     make([]HistoryEntry, 0, len(session.History)),
	}

	for move := range session.History {
		view.History = append(view.History, HistoryEntry{
			Move:    move,
			Label:   HistoryLabel(move),
			Current: move == session.CurrentMove,
		})
	}

	if popup, ok := NewPopupView(session.Endgame, images); ok {
		view.Popup = &popup
	}

	return view
}

func HistoryLabel(move int) string {
	if move == 0 {
		return "Game start"
	}

	return "Go to move #" + strconv.Itoa(move)
}

// Owners reports which player filled each cell of the snapshot at move.
// A move is attributed by parity: the change into History[i+1] was made by
// player 1 when i is even.
func Owners(session *entity.Session, move int) ([entity.BoardCells]entity.Slot, error) {
	var owners [entity.BoardCells]entity.Slot

	if move < 0 || move >= len(session.History) {
		return owners, fmt.Errorf("%w: move %d of %d", apperror.ErrInvalidMove, move, len(session.History))
	}

	for i := 0; i < move; i++ {
		slot := entity.FirstSlot
		if i%2 == 1 {
			slot = entity.SecondSlot
		}

		before, after := session.History[i], session.History[i+1]
		for cell := range after {
			if before[cell] == entity.EmptyCell && after[cell] != entity.EmptyCell {
				owners[cell] = slot
			}
		}
	}

	return owners, nil
}
