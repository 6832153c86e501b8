package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const boardSide = 3

// Cell is one clickable square. It carries no validation of its own.
type Cell struct {
	Index int
	Value string
}

// BoardView is the rendered board: status line and nine cells.
type BoardView struct {
	Status   string
	Winner   string
	Finished bool
	Cells    [entity.BoardCells]Cell
}

// NewBoardView renders squares for the player whose turn it is.
func NewBoardView(marks entity.Marks, xIsNext bool, squares entity.Board) BoardView {
	view := BoardView{Winner: squares.Winner()}

	for i, value := range squares {
		view.Cells[i] = Cell{Index: i, Value: value}
	}

	if view.Winner != entity.EmptyCell {
		view.Finished = true
		view.Status = "Winner: " + view.Winner
		return view
	}

	view.Status = "Next move: " + activeMark(marks, xIsNext)

	return view
}

// Rows returns the cells as three rows, row-major.
func (that BoardView) Rows() [][]Cell {
	rows := make([][]Cell, 0, boardSide)
	for row := 0; row < boardSide; row++ {
		rows = append(rows, that.Cells[row*boardSide:(row+1)*boardSide])
	}

	return rows
}

// NextSnapshot handles a click on cell and returns the board after it.
// A finished board or an occupied cell reject the click.
func NextSnapshot(marks entity.Marks, xIsNext bool, squares entity.Board, cell int) (entity.Board, error) {
	if !entity.IsValidCell(cell) {
		return squares, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if squares.Winner() != entity.EmptyCell {
		return squares, apperror.ErrGameFinished
	}

	if squares.IsOccupied(cell) {
		return squares, apperror.ErrCellOccupied
	}

	return squares.Place(cell, activeMark(marks, xIsNext)), nil
}

func activeMark(marks entity.Marks, xIsNext bool) string {
	if xIsNext {
		return marks.First
	}

	return marks.Second
}
