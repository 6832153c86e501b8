package entity

const (
	EmptyCell = ""

	DefaultFirstMark  = "X"
	DefaultSecondMark = "O"

	BoardCells = 9
)

// WinCombos lists the three rows, three columns and two diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a snapshot of the nine cells in row-major order.
// It is a value type: placing a mark yields a new snapshot.
type Board [BoardCells]string

// Winner returns the mark that fills one of the WinCombos, or EmptyCell.
func (that Board) Winner() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// IsFull reports whether no cell is empty.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) IsOccupied(cell int) bool {
	return that[cell] != EmptyCell
}

// Place returns a copy of the board with mark at cell.
func (that Board) Place(cell int, mark string) Board {
	next := that
	next[cell] = mark

	return next
}

// IsValidCell reports whether cell addresses the 3x3 board.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardCells
}
