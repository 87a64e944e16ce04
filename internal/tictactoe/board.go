package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Board is a side x side grid stored row-major: index = row*side + col.
// A Board is not safe for concurrent use.
type Board struct {
	side  int
	cells []entity.Cell
}

// New - creates an empty board with the given side.
func New(side int) (*Board, error) {
	if side < 1 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidSide, side)
	}

	return &Board{
		side:  side,
		cells: make([]entity.Cell, side*side),
	}, nil
}

func (that *Board) Side() int {
	return that.side
}

// Cells - returns a row-major copy of the grid.
func (that *Board) Cells() []entity.Cell {
	cells := make([]entity.Cell, len(that.cells))
	copy(cells, that.cells)

	return cells
}

// Cell - returns the cell at the 0-based row and column, Empty when out of range.
func (that *Board) Cell(row, col int) entity.Cell {
	if row < 0 || row >= that.side || col < 0 || col >= that.side {
		return entity.Empty
	}

	return that.cells[row*that.side+col]
}

func (that *Board) Count(cell entity.Cell) int {
	count := 0
	for _, c := range that.cells {
		if c == cell {
			count++
		}
	}

	return count
}

// Clear - resets every cell to Empty.
func (that *Board) Clear() {
	for i := range that.cells {
		that.cells[i] = entity.Empty
	}
}

// SetRow - clears the board and marks the 1-based row with player.
// Row numbers outside [1, side] are ignored.
func (that *Board) SetRow(rowNumber int, player entity.Cell) {
	if rowNumber < 1 || rowNumber > that.side {
		return
	}

	that.setLine(that.rowStart(rowNumber-1), 1, player)
}

// SetColumn - clears the board and marks the 1-based column with player.
// Column numbers outside [1, side] are ignored.
func (that *Board) SetColumn(colNumber int, player entity.Cell) {
	if colNumber < 1 || colNumber > that.side {
		return
	}

	that.setLine(colNumber-1, that.side, player)
}

// SetDiagonalLeftToRight - clears the board and marks the top-left to bottom-right diagonal.
func (that *Board) SetDiagonalLeftToRight(player entity.Cell) {
	that.setLine(0, that.side+1, player)
}

// SetDiagonalRightToLeft - clears the board and marks the top-right to bottom-left diagonal.
func (that *Board) SetDiagonalRightToLeft(player entity.Cell) {
	that.setLine(that.side-1, that.side-1, player)
}

// setLine leaves the board untouched when player is not a valid cell value.
func (that *Board) setLine(start, stride int, player entity.Cell) {
	if !player.Valid() {
		return
	}

	that.Clear()

	for i := range that.indexes(start, stride) {
		that.cells[i] = player
	}
}

func (that *Board) rowStart(row int) int {
	return row * that.side
}
