package tictactoe

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// noWinner3x3 is the known-good full 3x3 board without a winner.
var noWinner3x3 = [9]entity.Cell{
	entity.PlayerOne, entity.PlayerOne, entity.PlayerTwo,
	entity.PlayerTwo, entity.PlayerOne, entity.PlayerOne,
	entity.PlayerOne, entity.PlayerTwo, entity.PlayerTwo,
}

// FillWithNoWinner - fills every cell so that the player counts differ by at most one
// and no line is owned by a single player. Boards smaller than 3x3 are left unchanged.
func (that *Board) FillWithNoWinner() {
	if that.side < 3 {
		return
	}

	if that.side == 3 {
		copy(that.cells, noWinner3x3[:])
		return
	}

	// checkerboard: even rows start with PlayerOne, odd rows with PlayerTwo
	for row := range that.side {
		player := entity.PlayerOne
		if row&1 == 1 {
			player = entity.PlayerTwo
		}

		for i := range that.indexes(that.rowStart(row), 1) {
			that.cells[i] = player
			player = player.Opponent()
		}
	}

	// the checkerboard owns both diagonals, swap the centre of the left-to-right
	// diagonal with its left neighbour to break them
	center := (that.side / 2) * (that.side + 1)
	that.cells[center], that.cells[center-1] = that.cells[center-1], that.cells[center]
}
