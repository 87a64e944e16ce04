package tictactoe

import (
	"iter"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// indexes yields the side indexes start, start+stride, start+2*stride, ...
func (that *Board) indexes(start, stride int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, n := start, 0; n < that.side; i, n = i+stride, n+1 {
			if !yield(i) {
				return
			}
		}
	}
}

// line yields the cells along a line.
func (that *Board) line(start, stride int) iter.Seq[entity.Cell] {
	return func(yield func(entity.Cell) bool) {
		for i := range that.indexes(start, stride) {
			if !yield(that.cells[i]) {
				return
			}
		}
	}
}

// checkLine returns the owner of the line, or Empty if the line is mixed or unclaimed.
func (that *Board) checkLine(start, stride int) entity.Cell {
	first := that.cells[start]
	if !first.IsPlayer() {
		return entity.Empty
	}

	for cell := range that.line(start, stride) {
		if cell != first {
			return entity.Empty
		}
	}

	return first
}

// Evaluate - scans rows and columns interleaved, then the left-to-right diagonal,
// then the right-to-left diagonal, and reports the first line owned by one player.
func (that *Board) Evaluate() entity.WinResult {
	for i := range that.side {
		if winner := that.checkLine(that.rowStart(i), 1); winner != entity.Empty {
			return entity.WinResult{Winner: winner, Location: entity.Location{Kind: entity.LineRow, Index: i + 1}}
		}

		if winner := that.checkLine(i, that.side); winner != entity.Empty {
			return entity.WinResult{Winner: winner, Location: entity.Location{Kind: entity.LineColumn, Index: i + 1}}
		}
	}

	if winner := that.checkLine(0, that.side+1); winner != entity.Empty {
		return entity.WinResult{Winner: winner, Location: entity.Location{Kind: entity.LineDiagonalLeftToRight}}
	}

	if winner := that.checkLine(that.side-1, that.side-1); winner != entity.Empty {
		return entity.WinResult{Winner: winner, Location: entity.Location{Kind: entity.LineDiagonalRightToLeft}}
	}

	return entity.WinResult{}
}
