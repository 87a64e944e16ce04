package entity

import "strconv"

type LineKind int

const (
	LineNone LineKind = iota
	LineRow
	LineColumn
	LineDiagonalLeftToRight
	LineDiagonalRightToLeft
)

// Location points at the line that produced a win.
// Index is the 1-based row or column number and stays 0 for diagonals.
type Location struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index,omitempty"`
}

func (that Location) String() string {
	switch that.Kind {
	case LineRow:
		return "row " + strconv.Itoa(that.Index)
	case LineColumn:
		return "column " + strconv.Itoa(that.Index)
	case LineDiagonalLeftToRight:
		return "diagonal left-to-right"
	case LineDiagonalRightToLeft:
		return "diagonal right-to-left"
	default:
		return "none"
	}
}

// WinResult is a snapshot of a board evaluation.
type WinResult struct {
	Winner   Cell     `json:"winner"`
	Location Location `json:"location"`
}

func (that WinResult) HasWinner() bool {
	return that.Winner != Empty
}
