package entity

// Cell is the owner of a single square on the board.
type Cell int

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

func (that Cell) Valid() bool {
	return that == Empty || that == PlayerOne || that == PlayerTwo
}

func (that Cell) IsPlayer() bool {
	return that == PlayerOne || that == PlayerTwo
}

// Opponent - returns the other player, Empty stays Empty.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case Empty:
		return "empty"
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	default:
		return "invalid"
	}
}
