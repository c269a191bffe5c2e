// Package chess provides the core chess types: colours, piece types, cells,
// squares and the Position they make up.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents the kind of a chess piece, without colour.
// The zero value, NoPieceType, stands for "no piece", which is how an
// absent promotion is expressed.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Cell is the content of one board square. The zero value is an empty cell.
// Cells are plain values and compare with ==.
type Cell struct {
	Type   PieceType
	Colour Colour
}

// Empty is the empty cell.
var Empty = Cell{}

// Piece returns the cell holding a piece of the given type and colour.
func Piece(t PieceType, c Colour) Cell {
	return Cell{Type: t, Colour: c}
}

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c.Type == NoPieceType
}

// String returns the FEN letter of the piece, or "." for an empty cell.
func (c Cell) String() string {
	if c.IsEmpty() {
		return "."
	}
	letter := c.Type.Letter()
	if c.Colour == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// CanMoveInto reports whether a piece of colour mover may land on cell:
// true when the cell is empty or holds an opposing piece.
func CanMoveInto(cell Cell, mover Colour) bool {
	return cell.IsEmpty() || cell.Colour == mover.Opposite()
}

// Constants for board dimensions and coordinates.
// Row 0 is rank 8 and row 7 is rank 1; column 0 is file a.
const (
	BoardSize = 8

	Row8 = 0
	Row7 = 1
	Row6 = 2
	Row5 = 3
	Row4 = 4
	Row3 = 5
	Row2 = 6
	Row1 = 7

	ColA = 0
	ColB = 1
	ColC = 2
	ColD = 3
	ColE = 4
	ColF = 5
	ColG = 6
	ColH = 7
)
