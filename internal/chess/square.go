package chess

import "fmt"

// Square addresses one cell of the board by row and column.
type Square struct {
	Row int
	Col int
}

// NoSquare is the "no square" value, used for an absent en passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq builds a square from a row and column index.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the square in algebraic notation, e.g. "e4", or "-" for a
// square off the board.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col), byte('1' + (BoardSize - 1 - s.Row))})
}

// ParseSquare converts algebraic notation to a square. The file letter
// a..h maps to column 0..7 and the rank digit 1..8 maps to row 7..0.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("square %q: want file and rank", text)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: off the board", text)
	}
	return Square{Row: BoardSize - 1 - int(rank-'1'), Col: int(file - 'a')}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}
