package chess

import "strings"

// Position represents a chess position with all state needed to continue
// play from it. The move number is not tracked.
//
// Position is a plain value: copying it copies the whole board, and two
// positions are equal (==) exactly when every field matches.
type Position struct {
	// Cells[row][col]; row 0 is rank 8, col 0 is file a.
	Cells [BoardSize][BoardSize]Cell

	// Who has the next move.
	ToMove Colour

	// Plies since the last capture or pawn move.
	HalfmoveClock uint

	// Castling rights. They only ever go from true to false.
	WKingCastle  bool
	WQueenCastle bool
	BKingCastle  bool
	BQueenCastle bool

	// The square a pawn may capture into this ply, or NoSquare.
	EnPassant Square
}

// NewEmptyPosition returns a position with no pieces, White to move, no
// castling rights and no en passant target.
func NewEmptyPosition() *Position {
	return &Position{
		ToMove:    White,
		EnPassant: NoSquare,
	}
}

// Get returns the cell at the given square.
func (p *Position) Get(sq Square) Cell {
	return p.Cells[sq.Row][sq.Col]
}

// Set places a cell at the given square.
func (p *Position) Set(sq Square, cell Cell) {
	p.Cells[sq.Row][sq.Col] = cell
}

// HasEnPassant reports whether an en passant target is set.
func (p *Position) HasEnPassant() bool {
	return p.EnPassant.IsValid()
}

// Copy returns a copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// CastlingRights returns the castling rights in FEN order ("KQkq"), or "-".
func (p *Position) CastlingRights() string {
	var sb strings.Builder
	if p.WKingCastle {
		sb.WriteByte('K')
	}
	if p.WQueenCastle {
		sb.WriteByte('Q')
	}
	if p.BKingCastle {
		sb.WriteByte('k')
	}
	if p.BQueenCastle {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Kings returns the squares holding a king of the given colour.
func (p *Position) Kings(colour Colour) []Square {
	var squares []Square
	king := Piece(King, colour)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p.Cells[row][col] == king {
				squares = append(squares, Sq(row, col))
			}
		}
	}
	return squares
}

// String renders the board as eight lines of cells, rank 8 first, followed by
// a line with the side to move, castling rights and en passant target.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(p.Cells[row][col].String())
		}
		sb.WriteByte('\n')
	}
	if p.ToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	return sb.String()
}
