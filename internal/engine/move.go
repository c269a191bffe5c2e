package engine

import (
	"strings"

	"github.com/lgbarn/farce-go/internal/chess"
	"github.com/lgbarn/farce-go/internal/errors"
)

// Move is a source square, a destination square and an optional promotion
// piece type (chess.NoPieceType when absent).
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
}

// NullMoveString is the UCI text for "no move".
const NullMoveString = "0000"

// String returns the move in UCI long algebraic notation, e.g. "e2e4" or
// "e7e8q". The zero Move renders as "0000".
func (m Move) String() string {
	if m == (Move{}) {
		return NullMoveString
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoPieceType {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove decodes UCI long algebraic notation: two squares followed by an
// optional promotion letter (n, b, r or q, either case).
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: text, Expected: "4 or 5 characters", Got: text}
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: text, Field: "source square", Column: 1, Got: text[0:2]}
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: text, Field: "destination square", Column: 3, Got: text[2:4]}
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		switch text[4] {
		case 'n', 'N':
			m.Promotion = chess.Knight
		case 'b', 'B':
			m.Promotion = chess.Bishop
		case 'r', 'R':
			m.Promotion = chess.Rook
		case 'q', 'Q':
			m.Promotion = chess.Queen
		default:
			return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: text, Field: "promotion", Column: 5, Expected: "one of n, b, r, q", Got: text[4:]}
		}
	}
	return m, nil
}

// ParseMoves decodes a list of UCI moves, stopping at the first bad one.
func ParseMoves(texts []string) ([]Move, error) {
	moves := make([]Move, 0, len(texts))
	for i, text := range texts {
		m, err := ParseMove(text)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		moves = append(moves, m)
	}
	return moves, nil
}
