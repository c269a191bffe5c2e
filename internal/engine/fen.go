// Package engine provides FEN decoding and in-place move application for
// chess positions. Nothing here checks move legality.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/lgbarn/farce-go/internal/chess"
	"github.com/lgbarn/farce-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenPattern is compiled on first use and shared read-only afterwards.
var fenPattern = sync.OnceValue(func() *regexp.Regexp {
	const rank = `([PpNnBbRrQqKk1-8]+)`
	return regexp.MustCompile(`^` +
		rank + `/` + rank + `/` + rank + `/` + rank + `/` +
		rank + `/` + rank + `/` + rank + `/` + rank +
		` (?P<side>[wb])` +
		` (?P<castling>[KQkq]+|-)` +
		` (?P<enpassant>[a-h][1-8]|-)` +
		` (?P<halfmove>[0-9]+)` +
		` (?P<fullmove>[0-9]+)$`)
})

// ConvertFENCharToPiece converts a FEN character to a piece type.
// It returns chess.NoPieceType for anything that is not a piece letter.
func ConvertFENCharToPiece(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPieceType
	}
}

// NewPositionFromFEN decodes a FEN string. The whole string must match the
// FEN grammar exactly; the fullmove number is validated and then dropped.
// On failure the returned error is a *errors.ParseError wrapping
// errors.ErrInvalidFEN.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	re := fenPattern()
	m := re.FindStringSubmatchIndex(fen)
	if m == nil {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Expected: "8 ranks, side to move, castling, en passant, halfmove clock and fullmove number",
			Got:      fen,
		}
	}
	group := func(i int) (string, int) {
		return fen[m[2*i]:m[2*i+1]], m[2*i] + 1
	}
	named := func(name string) (string, int) {
		return group(re.SubexpIndex(name))
	}

	pos := chess.NewEmptyPosition()

	for row := 0; row < chess.BoardSize; row++ {
		text, column := group(row + 1)
		if err := parseRank(pos, row, text, column, fen); err != nil {
			return nil, err
		}
	}

	side, _ := named("side")
	if side == "w" {
		pos.ToMove = chess.White
	} else {
		pos.ToMove = chess.Black
	}

	castling, _ := named("castling")
	parseCastlingRights(pos, castling)

	ep, epColumn := named("enpassant")
	if ep != "-" {
		sq, err := chess.ParseSquare(ep)
		if err != nil {
			return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "en passant", Column: epColumn, Got: ep}
		}
		pos.EnPassant = sq
	}

	halfmove, hmColumn := named("halfmove")
	clock, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    "halfmove clock",
			Column:   hmColumn,
			Expected: "a non-negative integer",
			Got:      halfmove,
		}
	}
	pos.HalfmoveClock = uint(clock)

	return pos, nil
}

// parseRank fills one row of the board from its FEN rank description. The
// rank must account for exactly eight files.
func parseRank(pos *chess.Position, row int, text string, column int, fen string) error {
	field := fmt.Sprintf("rank %d", chess.BoardSize-row)
	col := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= '1' && c <= '8' {
			col += int(c - '0')
			if col > chess.BoardSize {
				break
			}
			continue
		}
		piece := ConvertFENCharToPiece(c)
		if piece == chess.NoPieceType {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: field, Column: column + i, Expected: "piece letter", Got: string(c)}
		}
		if col >= chess.BoardSize {
			col++
			break
		}
		colour := chess.White
		if unicode.IsLower(rune(c)) {
			colour = chess.Black
		}
		pos.Cells[row][col] = chess.Piece(piece, colour)
		col++
	}
	if col != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    field,
			Column:   column,
			Expected: "8 files",
			Got:      text,
		}
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Letters may
// appear in any order; "-" means no rights.
func parseCastlingRights(pos *chess.Position, castling string) {
	pos.WKingCastle = strings.ContainsRune(castling, 'K')
	pos.WQueenCastle = strings.ContainsRune(castling, 'Q')
	pos.BKingCastle = strings.ContainsRune(castling, 'k')
	pos.BQueenCastle = strings.ContainsRune(castling, 'q')
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *chess.Position {
	pos, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic(fmt.Sprintf("initial FEN does not decode: %v", err))
	}
	return pos
}

// MustDecodeFEN is like NewPositionFromFEN but panics on error. Intended for
// fixed positions known to be well formed.
func MustDecodeFEN(fen string) *chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}
