package engine

import (
	"github.com/lgbarn/farce-go/internal/chess"
	"github.com/lgbarn/farce-go/internal/errors"
)

// ApplyMove applies a move to the position in place and updates castling
// rights, the en passant target, the halfmove clock and the side to move.
//
// The move is trusted to be pseudo-legal: no legality checks are made.
// Castling is recognised as a king moving from the e-file to the g- or
// c-file, and en passant as a pawn landing on the recorded target square.
//
// ApplyMove returns a *errors.ContractError, and leaves the position
// untouched, if a square is off the board, the source square is empty, or a
// pawn reaches the last rank without a promotion type.
func ApplyMove(pos *chess.Position, m Move) error {
	if err := checkMove(pos, m); err != nil {
		return err
	}

	moving := pos.Get(m.From)
	pos.Set(m.From, chess.Empty)

	if pos.Get(m.To).IsEmpty() {
		pos.HalfmoveClock++
	} else {
		pos.HalfmoveClock = 0
	}
	pos.Set(m.To, moving)

	switch moving.Type {
	case chess.Pawn:
		applyPawnEffects(pos, m, moving.Colour)
	case chess.Rook:
		updateCastlingRightsForRook(pos, m.From)
	case chess.King:
		applyKingEffects(pos, m, moving.Colour)
	}

	pos.EnPassant = chess.NoSquare
	if moving.Type == chess.Pawn {
		pos.EnPassant = doublePushTarget(m)
	}

	pos.ToMove = pos.ToMove.Opposite()
	return nil
}

// checkMove rejects moves that break the ApplyMove contract.
func checkMove(pos *chess.Position, m Move) error {
	if !m.From.IsValid() || !m.To.IsValid() {
		return &errors.ContractError{Err: errors.ErrContractViolation, Op: "apply move", Square: m.String(), Reason: "square off the board"}
	}
	moving := pos.Get(m.From)
	if moving.IsEmpty() {
		return &errors.ContractError{Err: errors.ErrContractViolation, Op: "apply move", Square: m.From.String(), Reason: "source square is empty"}
	}
	if moving.Type == chess.Pawn && isBackRow(m.To.Row) && m.Promotion == chess.NoPieceType {
		return &errors.ContractError{Err: errors.ErrContractViolation, Op: "apply move", Square: m.To.String(), Reason: "pawn reaches last rank without promotion"}
	}
	return nil
}

// applyPawnEffects handles the pawn-only side effects of a move that has
// already been placed on the board.
func applyPawnEffects(pos *chess.Position, m Move, colour chess.Colour) {
	pos.HalfmoveClock = 0

	// The pawn taken en passant stands on the mover's source row and the
	// destination column.
	if pos.HasEnPassant() && m.To == pos.EnPassant {
		pos.Set(chess.Sq(m.From.Row, m.To.Col), chess.Empty)
	}

	if isBackRow(m.To.Row) {
		pos.Set(m.To, chess.Piece(m.Promotion, colour))
	}
}

// applyKingEffects clears the mover's castling rights and, for an e-g or
// e-c king move, brings the rook across. Whether castling was allowed is
// not checked.
func applyKingEffects(pos *chess.Position, m Move, colour chess.Colour) {
	if colour == chess.White {
		pos.WKingCastle = false
		pos.WQueenCastle = false
	} else {
		pos.BKingCastle = false
		pos.BQueenCastle = false
	}

	if m.From.Col != chess.ColE {
		return
	}
	row := m.From.Row
	switch m.To.Col {
	case chess.ColG:
		moveRook(pos, row, chess.ColH, chess.ColF)
	case chess.ColC:
		moveRook(pos, row, chess.ColA, chess.ColD)
	}
}

// moveRook relocates whatever stands on the from column of row.
func moveRook(pos *chess.Position, row, fromCol, toCol int) {
	rook := pos.Cells[row][fromCol]
	pos.Cells[row][fromCol] = chess.Empty
	pos.Cells[row][toCol] = rook
}

// updateCastlingRightsForRook removes the castling right tied to a rook
// leaving a corner square. Only the moving piece is considered: a rook
// captured on its corner keeps the right alive.
func updateCastlingRightsForRook(pos *chess.Position, from chess.Square) {
	switch from {
	case chess.Sq(chess.Row1, chess.ColA):
		pos.WQueenCastle = false
	case chess.Sq(chess.Row1, chess.ColH):
		pos.WKingCastle = false
	case chess.Sq(chess.Row8, chess.ColA):
		pos.BQueenCastle = false
	case chess.Sq(chess.Row8, chess.ColH):
		pos.BKingCastle = false
	}
}

// doublePushTarget returns the square skipped by a two-square pawn advance
// from its home row, or chess.NoSquare for any other pawn move.
func doublePushTarget(m Move) chess.Square {
	switch {
	case m.From.Row == chess.Row2 && m.To.Row == chess.Row4:
		return chess.Sq(chess.Row3, m.To.Col)
	case m.From.Row == chess.Row7 && m.To.Row == chess.Row5:
		return chess.Sq(chess.Row6, m.To.Col)
	}
	return chess.NoSquare
}

func isBackRow(row int) bool {
	return row == chess.Row1 || row == chess.Row8
}

// ApplyMoves applies a sequence of moves in order. It stops at the first
// contract violation; moves before it stay applied.
func ApplyMoves(pos *chess.Position, moves []Move) error {
	for i, m := range moves {
		if err := ApplyMove(pos, m); err != nil {
			return errors.Wrapf(err, "move %d (%s)", i+1, m)
		}
	}
	return nil
}
