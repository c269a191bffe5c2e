package search

import (
	"context"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/farce-go/internal/chess"
	"github.com/lgbarn/farce-go/internal/engine"
	"github.com/lgbarn/farce-go/internal/errors"
)

// MateScore is the score reported for a move that delivers checkmate.
const MateScore = 100000

var pieceValues = map[nchess.PieceType]int{
	nchess.Pawn:   100,
	nchess.Knight: 300,
	nchess.Bishop: 300,
	nchess.Rook:   500,
	nchess.Queen:  900,
}

// Greedy is a one-ply Searcher: it plays the legal move that wins the most
// material, preferring checkmate. Legal move generation is delegated to
// github.com/notnil/chess, replayed from the request's FEN and moves.
type Greedy struct{}

// NewGreedy returns a Greedy searcher.
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Search implements Searcher. It checks ctx between candidate moves and
// returns the best move seen so far when cancelled.
func (g *Greedy) Search(ctx context.Context, req Request, report func(Info)) (Result, error) {
	pos, err := replay(req.FEN, req.Moves)
	if err != nil {
		return Result{}, err
	}

	candidates := filterRootMoves(pos.ValidMoves(), req.Limits.SearchMoves)

	var res Result
	best := -MateScore - 1
	for _, mv := range candidates {
		if ctx.Err() != nil {
			break
		}
		if req.Limits.Nodes > 0 && res.Nodes >= req.Limits.Nodes {
			break
		}
		res.Nodes++

		score := scoreMove(pos, mv)
		if score <= best {
			continue
		}
		best = score
		res.BestMove = fromReferenceMove(mv)
		res.Score = score
		res.Depth = 1
		if report != nil {
			report(Info{Depth: 1, Score: score, Nodes: res.Nodes, PV: []engine.Move{res.BestMove}})
		}
	}
	return res, nil
}

// replay builds the reference position reached from fen after moves.
func replay(fen string, moves []engine.Move) (*nchess.Position, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	fenOpt, err := nchess.FEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "search: load position")
	}
	game := nchess.NewGame(fenOpt, nchess.UseNotation(nchess.UCINotation{}))
	for i, m := range moves {
		if err := game.MoveStr(m.String()); err != nil {
			return nil, errors.Wrapf(err, "search: replay move %d (%s)", i+1, m)
		}
	}
	return game.Position(), nil
}

func filterRootMoves(valid []*nchess.Move, only []engine.Move) []*nchess.Move {
	if len(only) == 0 {
		return valid
	}
	allowed := make(map[engine.Move]bool, len(only))
	for _, m := range only {
		allowed[m] = true
	}
	kept := make([]*nchess.Move, 0, len(only))
	for _, mv := range valid {
		if allowed[fromReferenceMove(mv)] {
			kept = append(kept, mv)
		}
	}
	return kept
}

func scoreMove(pos *nchess.Position, mv *nchess.Move) int {
	if pos.Update(mv).Status() == nchess.Checkmate {
		return MateScore
	}
	score := 0
	switch {
	case mv.HasTag(nchess.EnPassant):
		score += pieceValues[nchess.Pawn]
	case mv.HasTag(nchess.Capture):
		score += pieceValues[pos.Board().Piece(mv.S2()).Type()]
	}
	if promo := mv.Promo(); promo != nchess.NoPieceType {
		score += pieceValues[promo] - pieceValues[nchess.Pawn]
	}
	return score
}

func fromReferenceMove(mv *nchess.Move) engine.Move {
	m := engine.Move{
		From: referenceSquare(mv.S1()),
		To:   referenceSquare(mv.S2()),
	}
	switch mv.Promo() {
	case nchess.Knight:
		m.Promotion = chess.Knight
	case nchess.Bishop:
		m.Promotion = chess.Bishop
	case nchess.Rook:
		m.Promotion = chess.Rook
	case nchess.Queen:
		m.Promotion = chess.Queen
	}
	return m
}

func referenceSquare(sq nchess.Square) chess.Square {
	return chess.Sq(chess.BoardSize-1-int(sq.Rank()), int(sq.File()))
}
