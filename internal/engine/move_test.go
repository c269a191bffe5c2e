package engine_test

import (
	"testing"

	"github.com/lgbarn/farce-go/internal/chess"
	"github.com/lgbarn/farce-go/internal/engine"
	"github.com/lgbarn/farce-go/internal/errors"
	"github.com/lgbarn/farce-go/internal/testutil"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		text string
		want engine.Move
	}{
		{"e2e4", engine.Move{From: chess.Sq(chess.Row2, chess.ColE), To: chess.Sq(chess.Row4, chess.ColE)}},
		{"g1f3", engine.Move{From: chess.Sq(chess.Row1, chess.ColG), To: chess.Sq(chess.Row3, chess.ColF)}},
		{"e7e8q", engine.Move{From: chess.Sq(chess.Row7, chess.ColE), To: chess.Sq(chess.Row8, chess.ColE), Promotion: chess.Queen}},
		{"a2a1N", engine.Move{From: chess.Sq(chess.Row2, chess.ColA), To: chess.Sq(chess.Row1, chess.ColA), Promotion: chess.Knight}},
		{"b7b8r", engine.Move{From: chess.Sq(chess.Row7, chess.ColB), To: chess.Sq(chess.Row8, chess.ColB), Promotion: chess.Rook}},
		{"h2h1b", engine.Move{From: chess.Sq(chess.Row2, chess.ColH), To: chess.Sq(chess.Row1, chess.ColH), Promotion: chess.Bishop}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got, err := engine.ParseMove(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, text := range []string{"", "e2", "e2e", "e2e4qq", "0000", "e9e4", "i2e4", "e2e0", "e7e8k", "e7e8p", "e2-e4"} {
		text := text
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			_, err := engine.ParseMove(text)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
		})
	}
}

func TestMoveString(t *testing.T) {
	for _, text := range []string{"e2e4", "e7e8q", "a2a1n", "h7h8r", "c7c8b", "e1g1"} {
		m := testutil.MustMove(t, text)
		testutil.AssertEqual(t, m.String(), text)
	}
	testutil.AssertEqual(t, engine.Move{}.String(), engine.NullMoveString)
}

func TestParseMoves(t *testing.T) {
	moves, err := engine.ParseMoves([]string{"e2e4", "e7e5", "g1f3"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 3)

	_, err = engine.ParseMoves([]string{"e2e4", "e7e5x", "g1f3"})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
	testutil.AssertContains(t, err.Error(), "move 2")

	moves, err = engine.ParseMoves(nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 0)
}
