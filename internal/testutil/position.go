package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/farce-go/internal/chess"
	"github.com/lgbarn/farce-go/internal/engine"
)

// MustFEN decodes a FEN string and calls t.Fatal if it does not decode.
func MustFEN(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("decoding %q: %v", fen, err)
	}
	return pos
}

// MustMove parses UCI move text and calls t.Fatal if it is malformed.
func MustMove(t testing.TB, text string) engine.Move {
	t.Helper()
	m, err := engine.ParseMove(text)
	if err != nil {
		t.Fatalf("parsing move %q: %v", text, err)
	}
	return m
}

// PlayMoves applies UCI moves to pos in order, failing the test on the
// first contract violation.
func PlayMoves(t testing.TB, pos *chess.Position, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if err := engine.ApplyMove(pos, MustMove(t, text)); err != nil {
			t.Fatalf("applying %s: %v", text, err)
		}
	}
}

// AssertPositionFEN fails if got differs from the position described by
// wantFEN. The board is diffed rank by rank for readability.
func AssertPositionFEN(t testing.TB, got *chess.Position, wantFEN string) {
	t.Helper()
	want := MustFEN(t, wantFEN)
	if *got == *want {
		return
	}
	if diff := cmp.Diff(want.String(), got.String()); diff != "" {
		t.Errorf("position mismatch against %q (-want +got):\n%s", wantFEN, diff)
	}
	if got.HalfmoveClock != want.HalfmoveClock {
		t.Errorf("HalfmoveClock = %d, want %d (FEN %q)", got.HalfmoveClock, want.HalfmoveClock, wantFEN)
	}
}
