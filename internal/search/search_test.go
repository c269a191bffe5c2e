package search

import (
	"context"
	"testing"

	"github.com/lgbarn/farce-go/internal/engine"
	"github.com/lgbarn/farce-go/internal/testutil"
)

func TestControl(t *testing.T) {
	c := NewControl(true)
	testutil.AssertTrue(t, c.Pondering(), "new pondering control")

	c.PonderHit()
	testutil.AssertFalse(t, c.Pondering(), "after ponderhit")

	c.PonderHit()
	testutil.AssertFalse(t, c.Pondering(), "ponderhit is idempotent")

	testutil.AssertFalse(t, NewControl(false).Pondering(), "normal control")
}

func TestGreedy_ChoosesMove(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		moves     []string
		only      []string
		want      string
		wantScore int
	}{
		{
			name:      "captures the queen",
			fen:       "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1",
			want:      "e4d5",
			wantScore: 900,
		},
		{
			name:      "mates in one",
			fen:       "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
			want:      "a1a8",
			wantScore: MateScore,
		},
		{
			name:      "promotes to a queen",
			fen:       "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			want:      "a7a8q",
			wantScore: 800,
		},
		{
			name:      "takes en passant",
			fen:       "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			want:      "e5d6",
			wantScore: 100,
		},
		{
			name: "honours searchmoves",
			fen:  engine.InitialFEN,
			only: []string{"g1f3"},
			want: "g1f3",
		},
		{
			name:      "searches after replayed moves",
			fen:       engine.InitialFEN,
			moves:     []string{"e2e4", "d7d5"},
			only:      []string{"e4d5", "e4e5"},
			want:      "e4d5",
			wantScore: 100,
		},
		{
			name: "empty FEN means the initial position",
			fen:  "",
			only: []string{"e2e4"},
			want: "e2e4",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := Request{FEN: tt.fen, Control: NewControl(false)}
			for _, m := range tt.moves {
				req.Moves = append(req.Moves, testutil.MustMove(t, m))
			}
			for _, m := range tt.only {
				req.Limits.SearchMoves = append(req.Limits.SearchMoves, testutil.MustMove(t, m))
			}

			res, err := NewGreedy().Search(context.Background(), req, nil)
			testutil.AssertNoError(t, err, "search")
			testutil.AssertEqual(t, res.BestMove.String(), tt.want, "best move")
			testutil.AssertEqual(t, res.Score, tt.wantScore, "score")
			testutil.AssertEqual(t, res.Depth, 1, "depth")
		})
	}
}

func TestGreedy_NoLegalMoves(t *testing.T) {
	// Black is stalemated.
	req := Request{FEN: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"}

	res, err := NewGreedy().Search(context.Background(), req, nil)
	testutil.AssertNoError(t, err, "search")
	testutil.AssertEqual(t, res.BestMove, engine.Move{}, "best move")
	testutil.AssertEqual(t, res.BestMove.String(), engine.NullMoveString, "rendered")
	testutil.AssertEqual(t, res.Nodes, uint64(0), "nodes")
}

func TestGreedy_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewGreedy().Search(ctx, Request{FEN: engine.InitialFEN}, nil)
	testutil.AssertNoError(t, err, "cancellation is not an error")
	testutil.AssertEqual(t, res.BestMove, engine.Move{}, "best move")
}

func TestGreedy_NodeLimit(t *testing.T) {
	req := Request{FEN: engine.InitialFEN, Limits: Limits{Nodes: 1}}

	res, err := NewGreedy().Search(context.Background(), req, nil)
	testutil.AssertNoError(t, err, "search")
	testutil.AssertEqual(t, res.Nodes, uint64(1), "nodes")
	if res.BestMove == (engine.Move{}) {
		t.Error("expected a move after one node")
	}
}

func TestGreedy_ReportsImprovements(t *testing.T) {
	// Pawn takes knight, rook takes queen.
	req := Request{FEN: "4k3/8/8/2n1q3/1P6/8/8/4RK2 w - - 0 1"}

	var infos []Info
	res, err := NewGreedy().Search(context.Background(), req, func(info Info) {
		infos = append(infos, info)
	})
	testutil.AssertNoError(t, err, "search")
	testutil.AssertEqual(t, res.BestMove.String(), "e1e5", "best move")

	if len(infos) == 0 {
		t.Fatal("no info reported")
	}
	last := infos[len(infos)-1]
	testutil.AssertEqual(t, last.Score, 900, "final info score")
	testutil.AssertEqual(t, len(last.PV), 1, "pv length")
	testutil.AssertEqual(t, last.PV[0], res.BestMove, "pv head")
	for i := 1; i < len(infos); i++ {
		if infos[i].Score <= infos[i-1].Score {
			t.Errorf("info %d score %d does not improve on %d", i, infos[i].Score, infos[i-1].Score)
		}
	}
}

func TestGreedy_Errors(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
	}{
		{name: "bad FEN", fen: "not a fen"},
		{name: "illegal replayed move", fen: engine.InitialFEN, moves: []string{"e2e5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{FEN: tt.fen}
			for _, m := range tt.moves {
				req.Moves = append(req.Moves, testutil.MustMove(t, m))
			}
			if _, err := NewGreedy().Search(context.Background(), req, nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}
