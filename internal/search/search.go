// Package search defines the contract between the engine worker and a search
// collaborator, and ships a minimal collaborator so the worker has something
// to drive.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lgbarn/farce-go/internal/chess"
	"github.com/lgbarn/farce-go/internal/engine"
)

// Limits carries the parameters of a "go" command. The worker does not
// interpret them; they are payload for the Searcher.
type Limits struct {
	SearchMoves []engine.Move // restrict the search to these root moves
	Ponder      bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MovesToGo   int
	Depth       int
	Nodes       uint64
	Mate        int
	MoveTime    time.Duration
	Infinite    bool
}

// Request is everything a Searcher needs for one search.
type Request struct {
	ID string

	// Position is the searcher's private copy of the position to search.
	Position chess.Position

	// FEN and Moves describe how Position was reached.
	FEN   string
	Moves []engine.Move

	Limits  Limits
	Options map[string]string

	// Control is shared with the worker for the lifetime of the search.
	Control *Control
}

// Result is the outcome of a search. A zero BestMove means no move was found.
type Result struct {
	BestMove engine.Move
	Ponder   engine.Move
	Score    int
	Depth    int
	Nodes    uint64
}

// Info is a progress report emitted while a search runs.
type Info struct {
	Depth int
	Score int
	Nodes uint64
	PV    []engine.Move
}

// Searcher runs one search. It must return promptly once ctx is done,
// reporting the best result found so far. Cancellation is cooperative: a
// Searcher checks ctx at points of its choosing.
type Searcher interface {
	Search(ctx context.Context, req Request, report func(Info)) (Result, error)
}

// Control is the shared state between the worker and a running search.
type Control struct {
	pondering atomic.Bool
}

// NewControl returns a Control; pondering is true for a speculative search.
func NewControl(pondering bool) *Control {
	c := &Control{}
	c.pondering.Store(pondering)
	return c
}

// Pondering reports whether the search is still speculative.
func (c *Control) Pondering() bool {
	return c.pondering.Load()
}

// PonderHit turns a speculative search into a normal one. The search keeps
// running; only its status changes.
func (c *Control) PonderHit() {
	c.pondering.Store(false)
}
