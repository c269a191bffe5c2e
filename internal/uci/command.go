// Package uci implements the engine side of the Universal Chess Interface:
// the messages exchanged with the worker and the line-oriented dispatcher
// that reads GUI commands and writes engine responses.
package uci

import (
	"strconv"
	"strings"

	"github.com/lgbarn/farce-go/internal/chess"
	"github.com/lgbarn/farce-go/internal/engine"
	"github.com/lgbarn/farce-go/internal/search"
)

// Command is a message from the dispatcher to the worker. The set of
// implementations is closed.
type Command interface {
	isCommand()
}

// IsReady asks the worker to acknowledge once all earlier commands are handled.
type IsReady struct{}

// PonderHit tells the worker the opponent played the pondered move.
type PonderHit struct{}

// Stop ends the running search.
type Stop struct{}

// Go starts a search of the current position.
type Go struct {
	Limits search.Limits
}

// SetPosition replaces the worker's position. Position is fully decoded and
// has Moves applied; FEN and Moves record how it was reached.
type SetPosition struct {
	FEN      string
	Moves    []engine.Move
	Position chess.Position
}

// SetOption sets an engine option.
type SetOption struct {
	Name  string
	Value string
}

func (IsReady) isCommand()     {}
func (PonderHit) isCommand()   {}
func (Stop) isCommand()        {}
func (Go) isCommand()          {}
func (SetPosition) isCommand() {}
func (SetOption) isCommand()   {}

// Response is a message from the worker to the GUI. Each implementation
// renders as exactly one protocol line.
type Response interface {
	String() string
	isResponse()
}

// ReadyOK answers IsReady.
type ReadyOK struct{}

// BestMove reports the result of a search. A zero Move renders as "0000".
type BestMove struct {
	Move   engine.Move
	Ponder engine.Move
}

// Info reports search progress. When Text is set the line is a free-form
// "info string" and the other fields are ignored.
type Info struct {
	Depth int
	Score int
	Mate  int // moves to mate; overrides Score when non-zero
	Nodes uint64
	PV    []engine.Move
	Text  string
}

func (ReadyOK) isResponse()  {}
func (BestMove) isResponse() {}
func (Info) isResponse()     {}

func (ReadyOK) String() string {
	return "readyok"
}

func (b BestMove) String() string {
	s := "bestmove " + b.Move.String()
	if b.Ponder != (engine.Move{}) {
		s += " ponder " + b.Ponder.String()
	}
	return s
}

func (i Info) String() string {
	if i.Text != "" {
		return "info string " + i.Text
	}

	var sb strings.Builder
	sb.WriteString("info")
	if i.Depth > 0 {
		sb.WriteString(" depth ")
		sb.WriteString(strconv.Itoa(i.Depth))
	}
	if i.Mate != 0 {
		sb.WriteString(" score mate ")
		sb.WriteString(strconv.Itoa(i.Mate))
	} else {
		sb.WriteString(" score cp ")
		sb.WriteString(strconv.Itoa(i.Score))
	}
	if i.Nodes > 0 {
		sb.WriteString(" nodes ")
		sb.WriteString(strconv.FormatUint(i.Nodes, 10))
	}
	if len(i.PV) > 0 {
		sb.WriteString(" pv")
		for _, m := range i.PV {
			sb.WriteByte(' ')
			sb.WriteString(m.String())
		}
	}
	return sb.String()
}
