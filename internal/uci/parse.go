package uci

import (
	"strconv"
	"strings"
	"time"

	"github.com/lgbarn/farce-go/internal/engine"
	"github.com/lgbarn/farce-go/internal/errors"
	"github.com/lgbarn/farce-go/internal/search"
)

// goKeywords are the sub-tokens of "go". searchmoves stops consuming moves
// at the next one of these.
var goKeywords = map[string]bool{
	"searchmoves": true,
	"ponder":      true,
	"wtime":       true,
	"btime":       true,
	"winc":        true,
	"binc":        true,
	"movestogo":   true,
	"depth":       true,
	"nodes":       true,
	"mate":        true,
	"movetime":    true,
	"infinite":    true,
}

// ParsePosition decodes the arguments of a "position" command:
//
//	startpos [moves m1 m2 ...]
//	fen <fen> [moves m1 m2 ...]
//
// The moves are applied to a fresh position. Nothing is returned unless the
// whole command decodes and applies cleanly.
func ParsePosition(args []string) (SetPosition, error) {
	if len(args) == 0 {
		return SetPosition{}, &errors.ParseError{Err: errors.ErrInvalidCommand, Field: "position", Expected: "startpos or fen"}
	}

	var fen string
	var rest []string
	switch args[0] {
	case "startpos":
		fen = engine.InitialFEN
		rest = args[1:]
	case "fen":
		end := 1
		for end < len(args) && args[end] != "moves" {
			end++
		}
		fen = strings.Join(args[1:end], " ")
		rest = args[end:]
	default:
		return SetPosition{}, &errors.ParseError{Err: errors.ErrInvalidCommand, Field: "position", Expected: "startpos or fen", Got: args[0]}
	}

	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return SetPosition{}, errors.Wrap(err, "position")
	}

	var moves []engine.Move
	if len(rest) > 0 {
		if rest[0] != "moves" {
			return SetPosition{}, &errors.ParseError{Err: errors.ErrInvalidCommand, Field: "position", Expected: "moves", Got: rest[0]}
		}
		moves, err = engine.ParseMoves(rest[1:])
		if err != nil {
			return SetPosition{}, errors.Wrap(err, "position")
		}
		if err := engine.ApplyMoves(pos, moves); err != nil {
			return SetPosition{}, errors.Wrap(err, "position")
		}
	}

	return SetPosition{FEN: fen, Moves: moves, Position: *pos}, nil
}

// ParseGo decodes the arguments of a "go" command into search limits.
// Unknown tokens are skipped. A missing or malformed value rejects the
// whole command.
func ParseGo(args []string) (search.Limits, error) {
	var limits search.Limits
	for i := 0; i < len(args); i++ {
		key := args[i]
		switch key {
		case "ponder":
			limits.Ponder = true
		case "infinite":
			limits.Infinite = true
		case "searchmoves":
			for i+1 < len(args) && !goKeywords[args[i+1]] {
				i++
				m, err := engine.ParseMove(args[i])
				if err != nil {
					return search.Limits{}, errors.Wrap(err, "go searchmoves")
				}
				limits.SearchMoves = append(limits.SearchMoves, m)
			}
		case "wtime", "btime", "winc", "binc", "movetime":
			value, err := intArg(args, i)
			if err != nil {
				return search.Limits{}, err
			}
			i++
			d := time.Duration(value) * time.Millisecond
			switch key {
			case "wtime":
				limits.WhiteTime = d
			case "btime":
				limits.BlackTime = d
			case "winc":
				limits.WhiteInc = d
			case "binc":
				limits.BlackInc = d
			case "movetime":
				limits.MoveTime = d
			}
		case "movestogo", "depth", "mate":
			value, err := intArg(args, i)
			if err != nil {
				return search.Limits{}, err
			}
			i++
			switch key {
			case "movestogo":
				limits.MovesToGo = value
			case "depth":
				limits.Depth = value
			case "mate":
				limits.Mate = value
			}
		case "nodes":
			if i+1 >= len(args) {
				return search.Limits{}, missingValue(key)
			}
			i++
			n, err := strconv.ParseUint(args[i], 10, 64)
			if err != nil {
				return search.Limits{}, &errors.ParseError{Err: errors.ErrInvalidCommand, Field: "go nodes", Expected: "non-negative integer", Got: args[i]}
			}
			limits.Nodes = n
		}
	}
	return limits, nil
}

func intArg(args []string, i int) (int, error) {
	if i+1 >= len(args) {
		return 0, missingValue(args[i])
	}
	n, err := strconv.Atoi(args[i+1])
	if err != nil {
		return 0, &errors.ParseError{Err: errors.ErrInvalidCommand, Field: "go " + args[i], Expected: "integer", Got: args[i+1]}
	}
	return n, nil
}

func missingValue(key string) error {
	return &errors.ParseError{Err: errors.ErrInvalidCommand, Field: "go " + key, Expected: "a value"}
}

// ParseSetOption decodes "name <id...> [value <x...>]". Both the name and
// the value may contain spaces.
func ParseSetOption(args []string) (SetOption, error) {
	if len(args) == 0 || args[0] != "name" {
		return SetOption{}, &errors.ParseError{Err: errors.ErrInvalidCommand, Field: "setoption", Expected: "name"}
	}

	end := 1
	for end < len(args) && args[end] != "value" {
		end++
	}
	opt := SetOption{Name: strings.Join(args[1:end], " ")}
	if opt.Name == "" {
		return SetOption{}, &errors.ParseError{Err: errors.ErrInvalidCommand, Field: "setoption name", Expected: "an option name"}
	}
	if end < len(args) {
		opt.Value = strings.Join(args[end+1:], " ")
	}
	return opt, nil
}
