package uci

import (
	"bufio"
	"io"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/farce-go/internal/config"
	"github.com/lgbarn/farce-go/internal/engine"
	"github.com/lgbarn/farce-go/internal/errors"
)

// maxLineLength bounds a single input line.
const maxLineLength = 1 << 20

// Sender is the worker as seen by the dispatcher.
type Sender interface {
	Send(Command) error
	Responses() <-chan Response
	Close()
}

// Dispatcher reads GUI commands line by line, answers the ones it can
// handle itself and forwards the rest to the worker. It also copies the
// worker's responses to the output.
type Dispatcher struct {
	sender Sender
	cfg    *config.Config
	logger *log.Logger

	mu  sync.Mutex // serializes writes to out
	out io.Writer

	debug    atomic.Bool
	pumpOnce sync.Once
	pumpDone chan struct{}
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the diagnostics logger. The default logs to cfg.LogFile.
func WithLogger(l *log.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a dispatcher that forwards to sender and writes
// protocol lines to out.
func NewDispatcher(sender Sender, out io.Writer, cfg *config.Config, opts ...DispatcherOption) *Dispatcher {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	d := &Dispatcher{
		sender:   sender,
		cfg:      cfg,
		logger:   cfg.Logger(),
		out:      out,
		pumpDone: make(chan struct{}),
	}
	d.debug.Store(cfg.Debug)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run processes commands from in until end of input or "quit". At end of
// input the worker is closed and its remaining responses are written before
// Run returns nil. On "quit" Run returns errors.ErrQuit at once.
func (d *Dispatcher) Run(in io.Reader) error {
	d.pumpOnce.Do(func() { go d.pump() })

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		if err := d.HandleLine(scanner.Text()); err != nil {
			if errors.Is(err, errors.ErrQuit) {
				return err
			}
			d.reportError(err)
		}
	}

	d.sender.Close()
	<-d.pumpDone
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read commands")
	}
	return nil
}

// HandleLine processes one input line. Unknown commands and blank lines
// are ignored. The returned error is errors.ErrQuit or a rejected command.
func (d *Dispatcher) HandleLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]
	d.commentary("<< %s", line)

	switch name {
	case "uci":
		d.writeLines(
			"id name "+d.cfg.EngineName,
			"id author "+d.cfg.Author,
			"uciok",
		)
		return nil
	case "debug":
		return d.setDebug(args)
	case "isready":
		return d.send(IsReady{})
	case "setoption":
		opt, err := ParseSetOption(args)
		if err != nil {
			return err
		}
		return d.send(opt)
	case "register":
		return nil
	case "ucinewgame":
		return d.send(SetPosition{FEN: engine.InitialFEN, Position: *engine.NewInitialPosition()})
	case "position":
		pos, err := ParsePosition(args)
		if err != nil {
			return err
		}
		return d.send(pos)
	case "go":
		limits, err := ParseGo(args)
		if err != nil {
			return err
		}
		return d.send(Go{Limits: limits})
	case "stop":
		return d.send(Stop{})
	case "ponderhit":
		return d.send(PonderHit{})
	case "quit":
		return errors.ErrQuit
	}

	d.commentary("ignoring unknown command %q", name)
	return nil
}

// Debug reports whether UCI debug mode is on.
func (d *Dispatcher) Debug() bool {
	return d.debug.Load()
}

func (d *Dispatcher) setDebug(args []string) error {
	if len(args) == 1 {
		switch args[0] {
		case "on":
			d.debug.Store(true)
			return nil
		case "off":
			d.debug.Store(false)
			return nil
		}
	}
	return &errors.ParseError{Err: errors.ErrInvalidCommand, Input: strings.Join(args, " "), Field: "debug", Expected: "on or off"}
}

func (d *Dispatcher) send(cmd Command) error {
	if err := d.sender.Send(cmd); err != nil {
		return errors.Wrapf(err, "forward %T", cmd)
	}
	return nil
}

// pump copies worker responses to the output until the worker closes them.
func (d *Dispatcher) pump() {
	defer close(d.pumpDone)
	for r := range d.sender.Responses() {
		d.writeLines(r.String())
	}
}

func (d *Dispatcher) writeLines(lines ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, line := range lines {
		if _, err := io.WriteString(d.out, line+"\n"); err != nil {
			d.logger.Printf("write %q: %v", line, err)
			return
		}
	}
}

// reportError logs a rejected command and, in debug mode, tells the GUI.
func (d *Dispatcher) reportError(err error) {
	d.logger.Printf("%v", err)
	if d.Debug() {
		d.writeLines(Info{Text: err.Error()}.String())
	}
}

func (d *Dispatcher) commentary(format string, args ...interface{}) {
	if d.cfg.Verbosity >= config.Commentary {
		d.logger.Printf(format, args...)
	}
}
