// Package worker runs the engine side of the UCI conversation: it owns the
// current position, starts and stops searches, and turns their results into
// responses for the GUI.
package worker

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/farce-go/internal/chess"
	"github.com/lgbarn/farce-go/internal/engine"
	"github.com/lgbarn/farce-go/internal/errors"
	"github.com/lgbarn/farce-go/internal/search"
	"github.com/lgbarn/farce-go/internal/uci"
)

// Worker processes commands one at a time, in the order they were sent,
// on its own goroutine. At most one search runs at a time.
type Worker struct {
	searcher   search.Searcher
	bufferSize int
	logger     *log.Logger
	verbose    bool

	inbox chan uci.Command
	out   chan uci.Response
	done  chan struct{}

	mu      sync.Mutex // guards closed and the close of inbox
	closed  bool
	started bool

	// Owned by the run goroutine.
	position chess.Position
	fen      string
	moves    []engine.Move
	options  map[string]string
	active   *activeSearch
}

// activeSearch is the bookkeeping for the running or finished-but-held search.
type activeSearch struct {
	id       string
	limits   search.Limits
	control  *search.Control
	cancel   context.CancelFunc
	done     chan outcome
	finished bool
	result   outcome
}

type outcome struct {
	res search.Result
	err error
}

// Option configures a Worker.
type Option func(*Worker)

// WithBufferSize sets the capacity of the inbound and outbound channels.
func WithBufferSize(size int) Option {
	return func(w *Worker) {
		if size >= 1 {
			w.bufferSize = size
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithCommentary enables a log line for every command and search.
func WithCommentary(enabled bool) Option {
	return func(w *Worker) {
		w.verbose = enabled
	}
}

// New creates a worker that searches with s. The worker starts on the
// initial position. Default buffer size is 64.
func New(s search.Searcher, opts ...Option) *Worker {
	w := &Worker{
		searcher:   s,
		bufferSize: 64,
		logger:     log.New(io.Discard, "", 0),
		position:   *engine.NewInitialPosition(),
		fen:        engine.InitialFEN,
		options:    make(map[string]string),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	// Create channels after options are applied
	w.inbox = make(chan uci.Command, w.bufferSize)
	w.out = make(chan uci.Response, w.bufferSize)
	return w
}

// Start starts the worker goroutine. Calling it more than once has no effect.
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	go w.run()
}

// Send queues a command without blocking. It returns errors.ErrWorkerBusy
// if the queue is full and errors.ErrWorkerClosed after Close.
func (w *Worker) Send(cmd uci.Command) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.ErrWorkerClosed
	}
	select {
	case w.inbox <- cmd:
		return nil
	default:
		return errors.ErrWorkerBusy
	}
}

// Responses returns the outbound channel. It is closed once the worker has
// shut down and reported its last result.
func (w *Worker) Responses() <-chan uci.Response {
	return w.out
}

// Close stops accepting commands, lets the queued ones run, cancels any
// search and reports its result, then closes Responses. It waits for the
// worker goroutine to finish and is safe to call more than once.
func (w *Worker) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.closed = true
	close(w.inbox)
	started := w.started
	w.started = true
	w.mu.Unlock()

	if !started {
		go w.run()
	}
	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)
	defer close(w.out)

	for {
		var searchDone <-chan outcome
		if w.active != nil && !w.active.finished {
			searchDone = w.active.done
		}

		select {
		case cmd, ok := <-w.inbox:
			if !ok {
				w.stopSearch()
				return
			}
			w.handle(cmd)
		case o := <-searchDone:
			w.active.finished = true
			w.active.result = o
			w.releaseIfDue()
		}
	}
}

func (w *Worker) handle(cmd uci.Command) {
	w.commentary("command %T", cmd)

	switch c := cmd.(type) {
	case uci.IsReady:
		w.out <- uci.ReadyOK{}
	case uci.Stop:
		w.stopSearch()
	case uci.PonderHit:
		if w.active != nil {
			w.active.control.PonderHit()
			w.releaseIfDue()
		}
	case uci.Go:
		w.stopSearch()
		w.startSearch(c.Limits)
	case uci.SetPosition:
		w.position = c.Position
		w.fen = c.FEN
		w.moves = append([]engine.Move(nil), c.Moves...)
	case uci.SetOption:
		w.options[strings.ToLower(c.Name)] = c.Value
	}
}

func (w *Worker) startSearch(limits search.Limits) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &activeSearch{
		id:      uuid.NewString(),
		limits:  limits,
		control: search.NewControl(limits.Ponder),
		cancel:  cancel,
		done:    make(chan outcome, 1),
	}

	options := make(map[string]string, len(w.options))
	for k, v := range w.options {
		options[k] = v
	}
	req := search.Request{
		ID:       s.id,
		Position: w.position,
		FEN:      w.fen,
		Moves:    append([]engine.Move(nil), w.moves...),
		Limits:   limits,
		Options:  options,
		Control:  s.control,
	}

	w.commentary("search %s started", s.id)
	go func() {
		res, err := w.searcher.Search(ctx, req, func(info search.Info) {
			w.out <- toInfo(info)
		})
		s.done <- outcome{res: res, err: err}
	}()
	w.active = s
}

// stopSearch cancels the active search, waits for it and reports its result.
func (w *Worker) stopSearch() {
	s := w.active
	if s == nil {
		return
	}
	s.cancel()
	if !s.finished {
		s.result = <-s.done
		s.finished = true
	}
	w.report(s)
}

// releaseIfDue reports a finished search unless its result is held back
// for pondering or an infinite search.
func (w *Worker) releaseIfDue() {
	s := w.active
	if s == nil || !s.finished {
		return
	}
	if s.limits.Infinite || s.control.Pondering() {
		return
	}
	w.report(s)
}

func (w *Worker) report(s *activeSearch) {
	s.cancel()
	w.active = nil

	if s.result.err != nil {
		w.logger.Printf("search %s failed: %v", s.id, s.result.err)
		w.out <- uci.BestMove{}
		return
	}
	w.commentary("search %s finished: %v after %d nodes", s.id, s.result.res.BestMove, s.result.res.Nodes)
	w.out <- uci.BestMove{Move: s.result.res.BestMove, Ponder: s.result.res.Ponder}
}

func (w *Worker) commentary(format string, args ...interface{}) {
	if w.verbose {
		w.logger.Printf(format, args...)
	}
}

func toInfo(info search.Info) uci.Info {
	out := uci.Info{
		Depth: info.Depth,
		Score: info.Score,
		Nodes: info.Nodes,
		PV:    info.PV,
	}
	if info.Score >= search.MateScore {
		out.Mate = 1
	}
	return out
}
