package operation

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/jmgilman/go/gitcli/failure"
	"github.com/jmgilman/go/gitcli/mapping"
	"github.com/jmgilman/go/gitcli/parse"
	"github.com/jmgilman/go/gitcli/process"
	"github.com/jmgilman/go/gitcli/progress"
	"github.com/jmgilman/go/gitcli/text"
)

// Emit receives the events produced by one ParseOutput call.
type Emit func(progress.Event)

// Operation is the output state machine for one git invocation.
type Operation interface {
	// Kind returns the subcommand this operation parses.
	Kind() mapping.Kind

	// ParseOutput consumes one line, or the closed sentinel, and reports
	// whether it produced an event or extended a failure message.
	ParseOutput(out process.Output, emit Emit) bool

	// Cancel records a cancellation failure unless a failure is already pending.
	Cancel(cause error)

	// Err returns the terminal failure once the output has closed.
	Err() error
}

// ExitAcceptor is implemented by operations for which some non-zero exit
// statuses are ordinary outcomes, such as a pull that stopped on conflicts.
type ExitAcceptor interface {
	AcceptsExit(code int) bool
}

// Option configures an operation.
type Option func(*options)

type options struct {
	logger *slog.Logger
	rebase bool
}

// WithLogger sets the logger for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRebase tells a pull that git was asked to rebase. Modern git prints no
// rebase banner when the rebase stops on a conflict.
func WithRebase() Option {
	return func(o *options) {
		o.rebase = true
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// machine is the operation-specific part of a state machine. Both methods
// run with the base lock held.
type machine interface {
	// parseLine handles a line while the operation is not draining.
	parseLine(line string) bool

	// closeStream runs once when the output closes, before the failure is built.
	closeStream()
}

// base implements the shared failure policy.
type base struct {
	kind     mapping.Kind
	chain    parse.Chain
	mappings []mapping.Entry
	logger   *slog.Logger
	m        machine

	mu       sync.Mutex
	draining bool
	closed   bool
	fault    *text.Buffer
	pending  func(message string) error
	err      error
	events   []progress.Event
}

func newBase(kind mapping.Kind, chain parse.Chain, opts []Option) *base {
	o := buildOptions(opts)
	return &base{
		kind:     kind,
		chain:    chain,
		mappings: mapping.For(kind),
		logger:   o.logger.With("operation", kind.String()),
	}
}

// Kind returns the operation kind.
func (b *base) Kind() mapping.Kind {
	return b.kind
}

// ParseOutput implements Operation.
func (b *base) ParseOutput(out process.Output, emit Emit) bool {
	handled, events := b.parse(out)
	if emit != nil {
		for _, ev := range events {
			emit(ev)
		}
	}
	return handled
}

func (b *base) parse(out process.Output) (bool, []progress.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false, nil
	}
	defer func() { b.events = nil }()

	if out.Closed {
		b.m.closeStream()
		b.finish()
		return true, b.events
	}

	line := strings.TrimRight(out.Line, " \t\r\n")
	if b.draining {
		b.accumulate(line)
		return true, nil
	}
	handled := b.m.parseLine(line)
	return handled, b.events
}

// Cancel implements Operation.
func (b *base) Cancel(cause error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || b.pending != nil {
		return
	}
	b.logger.Debug("operation cancelled", "cause", cause)
	b.pending = func(string) error { return failure.NewCancelledError(cause) }
	b.draining = true
}

// Err implements Operation.
func (b *base) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// publish queues ev unless the operation is draining.
func (b *base) publish(ev progress.Event) {
	if !b.draining {
		b.events = append(b.events, ev)
	}
}

// message publishes a generic message for non-empty lines.
func (b *base) message(line string) bool {
	if line == "" {
		return false
	}
	b.publish(progress.NewMessage(progress.Generic, line))
	return true
}

// startFault begins draining with line as the first line of the failure
// message. The first factory registered wins.
func (b *base) startFault(line string, factory func(message string) error) {
	if b.pending == nil {
		b.pending = factory
	}
	b.draining = true
	b.accumulate(line)
}

func (b *base) accumulate(line string) {
	if b.fault == nil {
		b.fault = text.GetBuffer()
	} else if b.fault.Len() > 0 {
		b.fault.AppendByte('\n')
	}
	b.fault.AppendString(line)
}

// fatal checks line against the mapping table and starts a fault on a match.
func (b *base) fatal(line string) bool {
	entry, ok := mapping.Match(b.mappings, line)
	if !ok {
		return false
	}
	b.logger.Debug("fatal line", "line", line, "entry", entry.String())
	b.startFault(line, func(message string) error {
		return entry.Create(failure.FatalExitCode, message)
	})
	return true
}

// standard runs the shared handling: parser chain, fatal check and generic
// fallback. Error and remote messages are checked against the mapping table
// first, since git prints several failures with those prefixes.
func (b *base) standard(line string) bool {
	ev, err := b.chain.Parse(line)
	if err != nil {
		b.startFault(line, func(message string) error {
			return failure.WithMessage(err, message)
		})
		return true
	}

	if ev != nil {
		if m, ok := ev.(progress.Message); ok && (m.Kind == progress.Error || m.Kind == progress.Remote) {
			if b.fatal(line) {
				return true
			}
		}
		b.publish(ev)
		return true
	}

	if b.fatal(line) {
		return true
	}
	return b.message(line)
}

func (b *base) finish() {
	if b.pending != nil {
		msg := ""
		if b.fault != nil {
			msg = b.fault.String()
		}
		b.err = b.pending(msg)
		b.logger.Debug("operation failed", "error", b.err)
	}
	if b.fault != nil {
		b.fault.Release()
		b.fault = nil
	}
	b.closed = true
}

// noClose is embedded by machines with nothing to do at close.
type noClose struct{}

func (noClose) closeStream() {}
