package runner

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/failure"
	"github.com/jmgilman/go/gitcli/operation"
	"github.com/jmgilman/go/gitcli/process"
	"github.com/jmgilman/go/gitcli/progress"
)

const (
	// DefaultKillTimeout is how long the runner waits for git to exit after a kill.
	DefaultKillTimeout = 5 * time.Second

	// DefaultStderrTail is how many stderr lines an ExitError carries.
	DefaultStderrTail = 5
)

// Runner runs operations against processes. It holds no per-run state and
// may be shared.
type Runner struct {
	logger      *slog.Logger
	killTimeout time.Duration
	timeout     time.Duration
	stderrTail  int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithKillTimeout sets how long to wait for git to exit after it is killed.
func WithKillTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.killTimeout = d
		}
	}
}

// WithTimeout bounds every run. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithStderrTail sets how many trailing stderr lines an ExitError keeps.
func WithStderrTail(n int) Option {
	return func(r *Runner) {
		if n >= 0 {
			r.stderrTail = n
		}
	}
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		killTimeout: DefaultKillTimeout,
		stderrTail:  DefaultStderrTail,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts proc and blocks until it has exited and its output has been
// parsed by op. It returns the operation's terminal error.
func (r *Runner) Run(ctx context.Context, op operation.Operation, proc process.Process, handler progress.Handler) error {
	return r.Start(ctx, op, proc, handler).Wait()
}

// Start starts proc and parses its output in the background.
func (r *Runner) Start(ctx context.Context, op operation.Operation, proc process.Process, handler progress.Handler) *Invocation {
	if handler == nil {
		handler = progress.Discard
	}

	var cancel context.CancelFunc
	if r.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	inv := &Invocation{
		ID:      uuid.New(),
		r:       r,
		op:      op,
		proc:    proc,
		handler: handler,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	inv.logger = r.logger.With(
		"id", inv.ID.String(),
		"operation", op.Kind().String(),
	)

	// Process layers derive their own teardown from the context, so start
	// with one that outlives cancellation and kill explicitly instead.
	if err := proc.Start(context.WithoutCancel(ctx)); err != nil {
		inv.logger.Debug("process failed to start", "command", proc.String(), "error", err)
		inv.err = err
		cancel()
		handler.OnComplete(err)
		close(inv.done)
		return inv
	}

	inv.logger.Debug("started", "command", proc.String())
	go inv.consume(ctx)
	return inv
}

// Invocation is one running operation.
type Invocation struct {
	// ID identifies the invocation in log records.
	ID uuid.UUID

	r       *Runner
	op      operation.Operation
	proc    process.Process
	handler progress.Handler
	logger  *slog.Logger
	cancel  context.CancelFunc

	done chan struct{}
	err  error
}

// Cancel stops the invocation. It does not wait; use Wait for the result.
func (inv *Invocation) Cancel() {
	inv.cancel()
}

// Wait blocks until the invocation finishes and returns its error.
func (inv *Invocation) Wait() error {
	<-inv.done
	return inv.err
}

// Done is closed when the invocation has finished.
func (inv *Invocation) Done() <-chan struct{} {
	return inv.done
}

func (inv *Invocation) consume(ctx context.Context) {
	defer close(inv.done)
	defer inv.cancel()

	start := time.Now()
	tail := newTail(inv.r.stderrTail)
	cancelled := ctx.Done()
	output := inv.proc.Output()

	for output != nil {
		select {
		case out, ok := <-output:
			if !ok {
				output = nil
				continue
			}
			if !out.Closed && out.Source == process.Stderr {
				tail.add(out.Line)
			}
			inv.op.ParseOutput(out, inv.handler.OnProgress)
		case <-cancelled:
			cancelled = nil
			inv.abort(context.Cause(ctx))
		}
	}

	exitCode, waitErr := inv.proc.Wait()
	inv.err = inv.result(exitCode, waitErr, tail.lines())

	inv.logger.Debug("finished",
		"exit_code", exitCode,
		"duration", time.Since(start),
		"error", inv.err,
	)
	inv.handler.OnComplete(inv.err)
}

// abort records the cancellation and tears the process down.
func (inv *Invocation) abort(cause error) {
	inv.logger.Debug("cancelling", "cause", cause)
	inv.op.Cancel(cause)

	if err := inv.proc.Kill(); err != nil {
		inv.logger.Warn("failed to kill process", "error", err)
	}
	go func() {
		if !inv.proc.WaitForExit(inv.r.killTimeout) {
			inv.logger.Warn("process did not exit after kill", "timeout", inv.r.killTimeout)
		}
	}()
}

func (inv *Invocation) result(exitCode int, waitErr error, stderr []string) error {
	if err := inv.op.Err(); err != nil {
		return err
	}
	if waitErr != nil {
		return errors.Wrap(waitErr, errors.CodeExecutionFailed, "failed waiting for git")
	}
	if exitCode == 0 {
		return nil
	}
	if a, ok := inv.op.(operation.ExitAcceptor); ok && a.AcceptsExit(exitCode) {
		return nil
	}
	return failure.NewExitError(inv.proc.String(), exitCode, stderr)
}
