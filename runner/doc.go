// Package runner drives one git process and its output state machine.
//
// The runner owns the consumer side of a process.Process: it reads the
// output channel from a single goroutine, hands every line to the
// operation, forwards the resulting events to a progress.Handler and, once
// git has exited, turns the operation's outcome and the exit status into
// one terminal error.
//
// Cancellation goes through the context. When it is done the runner
// records a cancellation failure on the operation, kills the process and
// keeps draining output until the process layer reports it closed, so the
// handler always sees OnComplete exactly once.
//
//	r := runner.New(runner.WithLogger(logger), runner.WithKillTimeout(5*time.Second))
//	err := r.Run(ctx, operation.NewFetch(), proc, handler)
package runner
