// Package operation holds one output state machine per git subcommand.
//
// An Operation consumes the output of a single git invocation, one line at a
// time, and turns it into progress events and at most one terminal error:
//
//	op := operation.NewFetch()
//	for out := range proc.Output() {
//		op.ParseOutput(out, handler.OnProgress)
//	}
//	if err := op.Err(); err != nil {
//		return err
//	}
//
// Every machine follows the same failure policy. When a line is recognized
// as fatal, either through the mapping table for the operation's kind or
// through an operation-specific check, the operation starts draining: no
// further events are emitted and every later line is appended to the
// failure message. The failure is built only when the output closes, so its
// message carries all of git's context. The first failure wins; Cancel
// takes part in the same race.
//
// ParseOutput is safe to call from several goroutines, and Cancel and Err
// may be called concurrently with it. Events are delivered after the
// operation's lock is released, so a callback may call Cancel.
package operation
