// Package pipe implements the bounded byte channel that sits between a git
// process and the line framer.
//
// A Buffer is a fixed-capacity ring. Write blocks while the ring is full and
// Read blocks while it is empty; TryWrite and TryRead are the non-blocking
// variants that move whatever fits right now. Close is a one-way transition
// that wakes every waiter: pending writes fail with ErrClosed, and reads keep
// returning buffered data until it is drained, then io.EOF.
//
// A Buffer is intended for exactly one producer and one consumer. Both sides
// may block on the same condition variable for different reasons (space
// versus data), so every state change wakes all waiters.
//
//	buf := pipe.New(64 * 1024)
//	go func() {
//		_, _ = io.Copy(buf, stderr)
//		_ = buf.Close()
//	}()
//	_, _ = io.Copy(os.Stdout, buf)
package pipe
