package pipe

import (
	"io"
	"sync"
)

// DefaultCapacity is the ring size used when New is given a non-positive capacity.
const DefaultCapacity = 64 * 1024

// Buffer is a blocking circular byte buffer.
//
// The unread byte count is always TotalWritten() - TotalRead() and never
// exceeds Cap().
type Buffer struct {
	mu   sync.Mutex
	cond *sync.Cond

	data []byte
	get  int
	put  int

	totalRead    int64
	totalWritten int64
	closed       bool
}

// New creates a Buffer holding at most capacity bytes.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	b := &Buffer{data: make([]byte, capacity)}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Cap returns the ring capacity.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.unread()
}

// TotalRead returns the number of bytes consumed since creation.
func (b *Buffer) TotalRead() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalRead
}

// TotalWritten returns the number of bytes accepted since creation.
func (b *Buffer) TotalWritten() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalWritten
}

// Closed reports whether Close has been called.
func (b *Buffer) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Write copies all of p into the ring, blocking while it is full.
// If the buffer is closed before p is fully written, Write returns the
// number of bytes accepted and ErrClosed.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	written := 0
	for written < len(p) {
		for !b.closed && b.unread() == len(b.data) {
			b.cond.Wait()
		}
		if b.closed {
			return written, ErrClosed
		}
		written += b.writeLocked(p[written:])
		b.cond.Broadcast()
	}
	return written, nil
}

// TryWrite copies as much of p as currently fits and returns the count.
// It never blocks and returns 0 once the buffer is closed.
func (b *Buffer) TryWrite(p []byte) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || len(p) == 0 {
		return 0
	}
	n := b.writeLocked(p)
	if n > 0 {
		b.cond.Broadcast()
	}
	return n
}

// Read copies up to len(p) bytes out of the ring, blocking until at least
// one byte is available. Once the buffer is closed and drained, Read
// returns 0 and io.EOF.
func (b *Buffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for !b.closed && b.unread() == 0 {
		b.cond.Wait()
	}
	if b.unread() == 0 {
		return 0, io.EOF
	}
	n := b.readLocked(p)
	b.cond.Broadcast()
	return n, nil
}

// ReadFull blocks until p is filled or the buffer is closed. A short read
// caused by Close returns io.ErrUnexpectedEOF, or io.EOF if nothing was read.
func (b *Buffer) ReadFull(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	read := 0
	for read < len(p) {
		for !b.closed && b.unread() == 0 {
			b.cond.Wait()
		}
		if b.unread() == 0 {
			if read == 0 {
				return 0, io.EOF
			}
			return read, io.ErrUnexpectedEOF
		}
		read += b.readLocked(p[read:])
		b.cond.Broadcast()
	}
	return read, nil
}

// TryRead copies whatever is buffered, up to len(p), without blocking.
func (b *Buffer) TryRead(p []byte) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.readLocked(p)
	if n > 0 {
		b.cond.Broadcast()
	}
	return n
}

// Close marks the buffer closed and wakes all blocked readers and writers.
// Calling Close more than once is a no-op.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		b.cond.Broadcast()
	}
	return nil
}

func (b *Buffer) unread() int {
	return int(b.totalWritten - b.totalRead)
}

// writeLocked copies as much of p as fits. Callers hold b.mu.
func (b *Buffer) writeLocked(p []byte) int {
	free := len(b.data) - b.unread()
	if free > len(p) {
		free = len(p)
	}

	n := 0
	for n < free {
		chunk := copy(b.data[b.put:], p[n:free])
		b.put = (b.put + chunk) % len(b.data)
		n += chunk
	}
	b.totalWritten += int64(n)
	return n
}

// readLocked copies as much buffered data as fits in p. Callers hold b.mu.
func (b *Buffer) readLocked(p []byte) int {
	avail := b.unread()
	if avail > len(p) {
		avail = len(p)
	}

	n := 0
	for n < avail {
		end := len(b.data)
		if b.get+(avail-n) < end {
			end = b.get + (avail - n)
		}
		chunk := copy(p[n:avail], b.data[b.get:end])
		b.get = (b.get + chunk) % len(b.data)
		n += chunk
	}
	b.totalRead += int64(n)
	return n
}
