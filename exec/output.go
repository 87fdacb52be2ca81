package exec

import (
	"bytes"
	"sync"
)

// capture records stdout and stderr separately and interleaved.
type capture struct {
	mu       sync.Mutex
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	combined bytes.Buffer
}

// streamWriter writes into one side of a capture.
type streamWriter struct {
	c   *capture
	dst *bytes.Buffer
}

func (w streamWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	w.dst.Write(p)
	w.c.combined.Write(p)
	return len(p), nil
}

func (c *capture) stdoutWriter() streamWriter {
	return streamWriter{c: c, dst: &c.stdout}
}

func (c *capture) stderrWriter() streamWriter {
	return streamWriter{c: c, dst: &c.stderr}
}

func (c *capture) result(exitCode int) *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &Result{
		Stdout:   c.stdout.String(),
		Stderr:   c.stderr.String(),
		Combined: c.combined.String(),
		ExitCode: exitCode,
	}
}
