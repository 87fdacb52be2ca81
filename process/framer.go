package process

import (
	"errors"
	"io"

	"github.com/jmgilman/go/gitcli/text"
)

const readChunk = 4096

// Framer splits a byte stream into lines ending in '\r', '\n' or "\r\n".
type Framer struct {
	source Source
	emit   func(Output)
}

// NewFramer returns a Framer that reports lines from source to emit.
func NewFramer(source Source, emit func(Output)) *Framer {
	return &Framer{source: source, emit: emit}
}

// Run reads r until io.EOF, emitting each line as soon as its terminator
// arrives. A trailing line without terminator is emitted at EOF. Run does
// not emit ClosedOutput.
func (f *Framer) Run(r io.Reader) error {
	line := text.GetBuffer()
	defer line.Release()

	chunk := make([]byte, readChunk)
	afterCR := false
	for {
		n, err := r.Read(chunk)
		for _, c := range chunk[:n] {
			switch c {
			case '\n':
				if afterCR {
					afterCR = false
					continue
				}
				f.flush(line)
			case '\r':
				afterCR = true
				f.flush(line)
				continue
			default:
				line.AppendByte(c)
			}
			afterCR = false
		}

		if errors.Is(err, io.EOF) {
			if line.Len() > 0 {
				f.flush(line)
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (f *Framer) flush(line *text.Buffer) {
	f.emit(Output{Source: f.source, Line: line.String()})
	line.Reset()
}
