// Package text provides the low-copy text primitives used to move git output
// through the parsing pipeline.
//
// ByteString is an immutable view over UTF-8 encoded bytes. Slicing a
// ByteString never copies and never splits a multi-byte code point: any
// requested bound that lands inside an encoded rune is moved to the nearest
// rune boundary inside the requested range.
//
//	line := text.FromString("Receiving objects:  23% (920758/3974313)")
//	phase := line.Slice(0, line.IndexByte(':'))
//	fmt.Println(phase.String()) // "Receiving objects"
//
// Buffer is the mutable counterpart. Buffers are pooled; callers that build
// many short strings (one per output line) should obtain them with
// GetBuffer and hand them back with Release.
//
//	buf := text.GetBuffer()
//	defer buf.Release()
//	buf.AppendString(`"`)
//	buf.AppendEscaped(`say "hi"`, '\\', '"')
//	buf.AppendString(`"`)
package text
