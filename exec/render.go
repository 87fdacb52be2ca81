package exec

import (
	"strings"

	"github.com/jmgilman/go/gitcli/text"
)

// RenderCommand formats args as a shell-like command line for logs.
// Arguments containing whitespace or quotes are double quoted with inner
// quotes escaped.
func RenderCommand(args []string) string {
	buf := text.GetBuffer()
	defer buf.Release()

	for i, arg := range args {
		if i > 0 {
			buf.AppendByte(' ')
		}
		if arg != "" && !strings.ContainsAny(arg, " \t\n\"'") {
			buf.AppendString(arg)
			continue
		}
		buf.AppendByte('"')
		buf.AppendEscaped(arg, '\\', '"')
		buf.AppendByte('"')
	}
	return buf.String()
}
