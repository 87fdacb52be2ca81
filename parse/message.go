package parse

import (
	"regexp"
	"strings"

	"github.com/jmgilman/go/gitcli/progress"
)

// MessageParser strips a literal prefix and wraps the rest in a Message.
type MessageParser struct {
	prefix string
	kind   progress.MessageKind
}

// NewMessageParser returns a parser for lines beginning with prefix.
// A line equal to prefix without its trailing space also matches, since git
// prints bare "hint:" lines as paragraph breaks.
func NewMessageParser(prefix string, kind progress.MessageKind) *MessageParser {
	return &MessageParser{prefix: prefix, kind: kind}
}

// Parse implements Parser.
func (p *MessageParser) Parse(line string) (progress.Event, error) {
	if strings.HasPrefix(line, p.prefix) {
		return progress.NewMessage(p.kind, strings.TrimRight(line[len(p.prefix):], " \t")), nil
	}
	if line == strings.TrimRight(p.prefix, " ") {
		return progress.NewMessage(p.kind, ""), nil
	}
	return nil, nil
}

// WarningErrorParser handles both "warning: " and "error: " lines.
type WarningErrorParser struct{}

// Parse implements Parser.
func (WarningErrorParser) Parse(line string) (progress.Event, error) {
	switch {
	case strings.HasPrefix(line, "warning: "):
		return progress.NewMessage(progress.Warning, strings.TrimRight(line[len("warning: "):], " \t")), nil
	case strings.HasPrefix(line, "error: "):
		return progress.NewMessage(progress.Error, strings.TrimRight(line[len("error: "):], " \t")), nil
	}
	return nil, nil
}

var ambiguousPattern = regexp.MustCompile(`^warning: refname '(?P<name>[^']+)' is ambiguous\.?$`)

// AmbiguousReferenceParser handles "warning: refname 'x' is ambiguous.".
type AmbiguousReferenceParser struct{}

// Parse implements Parser.
func (AmbiguousReferenceParser) Parse(line string) (progress.Event, error) {
	if !strings.HasPrefix(line, "warning: refname '") {
		return nil, nil
	}
	g := Groups(ambiguousPattern, line)
	if g == nil {
		return nil, nil
	}
	return progress.AmbiguousReference{Name: g["name"]}, nil
}
