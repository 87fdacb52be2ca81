package parse

import (
	"regexp"

	"github.com/jmgilman/go/gitcli/progress"
)

// Parser recognizes one shape of output line.
type Parser interface {
	// Parse returns the event for line, (nil, nil) if line does not match,
	// or a failure when the line is unconditionally fatal.
	Parse(line string) (progress.Event, error)
}

// Func adapts a function to Parser.
type Func func(line string) (progress.Event, error)

// Parse calls f.
func (f Func) Parse(line string) (progress.Event, error) {
	return f(line)
}

// Chain is an ordered list of parsers. The first match wins.
type Chain []Parser

// Parse runs line through the chain. It returns (nil, nil) when no parser
// matched.
func (c Chain) Parse(line string) (progress.Event, error) {
	for _, p := range c {
		ev, err := p.Parse(line)
		if err != nil || ev != nil {
			return ev, err
		}
	}
	return nil, nil
}

// Groups returns the named submatches of re in s, or nil without a match.
func Groups(re *regexp.Regexp, s string) map[string]string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			out[name] = m[i]
		}
	}
	return out
}
