package parse

import (
	"regexp"
	"strings"

	"github.com/jmgilman/go/gitcli/failure"
	"github.com/jmgilman/go/gitcli/progress"
)

var (
	registeredPattern = regexp.MustCompile(
		`^Submodule '(?P<name>[^']+)' \((?P<url>[^)]+)\) registered for path '(?P<path>[^']+)'$`)

	checkedOutPattern = regexp.MustCompile(
		`^Submodule path '(?P<path>[^']+)': (?P<action>checked out|merged in|rebased into) '(?P<commit>[0-9a-fA-F]+)'$`)
)

// SubmoduleRegisteredParser handles "Submodule 'n' (url) registered for path 'p'".
type SubmoduleRegisteredParser struct{}

// Parse implements Parser.
func (SubmoduleRegisteredParser) Parse(line string) (progress.Event, error) {
	if !strings.HasPrefix(line, "Submodule '") {
		return nil, nil
	}
	g := Groups(registeredPattern, line)
	if g == nil {
		return nil, nil
	}
	return progress.SubmoduleRegistered{Name: g["name"], URL: g["url"], Path: g["path"]}, nil
}

// SubmoduleCheckedOutParser handles "Submodule path 'p': checked out 'sha'"
// and the merged in and rebased into forms.
type SubmoduleCheckedOutParser struct{}

// Parse implements Parser.
func (SubmoduleCheckedOutParser) Parse(line string) (progress.Event, error) {
	if !strings.HasPrefix(line, "Submodule path '") {
		return nil, nil
	}
	g := Groups(checkedOutPattern, line)
	if g == nil {
		return nil, nil
	}

	action := progress.CheckedOut
	switch g["action"] {
	case "merged in":
		action = progress.Merged
	case "rebased into":
		action = progress.Rebased
	}
	return progress.SubmoduleCheckedOut{Path: g["path"], Commit: g["commit"], Action: action}, nil
}

// SubmoduleFailureParser recognizes one fatal submodule message and returns
// it as a failure.SubmoduleError.
type SubmoduleFailureParser struct {
	prefix  string
	pattern *regexp.Regexp
	reason  failure.SubmoduleReason
}

// Parse implements Parser.
func (p *SubmoduleFailureParser) Parse(line string) (progress.Event, error) {
	if !strings.HasPrefix(strings.TrimPrefix(line, "fatal: "), p.prefix) {
		return nil, nil
	}
	g := Groups(p.pattern, line)
	if g == nil {
		return nil, nil
	}

	command := g["command"]
	if command == "" {
		command = g["action"]
	}
	return nil, failure.NewSubmoduleFailure(line, p.reason, g["path"], g["revision"], command)
}

func submoduleFailure(prefix, pattern string, reason failure.SubmoduleReason) *SubmoduleFailureParser {
	return &SubmoduleFailureParser{
		prefix:  prefix,
		pattern: regexp.MustCompile(`^(?:fatal: )?` + pattern),
		reason:  reason,
	}
}

// Submodule failure parsers, in the order git can print them.
var (
	SubmoduleNotInitialized = submoduleFailure("Submodule path '",
		`Submodule path '(?P<path>[^']+)' not initialized`,
		failure.SubmoduleNotInitialized)

	SubmoduleRevisionNotFound = submoduleFailure("Unable to find current ",
		`Unable to find current (?:(?P<revision>\S+) )?revision in submodule path '(?P<path>[^']+)'`,
		failure.SubmoduleRevisionNotFound)

	SubmoduleCheckoutFailed = submoduleFailure("Unable to checkout '",
		`Unable to checkout '(?P<revision>[^']+)' in submodule path '(?P<path>[^']+)'`,
		failure.SubmoduleCheckoutFailed)

	SubmoduleUnmerged = submoduleFailure("Skipping unmerged submodule ",
		`Skipping unmerged submodule (?P<path>\S+)`,
		failure.SubmoduleUnmerged)

	SubmoduleFetchFailed = submoduleFailure("Unable to fetch in submodule path '",
		`Unable to fetch in submodule path '(?P<path>[^']+)'`,
		failure.SubmoduleFetchFailed)

	SubmoduleRecurseFailed = submoduleFailure("Failed to recurse into submodule path '",
		`Failed to recurse into submodule path '(?P<path>[^']+)'`,
		failure.SubmoduleRecurseFailed)

	SubmoduleUpdateFailed = submoduleFailure("Unable to ",
		`Unable to (?P<action>merge|rebase) '(?P<revision>[^']+)' in submodule path '(?P<path>[^']+)'`,
		failure.SubmoduleCommandFailed)

	SubmoduleCommandFailed = submoduleFailure("Execution of '",
		`Execution of '(?P<command>[^']+)' failed in submodule path '(?P<path>[^']+)'`,
		failure.SubmoduleCommandFailed)
)
