package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jmgilman/go/gitcli/progress"
)

var (
	percentPattern = regexp.MustCompile(
		`^(?P<phase>[A-Za-z][A-Za-z ]*?):\s+(?P<percent>\d{1,3})%\s+\((?P<count>\d+)/(?P<total>\d+)\)` +
			`(?:,\s+(?P<size>\d+(?:\.\d+)?)\s+(?P<unit>[A-Za-z]+)` +
			`(?:\s+\|\s+(?P<rate>\d+(?:\.\d+)?)\s+(?P<rateunit>[A-Za-z]+)/s)?)?`)

	countPattern = regexp.MustCompile(`^(?P<phase>[A-Za-z][A-Za-z ]*?):\s+(?P<count>\d+)(?P<done>, done\.)?\s*$`)
)

const remotePrefix = "remote: "

// PhaseParser parses progress lines for one phase, such as
// "Receiving objects:  23% (920758/3974313), 5.68 MiB | 2.53 MiB/s" or
// "Enumerating objects: 5, done.".
type PhaseParser struct {
	prefix string
}

// NewPhaseParser returns a parser for lines starting with "<phase>: ".
func NewPhaseParser(phase string) *PhaseParser {
	return &PhaseParser{prefix: phase + ": "}
}

// Parse implements Parser.
func (p *PhaseParser) Parse(line string) (progress.Event, error) {
	if !strings.HasPrefix(line, p.prefix) {
		return nil, nil
	}
	if ev, ok := parseProgress(line); ok {
		return ev, nil
	}
	return nil, nil
}

// RemoteProgressParser parses progress relayed from the remote, e.g.
// "remote: Counting objects:  50% (1/2)".
type RemoteProgressParser struct{}

// Parse implements Parser.
func (RemoteProgressParser) Parse(line string) (progress.Event, error) {
	if !strings.HasPrefix(line, remotePrefix) {
		return nil, nil
	}
	ev, ok := parseProgress(strings.TrimLeft(line[len(remotePrefix):], " "))
	if !ok {
		return nil, nil
	}
	ev.Remote = true
	return ev, nil
}

// parseProgress parses either the percentage or the plain count form.
// Malformed numbers are reported as no match.
func parseProgress(line string) (progress.Progress, bool) {
	if g := Groups(percentPattern, line); g != nil {
		percent, err := strconv.Atoi(g["percent"])
		if err != nil {
			return progress.Progress{}, false
		}
		count, err := strconv.ParseInt(g["count"], 10, 64)
		if err != nil {
			return progress.Progress{}, false
		}
		total, err := strconv.ParseInt(g["total"], 10, 64)
		if err != nil {
			return progress.Progress{}, false
		}

		ev := progress.Progress{
			Phase:     g["phase"],
			Completed: clampFraction(float64(percent) / 100.0),
			Count:     count,
			Total:     total,
		}
		if g["size"] != "" {
			size, err := strconv.ParseFloat(g["size"], 64)
			if err != nil {
				return progress.Progress{}, false
			}
			ev.Bytes = BytesFromMagnitude(size, g["unit"])
			ev.HasBytes = true
		}
		if g["rate"] != "" {
			rate, err := strconv.ParseFloat(g["rate"], 64)
			if err != nil {
				return progress.Progress{}, false
			}
			ev.Rate = BytesFromMagnitude(rate, g["rateunit"])
		}
		return ev, true
	}

	if g := Groups(countPattern, line); g != nil {
		count, err := strconv.ParseInt(g["count"], 10, 64)
		if err != nil {
			return progress.Progress{}, false
		}
		ev := progress.Progress{Phase: g["phase"], Count: count}
		if g["done"] != "" {
			ev.Completed = 1
			ev.Total = count
		}
		return ev, true
	}

	return progress.Progress{}, false
}

func clampFraction(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// BytesFromMagnitude converts a size printed by git, such as 5.68 MiB, to
// bytes. Units other than KiB, MiB, GiB and TiB leave value unchanged.
func BytesFromMagnitude(value float64, unit string) int64 {
	switch unit {
	case "KiB":
		value *= 1 << 10
	case "MiB":
		value *= 1 << 20
	case "GiB":
		value *= 1 << 30
	case "TiB":
		value *= 1 << 40
	}
	return int64(value)
}
