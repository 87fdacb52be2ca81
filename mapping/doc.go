// Package mapping decides which output lines end an operation and which
// failure they produce.
//
// An Entry pairs a case-insensitive prefix and suffix pattern with a failure
// constructor. Entries are declared per operation Kind, per family (all
// network operations share their transport failures), and universally. For
// returns the resolved list for one Kind, most specific entries first:
//
//	for _, e := range mapping.For(mapping.Push) {
//		if e.Matches(line) {
//			return e.Create(failure.FatalExitCode, line)
//		}
//	}
//
// Resolved lists are computed once per Kind and cached for the life of the
// process.
package mapping
