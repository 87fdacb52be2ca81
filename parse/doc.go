// Package parse turns single lines of git output into progress events.
//
// A Parser recognizes one shape of line. Parse returns (event, nil) on a
// match, (nil, nil) when the line is not its shape, and (nil, err) when the
// line describes a failure that ends the operation no matter what the exit
// status is (git submodule update exits 0 after several of these).
//
// Parsers are pure: they keep no state between lines beyond compiled
// patterns, so feeding the same line twice yields equal results.
//
// A Chain tries parsers in order and stops at the first match. Order matters
// because several shapes share a prefix; the ambiguous-reference parser must
// run before the generic warning parser, and remote progress before plain
// remote messages:
//
//	chain := parse.Network()
//	ev, err := chain.Parse("Receiving objects:  23% (920758/3974313), 5.68 MiB | 2.53 MiB/s")
//	p := ev.(progress.Progress) // Completed 0.23, Count 920758, Total 3974313
//
// ClassifyConflict is separate from the chains. Operations that collect
// conflicted paths (stash apply, merge, pull) call it directly.
package parse
