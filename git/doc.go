// Package git runs git subcommands and reports their progress and failures
// as typed values.
//
// The package drives the git binary rather than reimplementing git. Each
// Client method starts one git process, parses its output with the matching
// state machine from the operation package, and returns the single terminal
// failure git reported, if any. Progress is delivered to a progress.Handler
// while the command runs.
//
// # Client
//
// A Client holds the executor, runner, logger and environment shared by
// every invocation. It is safe for concurrent use.
//
//	client := git.New(git.WithLogger(logger))
//	err := client.Fetch(ctx, "/path/to/repo", git.FetchOptions{Prune: true}, handler)
//
// Every process runs with a fixed locale (LC_ALL=C, LANG=C) so git's
// messages are the English text the parsers recognize, with prompts and the
// pager disabled. Commands that support it are passed --progress so progress
// lines are printed even when stderr is not a terminal.
//
// # Version Gate
//
// The first invocation runs git --version and refuses to continue when the
// binary is older than the configured minimum (2.23.0 by default, the
// release that introduced git switch and git restore). The result is cached
// for the lifetime of the Client.
//
// # Failures
//
// Failures are the types from the failure package and implement
// errors.PlatformError, so callers can branch on codes:
//
//	err := client.Push(ctx, dir, git.PushOptions{}, handler)
//	var rejected *failure.PushRejectedError
//	switch {
//	case stderrors.As(err, &rejected):
//		// fetch and retry
//	case errors.IsRetryable(err):
//		// network trouble
//	}
//
// When git exits non-zero without printing a recognized failure the error is
// a failure.ExitError carrying the command line and the last stderr lines.
//
// # Repository Discovery
//
// Open locates the repository containing a path with go-git, walking up to
// the directory that holds .git. Client.Pull and Client.Push use it to
// resolve the current branch and its upstream when no remote is given, and
// fail early with failure.NoUpstreamError when there is none.
package git
