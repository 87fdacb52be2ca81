// Package exec runs local commands, either to completion with captured
// output or as a streaming process whose output is delivered line by line.
//
// # Captured Runs
//
// Run executes a command and returns its output once it exits:
//
//	cmd := exec.New(exec.WithInheritEnv())
//	result, err := cmd.WithDir("/repo").Run("git", "--version")
//	if err != nil {
//		var execErr *exec.ExecError
//		if errors.As(err, &execErr) {
//			fmt.Println(execErr.ExitCode, execErr.Stderr)
//		}
//	}
//	fmt.Print(result.Stdout)
//
// # Streaming Processes
//
// Process prepares a command without starting it. Once started, each line
// written to stdout or stderr arrives on the Output channel, followed by a
// closed sentinel:
//
//	p := cmd.WithDir("/repo").Process("git", "fetch", "--progress", "origin")
//	if err := p.Start(ctx); err != nil {
//		return err
//	}
//	for out := range p.Output() {
//		if out.Closed {
//			break
//		}
//		fmt.Println(out.Source, out.Line)
//	}
//	code, err := p.Wait()
//
// Each stream is copied into a bounded pipe.Buffer and split into lines by
// its own goroutine, so a slow consumer applies backpressure to git instead
// of growing memory.
//
// # Configuration
//
// Options passed to New are global defaults. The With* methods set local
// values for the next Run or Process call only:
//
//	cmd := exec.New(
//		exec.WithEnv(map[string]string{"LC_ALL": "C"}),
//		exec.WithLogger(logger),
//		exec.WithBufferSize(64*1024),
//	)
//
// # Command Wrappers
//
// CommandWrapper prepends a fixed program name, which keeps call sites short
// for tools like git:
//
//	git := exec.NewWrapper(cmd, "/usr/bin/git")
//	result, err := git.WithDir("/repo").Run("rev-parse", "HEAD")
//
// # Testing
//
// Code should accept the Executor interface so tests can substitute a mock
// that returns canned Results or scripted processes.
package exec
