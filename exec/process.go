package exec

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	osexec "os/exec"
	"sync"
	"time"

	platformerrors "github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/pipe"
	"github.com/jmgilman/go/gitcli/process"
	"golang.org/x/sync/errgroup"
)

// outputBacklog is how many framed lines may wait for the consumer before
// the framers block.
const outputBacklog = 64

// Process is a streaming child process. It implements process.Process.
type Process struct {
	args       []string
	dir        string
	env        []string
	bufferSize int
	waitDelay  time.Duration
	logger     *slog.Logger

	output chan process.Output
	done   chan struct{}

	mu      sync.Mutex
	cmd     *osexec.Cmd
	stdin   io.WriteCloser
	started bool

	// Written before done is closed.
	exitCode int
	err      error
}

var _ process.Process = (*Process)(nil)

// Start launches the process and begins delivering output.
// Cancelling ctx kills the process.
func (p *Process) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return platformerrors.New(platformerrors.CodeInvalidState, "process already started")
	}
	if len(p.args) == 0 {
		return &ExecError{ExitCode: -1, Err: ErrNoCommand}
	}

	cmd := osexec.CommandContext(ctx, p.args[0], p.args[1:]...)
	cmd.Dir = p.dir
	cmd.Env = p.env
	cmd.WaitDelay = p.waitDelay

	stdout := pipe.New(p.bufferSize)
	stderr := pipe.New(p.bufferSize)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return platformerrors.Wrap(err, platformerrors.CodeExecutionFailed, "failed to open stdin")
	}

	if err := cmd.Start(); err != nil {
		return platformerrors.Wrapf(err, platformerrors.CodeExecutionFailed, "failed to start %s", p.String())
	}

	p.cmd = cmd
	p.stdin = stdin
	p.started = true
	p.logger.Debug("process started", "command", p.String(), "pid", cmd.Process.Pid, "dir", cmd.Dir)

	emit := func(o process.Output) { p.output <- o }

	var g errgroup.Group
	g.Go(func() error { return process.NewFramer(process.Stdout, emit).Run(stdout) })
	g.Go(func() error { return process.NewFramer(process.Stderr, emit).Run(stderr) })
	g.Go(func() error {
		err := cmd.Wait()
		_ = stdout.Close()
		_ = stderr.Close()
		return err
	})

	go p.finish(&g)
	return nil
}

// finish records the exit status once every pump has stopped, then ends
// the output channel.
func (p *Process) finish(g *errgroup.Group) {
	err := g.Wait()

	code := -1
	if state := p.cmd.ProcessState; state != nil {
		code = state.ExitCode()
	}
	if c, ok := exitCodeOf(err); ok {
		code = c
		err = nil
	}

	p.exitCode = code
	p.err = err
	p.logger.Debug("process exited", "command", p.String(), "exit_code", code)

	p.output <- process.ClosedOutput
	close(p.output)
	close(p.done)
}

// Kill terminates the process. Killing a finished or unstarted process is a no-op.
func (p *Process) Kill() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil || p.cmd.Process == nil {
		return nil
	}
	err := p.cmd.Process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// WaitForExit reports whether the process finished within timeout.
func (p *Process) WaitForExit(timeout time.Duration) bool {
	if !p.isStarted() {
		return false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-p.done:
		return true
	case <-timer.C:
		return false
	}
}

// Wait blocks until the process exited and all output was delivered.
func (p *Process) Wait() (int, error) {
	if !p.isStarted() {
		return -1, platformerrors.New(platformerrors.CodeInvalidState, "process not started")
	}
	<-p.done
	return p.exitCode, p.err
}

// Stdin returns the process's standard input, or nil before Start.
func (p *Process) Stdin() io.WriteCloser {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stdin
}

// Output returns the line channel.
func (p *Process) Output() <-chan process.Output {
	return p.output
}

// String renders the command line.
func (p *Process) String() string {
	return RenderCommand(p.args)
}

func (p *Process) isStarted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}
