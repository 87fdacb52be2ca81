package git

import (
	"context"
	"io"
	"maps"
	"sync"
	"time"

	"github.com/jmgilman/go/gitcli/exec"
	"github.com/jmgilman/go/gitcli/process"
)

// call is one Process invocation seen by recordingExecutor.
type call struct {
	args []string
	dir  string
	env  map[string]string
}

type recording struct {
	mu       sync.Mutex
	version  string
	nRuns    int
	calls    []call
	lines    []process.Output
	exitCode int
}

// recordingExecutor answers git --version with a fixed string and replays
// scripted output for every process.
type recordingExecutor struct {
	rec *recording
	dir string
	env map[string]string
}

func newRecordingExecutor(version string) *recordingExecutor {
	return &recordingExecutor{
		rec: &recording{version: version},
		env: make(map[string]string),
	}
}

// script sets the output and exit status of later processes.
func (e *recordingExecutor) script(exitCode int, lines ...string) {
	e.rec.mu.Lock()
	defer e.rec.mu.Unlock()
	e.rec.exitCode = exitCode
	e.rec.lines = nil
	for _, l := range lines {
		e.rec.lines = append(e.rec.lines, process.Output{Source: process.Stderr, Line: l})
	}
}

func (e *recordingExecutor) runs() int {
	e.rec.mu.Lock()
	defer e.rec.mu.Unlock()
	return e.rec.nRuns
}

func (e *recordingExecutor) processes() []call {
	e.rec.mu.Lock()
	defer e.rec.mu.Unlock()
	return append([]call(nil), e.rec.calls...)
}

func (e *recordingExecutor) last() call {
	calls := e.processes()
	if len(calls) == 0 {
		return call{}
	}
	return calls[len(calls)-1]
}

func (e *recordingExecutor) WithEnv(env map[string]string) exec.Executor {
	maps.Copy(e.env, env)
	return e
}

func (e *recordingExecutor) WithDir(dir string) exec.Executor {
	e.dir = dir
	return e
}

func (e *recordingExecutor) WithContext(context.Context) exec.Executor { return e }

func (e *recordingExecutor) WithTimeout(time.Duration) exec.Executor { return e }

func (e *recordingExecutor) Run(args ...string) (*exec.Result, error) {
	e.rec.mu.Lock()
	defer e.rec.mu.Unlock()
	e.rec.nRuns++
	return &exec.Result{Stdout: e.rec.version}, nil
}

func (e *recordingExecutor) Process(args ...string) process.Process {
	e.rec.mu.Lock()
	defer e.rec.mu.Unlock()
	e.rec.calls = append(e.rec.calls, call{
		args: append([]string(nil), args...),
		dir:  e.dir,
		env:  maps.Clone(e.env),
	})
	return &scriptedProcess{
		lines:    append([]process.Output(nil), e.rec.lines...),
		exitCode: e.rec.exitCode,
		output:   make(chan process.Output, len(e.rec.lines)+1),
		done:     make(chan struct{}),
	}
}

func (e *recordingExecutor) Clone() exec.Executor {
	return &recordingExecutor{rec: e.rec, env: make(map[string]string)}
}

// scriptedProcess emits its lines and exits as soon as it is started.
type scriptedProcess struct {
	lines    []process.Output
	exitCode int
	output   chan process.Output
	done     chan struct{}
}

func (p *scriptedProcess) Start(context.Context) error {
	for _, l := range p.lines {
		p.output <- l
	}
	p.output <- process.ClosedOutput
	close(p.output)
	close(p.done)
	return nil
}

func (p *scriptedProcess) Kill() error { return nil }

func (p *scriptedProcess) WaitForExit(time.Duration) bool { return true }

func (p *scriptedProcess) Wait() (int, error) {
	<-p.done
	return p.exitCode, nil
}

func (p *scriptedProcess) Stdin() io.WriteCloser { return nil }

func (p *scriptedProcess) Output() <-chan process.Output { return p.output }

func (p *scriptedProcess) String() string { return "git scripted" }
