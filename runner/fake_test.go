package runner

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/jmgilman/go/gitcli/process"
	"github.com/jmgilman/go/gitcli/progress"
	"github.com/stretchr/testify/mock"
)

// fakeProcess replays scripted output. With hang set it keeps the stream
// open until killed.
type fakeProcess struct {
	lines    []process.Output
	exitCode int
	startErr error
	hang     bool

	output   chan process.Output
	sent     chan struct{}
	killed   chan struct{}
	exited   chan struct{}
	killOnce sync.Once

	mu       sync.Mutex
	startCtx context.Context
	kills    int
}

func newFakeProcess(exitCode int, lines ...process.Output) *fakeProcess {
	return &fakeProcess{
		lines:    lines,
		exitCode: exitCode,
		output:   make(chan process.Output),
		sent:     make(chan struct{}),
		killed:   make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

func stderr(line string) process.Output {
	return process.Output{Source: process.Stderr, Line: line}
}

func stdout(line string) process.Output {
	return process.Output{Source: process.Stdout, Line: line}
}

func (p *fakeProcess) Start(ctx context.Context) error {
	if p.startErr != nil {
		return p.startErr
	}
	p.mu.Lock()
	p.startCtx = ctx
	p.mu.Unlock()

	go func() {
		for _, out := range p.lines {
			select {
			case p.output <- out:
			case <-p.killed:
			}
		}
		close(p.sent)
		if p.hang {
			<-p.killed
			p.exitCode = -1
		}
		p.output <- process.ClosedOutput
		close(p.output)
		close(p.exited)
	}()
	return nil
}

func (p *fakeProcess) Kill() error {
	p.mu.Lock()
	p.kills++
	p.mu.Unlock()
	p.killOnce.Do(func() { close(p.killed) })
	return nil
}

func (p *fakeProcess) WaitForExit(timeout time.Duration) bool {
	select {
	case <-p.exited:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (p *fakeProcess) Wait() (int, error) {
	<-p.exited
	return p.exitCode, nil
}

func (p *fakeProcess) Stdin() io.WriteCloser { return nil }

func (p *fakeProcess) Output() <-chan process.Output { return p.output }

func (p *fakeProcess) String() string { return "git fake" }

func (p *fakeProcess) killCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.kills
}

// mockHandler is a progress.Handler backed by testify/mock.
type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) OnProgress(e progress.Event) {
	m.Called(e)
}

func (m *mockHandler) OnComplete(err error) {
	m.Called(err)
}
