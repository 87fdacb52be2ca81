package exec

import (
	"context"
	"testing"
	"time"

	"github.com/jmgilman/go/gitcli/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapper_Run(t *testing.T) {
	sh := NewWrapper(New(), "sh")
	assert.Equal(t, "sh", sh.Program())

	result, err := sh.
		WithEnv(map[string]string{"VAR1": "value1"}).
		WithEnv(map[string]string{"VAR2": "value2"}).
		Run("-c", "echo $VAR1 $VAR2")
	require.NoError(t, err)
	assert.Equal(t, "value1 value2\n", result.Stdout)
}

func TestWrapper_Process(t *testing.T) {
	echo := NewWrapper(New(), "echo")
	p := echo.Process("streamed")
	assert.Equal(t, "echo streamed", p.String())

	require.NoError(t, p.Start(context.Background()))
	lines := drain(t, p)
	assert.Equal(t, []string{"streamed"}, lines[process.Stdout])
}

func TestWrapper_Clone(t *testing.T) {
	base := NewWrapper(New(), "sh")
	clone := base.Clone()

	result, err := clone.WithDir(t.TempDir()).Run("-c", "echo ok")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", result.Stdout)
}

// recordingExecutor is a test double that records the arguments it receives.
type recordingExecutor struct {
	dir  string
	env  map[string]string
	args []string
}

func (r *recordingExecutor) WithEnv(env map[string]string) Executor { r.env = env; return r }
func (r *recordingExecutor) WithDir(dir string) Executor            { r.dir = dir; return r }
func (r *recordingExecutor) WithContext(context.Context) Executor   { return r }
func (r *recordingExecutor) WithTimeout(time.Duration) Executor     { return r }
func (r *recordingExecutor) Clone() Executor                        { return &recordingExecutor{} }
func (r *recordingExecutor) Process(args ...string) process.Process {
	r.args = args
	return nil
}
func (r *recordingExecutor) Run(args ...string) (*Result, error) {
	r.args = args
	return &Result{Stdout: "mock output"}, nil
}

func TestWrapper_PrependsProgram(t *testing.T) {
	rec := &recordingExecutor{}
	git := NewWrapper(rec, "git")

	result, err := git.WithDir("/repo").WithEnv(map[string]string{"LC_ALL": "C"}).Run("status", "--short")
	require.NoError(t, err)
	assert.Equal(t, "mock output", result.Stdout)
	assert.Equal(t, []string{"git", "status", "--short"}, rec.args)
	assert.Equal(t, "/repo", rec.dir)
	assert.Equal(t, "C", rec.env["LC_ALL"])

	git.Process("fetch")
	assert.Equal(t, []string{"git", "fetch"}, rec.args)
}
