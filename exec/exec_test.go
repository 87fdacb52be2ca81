package exec

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cmd := New()
	result, err := cmd.Run("echo", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
	assert.Greater(t, result.Duration, time.Duration(0))
}

func TestRun_Failure(t *testing.T) {
	cmd := New()
	result, err := cmd.Run("sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)

	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 3, execErr.ExitCode)
	assert.Equal(t, "oops\n", execErr.Stderr)
	assert.Contains(t, execErr.Error(), `command sh -c "echo oops >&2; exit 3" failed with exit code 3`)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.ExitCode)
}

func TestRun_EmptyCommand(t *testing.T) {
	_, err := New().Run()
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestRun_Output(t *testing.T) {
	result, err := New().Run("sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
	assert.Contains(t, result.Combined, "out\n")
	assert.Contains(t, result.Combined, "err\n")
}

func TestRun_DirAndEnv(t *testing.T) {
	dir := t.TempDir()
	cmd := New(WithEnv(map[string]string{"SCOPE": "global", "KEEP": "kept"}))

	result, err := cmd.
		WithDir(dir).
		WithEnv(map[string]string{"SCOPE": "local"}).
		Run("sh", "-c", "pwd; echo $SCOPE $KEEP")
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved+"\nlocal kept\n", result.Stdout)

	// Local settings apply to a single call.
	result, err = cmd.Run("sh", "-c", "echo $SCOPE")
	require.NoError(t, err)
	assert.Equal(t, "global\n", result.Stdout)
}

func TestRun_DisableColors(t *testing.T) {
	result, err := New(WithDisableColors()).Run("sh", "-c", "echo $NO_COLOR $TERM")
	require.NoError(t, err)
	assert.Equal(t, "1 dumb\n", result.Stdout)
}

func TestRun_InheritEnv(t *testing.T) {
	t.Setenv("GITCLI_EXEC_TEST", "inherited")

	result, err := New(WithInheritEnv()).Run("sh", "-c", "echo $GITCLI_EXEC_TEST")
	require.NoError(t, err)
	assert.Equal(t, "inherited\n", result.Stdout)

	result, err = New().Run("sh", "-c", "echo \"[$GITCLI_EXEC_TEST]\"")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", result.Stdout)
}

func TestEnviron_NeverNil(t *testing.T) {
	c := newConfig()
	assert.NotNil(t, c.environ())
	assert.Empty(t, c.environ())

	c.inheritEnv = true
	assert.NotEmpty(t, c.environ())
}

func TestRun_Timeout(t *testing.T) {
	_, err := New().WithTimeout(100*time.Millisecond).Run("sleep", "5")
	require.Error(t, err)
}

func TestRun_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().WithContext(ctx).Run("sleep", "5")
	require.Error(t, err)
}

func TestClone(t *testing.T) {
	original := New(WithEnv(map[string]string{"SCOPE": "global"}))
	clone := original.Clone()

	result, err := clone.WithEnv(map[string]string{"EXTRA": "x"}).Run("sh", "-c", "echo $SCOPE $EXTRA")
	require.NoError(t, err)
	assert.Equal(t, "global x\n", result.Stdout)

	result, err = original.Run("sh", "-c", "echo \"$SCOPE [$EXTRA]\"")
	require.NoError(t, err)
	assert.Equal(t, "global []\n", result.Stdout)
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"git", "fetch", "origin"}, want: "git fetch origin"},
		{args: []string{"git", "commit", "-m", "fix the thing"}, want: `git commit -m "fix the thing"`},
		{args: []string{"git", "commit", "-m", `say "hi"`}, want: `git commit -m "say \"hi\""`},
		{args: []string{"git", "config", "user.name", ""}, want: `git config user.name ""`},
		{args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderCommand(tt.args))
		})
	}
}
