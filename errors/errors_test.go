package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNoUpstream, "branch main has no upstream")

	assert.Equal(t, CodeNoUpstream, err.Code())
	assert.Equal(t, ClassificationPermanent, err.Classification())
	assert.Equal(t, "branch main has no upstream", err.Message())
	assert.Nil(t, err.Context())
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "[NO_UPSTREAM] branch main has no upstream", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidReference, "unknown revision %q", "v9")
	assert.Equal(t, `unknown revision "v9"`, err.Message())
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))
		assert.Nil(t, Wrapf(nil, CodeInternal, "ignored %d", 1))
	})

	t.Run("standard error", func(t *testing.T) {
		cause := fmt.Errorf("exec: \"git\": executable file not found in $PATH")
		err := Wrap(cause, CodeExecutionFailed, "failed to start git")

		require.True(t, stderrors.Is(err, cause))
		assert.Equal(t, CodeExecutionFailed, err.Code())
		assert.Contains(t, err.Error(), "failed to start git")
		assert.Contains(t, err.Error(), "executable file not found")
	})

	t.Run("preserves classification", func(t *testing.T) {
		inner := New(CodeNetwork, "could not resolve host")
		err := Wrap(inner, CodeExecutionFailed, "fetch failed")

		assert.Equal(t, ClassificationRetryable, err.Classification())
		assert.True(t, IsRetryable(err))
	})
}

func TestWithContext(t *testing.T) {
	err := New(CodeRejected, "push rejected")
	err = WithContext(err, "remote_ref", "refs/heads/main")
	err = WithContextMap(err, map[string]interface{}{
		"reason": "non-fast-forward",
	})

	ctx := err.Context()
	assert.Equal(t, "refs/heads/main", ctx["remote_ref"])
	assert.Equal(t, "non-fast-forward", ctx["reason"])

	// Returned maps are copies
	ctx["reason"] = "mutated"
	assert.Equal(t, "non-fast-forward", err.Context()["reason"])

	assert.Nil(t, WithContext(nil, "k", "v"))
}

func TestWithContext_StandardError(t *testing.T) {
	err := WithContext(fmt.Errorf("boom"), "k", "v")
	assert.Equal(t, CodeUnknown, err.Code())
	assert.Equal(t, "boom", err.Message())
}

func TestWithClassification(t *testing.T) {
	err := WithClassification(New(CodeRejected, "remote locked"), ClassificationRetryable)
	assert.True(t, IsRetryable(err))
	assert.Equal(t, CodeRejected, err.Code())
	assert.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, CodeUnknown, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ClassificationPermanent, GetClassification(nil))
	assert.False(t, IsRetryable(fmt.Errorf("plain")))

	wrapped := fmt.Errorf("pull: %w", New(CodeTimeout, "timed out"))
	assert.Equal(t, CodeTimeout, GetCode(wrapped))
	assert.True(t, IsRetryable(wrapped))

	var pe PlatformError
	require.True(t, As(wrapped, &pe))
	assert.Equal(t, "timed out", pe.Message())
}

func TestToJSON(t *testing.T) {
	assert.Nil(t, ToJSON(nil))

	resp := ToJSON(fmt.Errorf("plain failure"))
	assert.Equal(t, string(CodeUnknown), resp.Code)
	assert.Equal(t, "plain failure", resp.Message)
	assert.Equal(t, string(ClassificationPermanent), resp.Classification)

	err := WithContext(New(CodeConflict, "merge conflict"), "files", 2)
	resp = ToJSON(fmt.Errorf("pull: %w", err))
	assert.Equal(t, "CONFLICT", resp.Code)
	assert.Equal(t, "merge conflict", resp.Message)
	assert.Equal(t, 2, resp.Context["files"])
}

func TestMarshalJSON(t *testing.T) {
	err := New(CodeNetwork, "unable to access remote")

	data, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"code":"NETWORK_ERROR","message":"unable to access remote","classification":"RETRYABLE"}`, string(data))
}
