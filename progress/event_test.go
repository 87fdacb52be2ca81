package progress

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEventTypes(t *testing.T) {
	events := []Event{
		Progress{},
		Message{},
		SubmoduleRegistered{},
		SubmoduleCheckedOut{},
		AmbiguousReference{},
		CheckoutConflict{},
		MergeConflict{},
		FileUpdate{},
	}

	seen := make(map[string]bool)
	for _, e := range events {
		require.NotEmpty(t, e.EventType())
		assert.False(t, seen[e.EventType()], "duplicate type %q", e.EventType())
		seen[e.EventType()] = true
	}
}

func TestCheckoutConflict_TypeField(t *testing.T) {
	var e Event = CheckoutConflict{Path: "a.txt", Type: UntrackedFileRemove}

	assert.Equal(t, "checkout_conflict", e.EventType())
	assert.Equal(t, UntrackedFileRemove, e.(CheckoutConflict).Type)

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"a.txt","type":"untracked_file_remove"}`, string(data))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "tracked_file_overwrite", TrackedFileOverwrite.String())
	assert.Equal(t, "unknown", UnknownConflict.String())
	assert.Equal(t, "staged_added", StagedAdded.String())
	assert.Equal(t, "rebased", Rebased.String())
	assert.Equal(t, "unknown(42)", MessageKind(42).String())
}

func TestEventSerialization(t *testing.T) {
	c := CheckoutConflict{Path: "foo.txt", Type: UntrackedFileRemove}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"foo.txt","type":"untracked_file_remove"}`, string(data))

	out, err := yaml.Marshal(NewMessage(Hint, "use --force"))
	require.NoError(t, err)
	assert.Equal(t, "kind: hint\ntext: use --force\n", string(out))

	data, err = json.Marshal(Progress{Phase: "Counting objects", Completed: 1, Count: 3, Total: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phase":"Counting objects","completed":1,"count":3,"total":3}`, string(data))
}

func TestHandlerFuncs(t *testing.T) {
	var got []Event
	var final error
	h := HandlerFuncs{
		Progress: func(e Event) { got = append(got, e) },
		Complete: func(err error) { final = err },
	}

	h.OnProgress(NewMessage(Remote, "Total 3"))
	h.OnComplete(errors.New("boom"))

	assert.Len(t, got, 1)
	assert.EqualError(t, final, "boom")

	assert.NotPanics(t, func() {
		Discard.OnProgress(Message{})
		Discard.OnComplete(nil)
	})
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.OnProgress(NewMessage(Hint, "a"))
	r.OnProgress(NewMessage(Warning, "b"))
	r.OnProgress(NewMessage(Hint, "c"))
	r.OnComplete(nil)

	assert.Equal(t, []string{"a", "c"}, r.Messages(Hint))
	assert.True(t, r.Completed)
	assert.NoError(t, r.Err)
}
