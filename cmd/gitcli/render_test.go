package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmgilman/go/gitcli/config"
	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := newPrinter(config.FormatJSON, &stdout, &stderr)

	p.OnProgress(progress.Progress{Phase: "Receiving objects", Completed: 0.5, Count: 5, Total: 10})
	p.OnProgress(progress.NewMessage(progress.Hint, "use --force"))
	p.OnProgress(progress.CheckoutConflict{Path: "foo.txt", Type: progress.TrackedFileOverwrite})
	p.OnComplete(nil)
	p.result("ignored", map[string]bool{"saved": true})

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.Empty(t, stderr.String())

	assert.JSONEq(t,
		`{"type":"progress","data":{"phase":"Receiving objects","completed":0.5,"count":5,"total":10}}`,
		lines[0])
	assert.JSONEq(t, `{"type":"message","data":{"kind":"hint","text":"use --force"}}`, lines[1])
	assert.JSONEq(t,
		`{"type":"checkout_conflict","data":{"path":"foo.txt","type":"tracked_file_overwrite"}}`,
		lines[2])
	assert.JSONEq(t, `{"type":"result","data":{"saved":true}}`, lines[3])
}

func TestPrinter_JSONFailure(t *testing.T) {
	var stdout bytes.Buffer
	p := newPrinter(config.FormatJSON, &stdout, &bytes.Buffer{})

	p.failure(errors.WithContext(errors.New(errors.CodeRejected, "push rejected"), "reason", "fetch first"))

	var doc envelope
	doc.Data = &errors.ErrorResponse{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.Equal(t, "error", doc.Type)
	resp := doc.Data.(*errors.ErrorResponse)
	assert.Equal(t, "REJECTED", resp.Code)
	assert.Equal(t, "push rejected", resp.Message)
	assert.Equal(t, "fetch first", resp.Context["reason"])
}

func TestPrinter_YAML(t *testing.T) {
	var stdout bytes.Buffer
	p := newPrinter(config.FormatYAML, &stdout, &bytes.Buffer{})

	p.OnProgress(progress.MergeConflict{Path: "a.txt", Kind: progress.ContentConflict})
	p.failure(errors.New(errors.CodeConflict, "merge failed"))
	p.close()

	out := stdout.String()
	assert.Contains(t, out, "type: merge_conflict")
	assert.Contains(t, out, "path: a.txt")
	assert.Contains(t, out, "---")
	assert.Contains(t, out, "code: CONFLICT")
	assert.Contains(t, out, "message: merge failed")
}

func TestPrinter_Text(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := newPrinter(config.FormatText, &stdout, &stderr)

	p.OnProgress(progress.Progress{Phase: "Receiving objects", Count: 1, Total: 2})
	p.OnProgress(progress.Progress{Phase: "Receiving objects", Count: 2, Total: 2})
	p.OnProgress(progress.Progress{Phase: "Resolving deltas", Count: 3, Total: 3})
	p.OnProgress(progress.NewMessage(progress.Warning, "redirecting to https://example.com/"))
	p.OnProgress(progress.NewMessage(progress.Generic, "Cloning into 'repo'..."))
	p.OnProgress(progress.FileUpdate{Path: "b.txt", Kind: progress.UnstagedModified})
	p.OnComplete(nil)
	p.result("fast_forward", nil)
	p.failure(errors.New(errors.CodeNotFound, "not a git repository"))

	errOut := stderr.String()
	assert.Contains(t, errOut, "Receiving objects: done.")
	assert.Contains(t, errOut, "Resolving deltas: done.")
	assert.Contains(t, errOut, "warning: redirecting to https://example.com/")
	assert.Contains(t, errOut, "Cloning into 'repo'...")
	assert.Contains(t, errOut, "unstaged_modified: b.txt")
	assert.Contains(t, errOut, "Error: not a git repository")
	assert.Equal(t, 1, strings.Count(errOut, "Receiving objects: done."))
	assert.Equal(t, "fast_forward\n", stdout.String())
}
