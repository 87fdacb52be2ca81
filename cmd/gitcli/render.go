package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/jmgilman/go/gitcli/config"
	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/progress"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"
)

// envelope is one document of json or yaml output.
type envelope struct {
	Type string      `json:"type" yaml:"type"`
	Data interface{} `json:"data,omitempty" yaml:"data,omitempty"`
}

type encoder interface {
	Encode(v interface{}) error
}

// printer writes events, results and failures in the configured format.
// Text goes to stderr except results; structured documents go to stdout.
type printer struct {
	format string
	stdout io.Writer
	stderr io.Writer

	mu    sync.Mutex
	enc   encoder
	yaml  *yaml.Encoder
	bar   *progressbar.ProgressBar
	phase string
}

func newPrinter(format string, stdout, stderr io.Writer) *printer {
	p := &printer{format: format, stdout: stdout, stderr: stderr}
	switch format {
	case config.FormatJSON:
		p.enc = json.NewEncoder(stdout)
	case config.FormatYAML:
		p.yaml = yaml.NewEncoder(stdout)
		p.yaml.SetIndent(2)
		p.enc = p.yaml
	}
	return p
}

func (p *printer) structured() bool {
	return p.enc != nil
}

func (p *printer) emit(kind string, data interface{}) {
	if err := p.enc.Encode(envelope{Type: kind, Data: data}); err != nil {
		fmt.Fprintf(p.stderr, "failed to encode %s: %v\n", kind, err)
	}
}

// OnProgress renders a single event.
func (p *printer) OnProgress(e progress.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.structured() {
		p.emit(e.EventType(), e)
		return
	}

	if pe, ok := e.(progress.Progress); ok {
		p.progress(pe)
		return
	}
	p.finishBar()

	switch ev := e.(type) {
	case progress.Message:
		p.message(ev)
	case progress.SubmoduleRegistered:
		fmt.Fprintf(p.stderr, "Submodule %s (%s) registered for path %s\n", ev.Name, ev.URL, ev.Path)
	case progress.SubmoduleCheckedOut:
		fmt.Fprintf(p.stderr, "Submodule path %s: %s %s\n", ev.Path, ev.Action, ev.Commit)
	case progress.AmbiguousReference:
		fmt.Fprintf(p.stderr, "warning: ambiguous reference %s\n", ev.Name)
	case progress.CheckoutConflict:
		fmt.Fprintf(p.stderr, "conflict: %s (%s)\n", ev.Path, ev.Type)
	case progress.MergeConflict:
		fmt.Fprintf(p.stderr, "conflict: %s (%s)\n", ev.Path, ev.Kind)
	case progress.FileUpdate:
		fmt.Fprintf(p.stderr, "%s: %s\n", ev.Kind, ev.Path)
	}
}

// OnComplete closes any open progress bar.
func (p *printer) OnComplete(error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finishBar()
}

func (p *printer) message(m progress.Message) {
	switch m.Kind {
	case progress.Hint, progress.Warning, progress.Error, progress.Remote:
		fmt.Fprintf(p.stderr, "%s: %s\n", m.Kind, m.Text)
	default:
		fmt.Fprintln(p.stderr, m.Text)
	}
}

// progress drives one bar per phase. Phases without a total use a spinner.
func (p *printer) progress(e progress.Progress) {
	if p.bar == nil || e.Phase != p.phase {
		p.finishBar()
		total := e.Total
		if total <= 0 {
			total = -1
		}
		opts := []progressbar.Option{
			progressbar.OptionSetWriter(p.stderr),
			progressbar.OptionSetDescription(e.Phase),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionClearOnFinish(),
		}
		if e.HasBytes {
			opts = append(opts, progressbar.OptionShowBytes(true))
		}
		p.bar = progressbar.NewOptions64(total, opts...)
		p.phase = e.Phase
	}

	if e.Total > 0 && p.bar.GetMax64() != e.Total {
		p.bar.ChangeMax64(e.Total)
	}
	_ = p.bar.Set64(e.Count)
}

func (p *printer) finishBar() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	fmt.Fprintf(p.stderr, "%s: done.\n", p.phase)
	p.bar = nil
	p.phase = ""
}

// result prints the outcome of a successful command. text is used for the
// text format; data for json and yaml.
func (p *printer) result(text string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.structured() {
		p.emit("result", data)
		return
	}
	if text != "" {
		fmt.Fprintln(p.stdout, text)
	}
}

// failure prints err. Structured formats get the flattened error document.
func (p *printer) failure(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.structured() {
		p.emit("error", errors.ToJSON(err))
		return
	}

	msg := err.Error()
	if resp := errors.ToJSON(err); resp != nil && resp.Message != "" {
		msg = resp.Message
	}
	fmt.Fprintf(p.stderr, "Error: %s\n", msg)
}

// close flushes buffered yaml output.
func (p *printer) close() {
	if p.yaml != nil {
		_ = p.yaml.Close()
	}
}
