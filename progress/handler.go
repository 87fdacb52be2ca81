package progress

// Handler receives the events of one operation.
//
// OnProgress is called once per event, in output order, from a single
// goroutine. OnComplete is called exactly once after the last event, with the
// operation's terminal error or nil.
type Handler interface {
	OnProgress(Event)
	OnComplete(err error)
}

// HandlerFuncs adapts plain functions to Handler. Nil fields are skipped.
type HandlerFuncs struct {
	Progress func(Event)
	Complete func(error)
}

// OnProgress calls h.Progress if set.
func (h HandlerFuncs) OnProgress(e Event) {
	if h.Progress != nil {
		h.Progress(e)
	}
}

// OnComplete calls h.Complete if set.
func (h HandlerFuncs) OnComplete(err error) {
	if h.Complete != nil {
		h.Complete(err)
	}
}

// Discard is a Handler that ignores everything.
var Discard Handler = HandlerFuncs{}

// Recorder is a Handler that keeps every event. It is not safe for
// concurrent use beyond the single-goroutine contract of Handler.
type Recorder struct {
	Events    []Event
	Err       error
	Completed bool
}

// OnProgress appends e.
func (r *Recorder) OnProgress(e Event) {
	r.Events = append(r.Events, e)
}

// OnComplete records err.
func (r *Recorder) OnComplete(err error) {
	r.Err = err
	r.Completed = true
}

// Messages returns the text of every recorded Message of the given kind.
func (r *Recorder) Messages(kind MessageKind) []string {
	var out []string
	for _, e := range r.Events {
		if m, ok := e.(Message); ok && m.Kind == kind {
			out = append(out, m.Text)
		}
	}
	return out
}
