package progress

// Event is a single parsed unit of git output.
// The set of implementations is closed to this package.
type Event interface {
	// EventType returns a stable name for the event, used when serializing.
	EventType() string

	isEvent()
}

// Progress reports numeric progress for one phase of an operation.
type Progress struct {
	// Phase is the label git prints, e.g. "Receiving objects".
	Phase string `json:"phase" yaml:"phase"`

	// Completed is the completed fraction in [0.0, 1.0].
	Completed float64 `json:"completed" yaml:"completed"`

	// Count is the number of processed items.
	Count int64 `json:"count" yaml:"count"`

	// Total is the number of items expected. It is not guaranteed to be >= Count.
	Total int64 `json:"total" yaml:"total"`

	// Bytes is the amount of data transferred so far, when HasBytes is set.
	Bytes int64 `json:"bytes,omitempty" yaml:"bytes,omitempty"`

	// Rate is the transfer rate in bytes per second, when HasBytes is set.
	Rate int64 `json:"rate,omitempty" yaml:"rate,omitempty"`

	// HasBytes reports whether Bytes and Rate were present on the line.
	HasBytes bool `json:"-" yaml:"-"`

	// Remote is set when the line was relayed from the remote side ("remote: ").
	Remote bool `json:"remote,omitempty" yaml:"remote,omitempty"`
}

// Message is a line of text that carries no structured data.
type Message struct {
	Kind MessageKind `json:"kind" yaml:"kind"`
	Text string      `json:"text" yaml:"text"`
}

// SubmoduleRegistered reports that a submodule was registered in .git/config.
type SubmoduleRegistered struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Path string `json:"path" yaml:"path"`
}

// SubmoduleCheckedOut reports that a submodule was moved to a new commit.
type SubmoduleCheckedOut struct {
	Path   string       `json:"path" yaml:"path"`
	Commit string       `json:"commit" yaml:"commit"`
	Action UpdateAction `json:"action" yaml:"action"`
}

// AmbiguousReference reports a ref name that matches more than one ref.
type AmbiguousReference struct {
	Name string `json:"name" yaml:"name"`
}

// CheckoutConflict is a path that blocked a checkout.
type CheckoutConflict struct {
	Path string       `json:"path" yaml:"path"`
	Type ConflictType `json:"type" yaml:"type"`
}

// MergeConflict is a path git reported as conflicted while merging.
type MergeConflict struct {
	Path string            `json:"path" yaml:"path"`
	Kind MergeConflictKind `json:"kind" yaml:"kind"`
}

// FileUpdate is a working tree change reported by stash apply.
type FileUpdate struct {
	Path string     `json:"path" yaml:"path"`
	Kind UpdateKind `json:"kind" yaml:"kind"`
}

func (Progress) EventType() string            { return "progress" }
func (Message) EventType() string             { return "message" }
func (SubmoduleRegistered) EventType() string { return "submodule_registered" }
func (SubmoduleCheckedOut) EventType() string { return "submodule_checked_out" }
func (AmbiguousReference) EventType() string  { return "ambiguous_reference" }
func (CheckoutConflict) EventType() string    { return "checkout_conflict" }
func (MergeConflict) EventType() string       { return "merge_conflict" }
func (FileUpdate) EventType() string          { return "file_update" }

func (Progress) isEvent()            {}
func (Message) isEvent()             {}
func (SubmoduleRegistered) isEvent() {}
func (SubmoduleCheckedOut) isEvent() {}
func (AmbiguousReference) isEvent()  {}
func (CheckoutConflict) isEvent()    {}
func (MergeConflict) isEvent()       {}
func (FileUpdate) isEvent()          {}

// NewMessage is shorthand for a Message of the given kind.
func NewMessage(kind MessageKind, text string) Message {
	return Message{Kind: kind, Text: text}
}
