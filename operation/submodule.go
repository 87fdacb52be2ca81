package operation

import (
	"github.com/jmgilman/go/gitcli/mapping"
	"github.com/jmgilman/go/gitcli/parse"
)

// SubmoduleUpdate parses the output of git submodule update. git exits 0
// after several submodule failures, so the parser chain is where they are
// detected.
type SubmoduleUpdate struct {
	*base
	noClose
}

// NewSubmoduleUpdate creates a submodule update operation.
func NewSubmoduleUpdate(opts ...Option) *SubmoduleUpdate {
	op := &SubmoduleUpdate{base: newBase(mapping.SubmoduleUpdate, parse.Submodule(), opts)}
	op.m = op
	return op
}

func (op *SubmoduleUpdate) parseLine(line string) bool {
	return op.standard(line)
}
