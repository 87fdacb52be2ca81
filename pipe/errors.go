package pipe

import "errors"

// ErrClosed is returned by writes to a closed Buffer.
var ErrClosed = errors.New("pipe: write to closed buffer")
