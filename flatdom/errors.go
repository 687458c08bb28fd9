package flatdom

import "github.com/pkg/errors"

// These are panic values, not return values: every one of them marks a
// contract violation by the tree-construction algorithm driving the sink,
// after which the two sides have desynchronized and the construction pass
// cannot continue. Embedders that prefer to fail soft can recover and match
// with errors.Is.
var (
	ErrUnsupported  = errors.New("flatdom: unsupported operation")
	ErrNotAnElement = errors.New("flatdom: node is not an element")
	ErrDetached     = errors.New("flatdom: node has no parent")
	ErrFinished     = errors.New("flatdom: sink already finished")
)
