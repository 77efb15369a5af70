package recttree

import "errors"

// ErrInvalidLeaf indicates SetLeaf was called with an out-of-range bin index.
var ErrInvalidLeaf = errors.New("recttree: invalid leaf index")
