package labelencode

import "errors"

// ErrUnknownLabel is returned by Inverse when a float64 index has no
// corresponding string label (i.e., the Encoder never saw it during Fit).
var ErrUnknownLabel = errors.New("labelencode: unknown label index")
