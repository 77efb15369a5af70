package search

import "errors"

// ErrInvalidParams is returned by Hyperparams.Validate (and by SearchAll,
// which validates before dispatching any work) when binsize, support, or
// purity falls outside its allowed range. Wrapped with the specific
// violated constraint via fmt.Errorf("%w: ...").
var ErrInvalidParams = errors.New("search: invalid hyperparameters")
