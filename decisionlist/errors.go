package decisionlist

import "errors"

// ErrEmptyModel is returned alongside a valid, empty *projection.FeatureMap
// when Build's greedy loop never finds a validation-improving candidate —
// a warning, not a failure, per §7: callers branch on errors.Is without
// losing the (empty) result.
var ErrEmptyModel = errors.New("decisionlist: no candidate improved validation")
