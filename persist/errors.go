package persist

import "errors"

// ErrCorrupt is returned by Load when the input bytes don't decode into
// a valid Model.
var ErrCorrupt = errors.New("persist: corrupt model data")
