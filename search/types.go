package search

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/histogram"
	"github.com/arborly/projectionbox/internal/telemetry"
)

// Hyperparams configures one search_all/find_easy_explain run.
type Hyperparams struct {
	Binsize int
	Support int
	Purity  float64
	Mode    histogram.Mode
	Threads int

	// Registerer receives the package's Prometheus metrics on first use.
	// Nil uses a private no-op registry, so callers that don't care about
	// metrics never touch the global default registerer.
	Registerer prometheus.Registerer
	// Logger receives one structured event per completed feature pair.
	// Nil is equivalent to telemetry.NewNop().
	Logger telemetry.Logger
}

// Validate checks every constraint from §4.4's error policy against N,
// the dataset's active row count, returning ErrInvalidParams wrapping
// the specific violation. Called before any work is dispatched. Purity
// is only meaningful for classification; regression searches ignore it.
func (hp Hyperparams) Validate(n int, task dataset.Task) error {
	if hp.Binsize <= 0 || hp.Binsize >= n {
		return fmt.Errorf("%w: binsize %d must be in (0, %d)", ErrInvalidParams, hp.Binsize, n)
	}
	if hp.Support <= 0 || hp.Support >= n {
		return fmt.Errorf("%w: support %d must be in (0, %d)", ErrInvalidParams, hp.Support, n)
	}
	if task == dataset.Classification && (hp.Purity <= 0 || hp.Purity >= 1) {
		return fmt.Errorf("%w: purity %f must be in (0, 1)", ErrInvalidParams, hp.Purity)
	}
	if hp.Threads <= 0 {
		return fmt.Errorf("%w: threads %d must be positive", ErrInvalidParams, hp.Threads)
	}
	return nil
}

func (hp Hyperparams) logger() telemetry.Logger {
	if hp.Logger == nil {
		return telemetry.NewNop()
	}
	return hp.Logger
}
