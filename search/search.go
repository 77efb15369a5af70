package search

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/projection"
)

// SearchAll enumerates every ordered pair of distinct attributes and
// returns every qualifying projection found, per §4.4's search_all.
// Hyperparams are validated up front; any violation fails before any
// pair is dispatched. Work fans out over a bounded errgroup pool sized
// hp.Threads; the returned FeatureMap's order depends on worker
// scheduling and is not deterministic unless hp.Threads == 1, per §5.
func SearchAll(ctx context.Context, ds *dataset.Dataset, hp Hyperparams) (*projection.FeatureMap, error) {
	if err := hp.Validate(ds.NumActive(), ds.Task()); err != nil {
		return nil, err
	}

	classes := 0
	if ds.Task() == dataset.Classification {
		classes = numClasses(ds)
	}

	m := newMetrics(hp.Registerer)
	log := hp.logger()

	fm := projection.NewFeatureMap()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hp.Threads)

	cols := ds.NumCols()
	for a1 := 0; a1 < cols; a1++ {
		for a2 := 0; a2 < cols; a2++ {
			if a1 == a2 {
				continue
			}
			a1, a2 := a1, a2
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				start := time.Now()
				found, err := sweepPair(ds, a1, a2, hp, classes)
				elapsed := time.Since(start)
				if err != nil {
					m.observePair("error", elapsed)
					return err
				}

				mu.Lock()
				for _, p := range found {
					fm.Append(p)
				}
				mu.Unlock()

				m.observePair("ok", elapsed)
				log.Debug("feature pair processed", map[string]interface{}{
					"att1":       a1,
					"att2":       a2,
					"qualifying": len(found),
					"elapsed_ms": elapsed.Milliseconds(),
				})
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fm, nil
}
