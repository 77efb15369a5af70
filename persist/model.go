package persist

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/projection"
)

// Model is the exact fitted state §6 requires to be round-trippable: the
// ordered projection list, the fallback default value, the task it was
// fitted for, and (for classification) the label-encoder's index→string
// mapping. ID identifies one fitted run, so a predict invocation loading
// the file back can log which fit produced it.
type Model struct {
	ID           string                  `msgpack:"id"`
	Task         dataset.Task            `msgpack:"task"`
	Projections  []projection.Projection `msgpack:"projections"`
	DefaultValue float64                 `msgpack:"default_value"`
	Labels       []string                `msgpack:"labels,omitempty"`
}

// FromFeatureMap snapshots fm into a Model's Projections slice, stamping
// a fresh ID the way cartographus assigns log.ID = uuid.New().String()
// when it persists a new record.
func FromFeatureMap(fm *projection.FeatureMap, task dataset.Task, defaultValue float64, labels []string) Model {
	return Model{
		ID:           uuid.New().String(),
		Task:         task,
		Projections:  fm.All(),
		DefaultValue: defaultValue,
		Labels:       labels,
	}
}

// FeatureMap rebuilds a *projection.FeatureMap from the model's stored
// projections, in the same order they were saved.
func (m Model) FeatureMap() *projection.FeatureMap {
	fm := projection.NewFeatureMap()
	for _, p := range m.Projections {
		fm.Append(p)
	}
	return fm
}

// Save encodes m as MessagePack.
func Save(m Model) ([]byte, error) {
	b, err := msgpack.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("persist: encode: %w", err)
	}
	return b, nil
}

// Load decodes b into a Model.
func Load(b []byte) (Model, error) {
	var m Model
	if err := msgpack.Unmarshal(b, &m); err != nil {
		return Model{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return m, nil
}
