package predict

import (
	"context"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/projection"
)

// ExternalModel is the abstract black-box fallback collaborator (§6's
// "external collaborator, interfaces only"): an opaque regressor or
// classifier the decision-list builder's hybrid mode falls back to for
// rows no projection matches.
type ExternalModel interface {
	Fit(ctx context.Context, inputs [][]float64, outputs []float64) error
	Predict(ctx context.Context, inputs [][]float64) ([]float64, error)
}

// Predictor applies a fitted feature map (usually a decision list) by
// first-match lookup, falling back to a default value (standalone mode)
// or an ExternalModel (hybrid mode). The zero Predictor is "not fitted".
type Predictor struct {
	fm           *projection.FeatureMap
	defaultValue float64
	external     ExternalModel
}

// NewStandalone builds a Predictor with no external fallback: unmatched
// rows return defaultValue.
func NewStandalone(fm *projection.FeatureMap, defaultValue float64) *Predictor {
	return &Predictor{fm: fm, defaultValue: defaultValue}
}

// NewHybrid builds a Predictor that falls back to ext for unmatched rows
// instead of defaultValue.
func NewHybrid(fm *projection.FeatureMap, defaultValue float64, ext ExternalModel) *Predictor {
	return &Predictor{fm: fm, defaultValue: defaultValue, external: ext}
}

// Predict returns the metric of the first projection (in feature-map
// order) whose rectangle contains row, or the fallback value if none
// matches. Returns ErrNotFitted on the zero Predictor.
func (p *Predictor) Predict(ctx context.Context, ds *dataset.Dataset, row int) (float64, error) {
	if p == nil || (p.fm == nil && p.external == nil) {
		return 0, ErrNotFitted
	}
	if p.fm != nil {
		for _, proj := range p.fm.All() {
			if proj.PointLiesIn(ds, row) {
				return proj.Metric, nil
			}
		}
	}
	if p.external != nil {
		out, err := p.external.Predict(ctx, [][]float64{rowVector(ds, row)})
		if err != nil {
			return 0, err
		}
		if len(out) > 0 {
			return out[0], nil
		}
	}
	return p.defaultValue, nil
}

// PredictBatch applies Predict to every row in rows, in order.
func (p *Predictor) PredictBatch(ctx context.Context, ds *dataset.Dataset, rows []int) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		v, err := p.Predict(ctx, ds, row)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func rowVector(ds *dataset.Dataset, row int) []float64 {
	v := make([]float64, ds.NumCols())
	for c := range v {
		v[c] = ds.Value(row, c)
	}
	return v
}
