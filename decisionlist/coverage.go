package decisionlist

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/predict"
	"github.com/arborly/projectionbox/search"
)

// ErrTaskMismatch guards OptimalCoverage against a caller-supplied task
// that disagrees with the dataset it was built from.
var ErrTaskMismatch = errors.New("decisionlist: task does not match dataset")

// ErrNoBaselineModel is returned when OptimalCoverage is called without an
// external model: the algorithm's stopping rule is "stay within the
// external model's own accuracy", so there is nothing to compare against
// without one.
var ErrNoBaselineModel = errors.New("decisionlist: optimal coverage requires a non-nil external model")

const (
	coverageBootstraps        = 2
	coverageValidationFraction = 0.2
)

// OptimalCoverage ports find_optimal_coverage
// (original_source/find_projections/helper.py): it runs coverageBootstraps
// independent 80/20 train/validate resamples. On each resample it fits ext
// standalone on the training rows as a baseline and records its validation
// accuracy (classification) or MSE (regression); it also builds a decision
// list on the training rows and, for every prefix length k = 1..len(list),
// records the hybrid (first-k-rules-then-ext) validation accuracy/MSE and
// the fraction of validation rows the first k rules covered.
//
// It then picks k*, the longest prefix whose hybrid metric — judged by an
// optimistic (upper) credible bound across bootstraps — still clears the
// baseline's pessimistic (lower) credible bound, and returns the upper
// credible bound of the validation coverage recorded for k* across the
// bootstraps (the single value when only one bootstrap reached k*), or 0
// if no prefix clears it. With only two
// resamples there isn't enough data for a proper posterior, so (matching
// §4.6's note) the credible bound is a normal approximation
// (mean +/- 1.96*SE) rather than scipy.stats.bayes_mvs, which no dependency
// in this module's graph provides.
func OptimalCoverage(ctx context.Context, ds *dataset.Dataset, ext predict.ExternalModel, task dataset.Task, hp search.Hyperparams, seed int64) (float64, error) {
	if task != ds.Task() {
		return 0, ErrTaskMismatch
	}
	if ext == nil {
		return 0, ErrNoBaselineModel
	}

	original := ds.ActiveRows()
	defer ds.SetTrainingRows(original)
	if len(original) == 0 {
		return 0, nil
	}

	rng := rand.New(rand.NewSource(seed))

	baselineMetrics := make([]float64, 0, coverageBootstraps)
	// perRunMetrics[b][k-1] / perRunCoverage[b][k-1] hold the hybrid
	// metric/coverage when using the first k rules of bootstrap b's list.
	var perRunMetrics, perRunCoverage [][]float64
	maxLen := 0

	for b := 0; b < coverageBootstraps; b++ {
		train, validate := splitRows(original, coverageValidationFraction, rng)
		if len(validate) == 0 {
			continue
		}

		ds.SetTrainingRows(train)
		builder := NewBuilder()
		fm, err := builder.Build(ctx, ds, ext, hp, coverageValidationFraction, seed+int64(b)+1)
		if err != nil && !errors.Is(err, ErrEmptyModel) {
			return 0, err
		}

		if err := ext.Fit(ctx, matrixForRows(ds, train), targetsForRows(ds, train)); err != nil {
			return 0, err
		}
		extPredictions, err := ext.Predict(ctx, matrixForRows(ds, validate))
		if err != nil {
			return 0, err
		}
		baselineMetrics = append(baselineMetrics, metricValue(ds, validate, extPredictions, task))

		num := fm.Len()
		if num > maxLen {
			maxLen = num
		}

		runMetrics := make([]float64, num)
		runCoverage := make([]float64, num)
		rules := fm.All()
		for k := 1; k <= num; k++ {
			predicted := make([]float64, len(validate))
			covered := 0
			for i, row := range validate {
				matched := false
				for _, p := range rules[:k] {
					if p.PointLiesIn(ds, row) {
						predicted[i] = p.Metric
						matched = true
						covered++
						break
					}
				}
				if !matched {
					predicted[i] = extPredictions[i]
				}
			}
			runMetrics[k-1] = metricValue(ds, validate, predicted, task)
			runCoverage[k-1] = float64(covered) / float64(len(validate))
		}
		perRunMetrics = append(perRunMetrics, runMetrics)
		perRunCoverage = append(perRunCoverage, runCoverage)
	}

	if len(baselineMetrics) == 0 {
		return 0, nil
	}
	baselineMean, baselineHalfWidth := meanAndCredibleHalfWidth(baselineMetrics)
	baselineLowerBound := baselineMean - baselineHalfWidth

	// hybridMetrics/hybridCoverage[i] aggregate prefix length i+2 across
	// every bootstrap long enough to have computed it — mirroring the
	// reference implementation's loop, which starts at prefix length 2
	// (index 1), never considering a single-rule list as a stopping point.
	var hybridMetrics, hybridCoverage []float64
	for i := 1; i < maxLen; i++ {
		var gm, gc []float64
		for b := range perRunMetrics {
			if i < len(perRunMetrics[b]) {
				gm = append(gm, perRunMetrics[b][i])
				gc = append(gc, perRunCoverage[b][i])
			}
		}
		if len(gm) == 0 {
			continue
		}
		hybridMetrics = append(hybridMetrics, upperBound(gm))
		hybridCoverage = append(hybridCoverage, upperBound(gc))
	}

	index := -1
	for _, m := range hybridMetrics {
		var clears bool
		if task == dataset.Classification {
			clears = m >= baselineLowerBound
		} else {
			clears = m <= baselineLowerBound
		}
		if !clears {
			break
		}
		index++
	}

	if index < 0 {
		return 0, nil
	}
	return hybridCoverage[index], nil
}

// upperBound returns the single value itself when there's nothing to
// bound, otherwise the upper edge of a normal-approximation 95% credible
// interval around the mean.
func upperBound(xs []float64) float64 {
	if len(xs) == 1 {
		return xs[0]
	}
	mean, halfWidth := meanAndCredibleHalfWidth(xs)
	return mean + halfWidth
}

// meanAndCredibleHalfWidth returns the sample mean and the half-width of a
// normal-approximation 95% credible interval around it.
func meanAndCredibleHalfWidth(xs []float64) (mean, halfWidth float64) {
	n := float64(len(xs))
	for _, x := range xs {
		mean += x
	}
	mean /= n

	if len(xs) < 2 {
		return mean, 0
	}
	var variance float64
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= n - 1
	se := math.Sqrt(variance) / math.Sqrt(n)
	return mean, 1.96 * se
}

// metricValue scores predicted against rows' actual targets: accuracy for
// classification (higher better), mean squared error for regression
// (lower better) — the two directions OptimalCoverage's stopping rule
// compares against the baseline in.
func metricValue(ds *dataset.Dataset, rows []int, predicted []float64, task dataset.Task) float64 {
	if task == dataset.Classification {
		correct := 0
		for i, row := range rows {
			if predicted[i] == ds.Target(row) {
				correct++
			}
		}
		return float64(correct) / float64(len(rows))
	}
	var sumSq float64
	for i, row := range rows {
		d := predicted[i] - ds.Target(row)
		sumSq += d * d
	}
	return sumSq / float64(len(rows))
}

func matrixForRows(ds *dataset.Dataset, rows []int) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		v := make([]float64, ds.NumCols())
		for c := range v {
			v[c] = ds.Value(row, c)
		}
		out[i] = v
	}
	return out
}

func targetsForRows(ds *dataset.Dataset, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = ds.Target(row)
	}
	return out
}
