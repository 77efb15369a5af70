package decisionlist

import (
	"context"
	"math/rand"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/histogram"
	"github.com/arborly/projectionbox/predict"
	"github.com/arborly/projectionbox/projection"
	"github.com/arborly/projectionbox/search"
)

// validationEpsilon is the minimum validation-metric gain a candidate
// must produce to be appended; ties and regressions stop the loop.
const validationEpsilon = 1e-9

// Build implements find_easy_explain (§4.5): split, search the training
// fold for candidates, then greedily append whichever remaining
// candidate improves held-out validation the most, stopping the moment
// none does. Restores ds's original training-row selector before
// returning, win or lose.
func (b *Builder) Build(ctx context.Context, ds *dataset.Dataset, ext predict.ExternalModel, hp search.Hyperparams, validationFraction float64, seed int64) (*projection.FeatureMap, error) {
	b.state = stateFitting
	defer func() { b.state = stateFitted }()

	originalActive := ds.ActiveRows()
	defer ds.SetTrainingRows(originalActive)

	rng := rand.New(rand.NewSource(seed))
	train, validate := splitRows(originalActive, validationFraction, rng)

	ds.SetTrainingRows(train)
	candidatesFM, err := search.SearchAll(ctx, ds, hp)
	if err != nil {
		return nil, err
	}

	numClasses := 0
	if ds.Task() == dataset.Classification {
		numClasses = numClassesOf(ds)
	}

	remaining := candidatesFM.All()
	covered := make(map[int]bool, len(train))
	chosen := projection.NewFeatureMap()
	bestMetric := evaluateMetric(ctx, ds, validate, chosen, ds.DefaultValue(), ext)

	for {
		foundIdx := -1
		var bestScore, bestTie, bestArea float64
		var bestStats histogram.Stats

		for idx, c := range remaining {
			stats := statsOverUncovered(ds, train, covered, c, numClasses)
			admissible, score, tie := scoreStats(stats, ds.Task(), hp)
			if !admissible {
				continue
			}
			area := rectangleArea(c)
			if foundIdx == -1 || isBetterCandidate(score, tie, area, bestScore, bestTie, bestArea) {
				foundIdx, bestScore, bestTie, bestArea, bestStats = idx, score, tie, area, stats
			}
		}
		if foundIdx == -1 {
			break
		}

		candidate := remaining[foundIdx]
		candidate.Stats = bestStats
		candidate.Metric = labelOf(bestStats, ds.Task(), hp.Mode)

		trial := projection.NewFeatureMap()
		for _, p := range chosen.All() {
			trial.Append(p)
		}
		trial.Append(candidate)

		trialMetric := evaluateMetric(ctx, ds, validate, trial, ds.DefaultValue(), ext)
		if trialMetric <= bestMetric+validationEpsilon {
			break // stop before appending: no validation improvement
		}

		chosen, bestMetric = trial, trialMetric
		for _, row := range train {
			if candidate.PointLiesIn(ds, row) {
				covered[row] = true
			}
		}
		remaining = append(append([]projection.Projection{}, remaining[:foundIdx]...), remaining[foundIdx+1:]...)
	}

	if chosen.Len() == 0 {
		return chosen, ErrEmptyModel
	}
	return chosen, nil
}

// isBetterCandidate applies §4.5 step 3b's tiebreak: higher score, then
// higher support (tie), then a smaller rectangle (area).
func isBetterCandidate(score, tie, area, bestScore, bestTie, bestArea float64) bool {
	if score != bestScore {
		return score > bestScore
	}
	if tie != bestTie {
		return tie > bestTie
	}
	return area < bestArea
}

func labelOf(s histogram.Stats, task dataset.Task, mode histogram.Mode) float64 {
	if task == dataset.Classification {
		class, _ := s.MajorityClass()
		return float64(class)
	}
	return s.Mean()
}

func numClassesOf(ds *dataset.Dataset) int {
	max := -1
	for _, row := range ds.ActiveRows() {
		if c := int(ds.Target(row)); c > max {
			max = c
		}
	}
	return max + 1
}

// evaluateMetric scores fm on rows: classification accuracy (higher
// better) or negative MSE (also higher better), so the greedy loop and
// OptimalCoverage compare on one consistent "higher wins" scale. ext, if
// non-nil, backs a hybrid predictor instead of ds.DefaultValue() alone.
func evaluateMetric(ctx context.Context, ds *dataset.Dataset, rows []int, fm *projection.FeatureMap, defaultValue float64, ext predict.ExternalModel) float64 {
	if len(rows) == 0 {
		return 0
	}
	var predictor *predict.Predictor
	if ext != nil {
		predictor = predict.NewHybrid(fm, defaultValue, ext)
	} else {
		predictor = predict.NewStandalone(fm, defaultValue)
	}

	if ds.Task() == dataset.Classification {
		correct := 0
		for _, row := range rows {
			v, err := predictor.Predict(ctx, ds, row)
			if err == nil && v == ds.Target(row) {
				correct++
			}
		}
		return float64(correct) / float64(len(rows))
	}

	var sumSq float64
	for _, row := range rows {
		v, err := predictor.Predict(ctx, ds, row)
		if err != nil {
			continue
		}
		diff := v - ds.Target(row)
		sumSq += diff * diff
	}
	return -(sumSq / float64(len(rows)))
}
