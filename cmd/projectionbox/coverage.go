package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arborly/projectionbox/cmd/projectionbox/internal/ingest"
	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/decisionlist"
)

func init() {
	rootCmd.AddCommand(coverageCmd)
}

var coverageCmd = &cobra.Command{
	Use:   "coverage INPUT.csv",
	Short: "Estimate the row-coverage fraction a decision list would reach",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverage,
}

func runCoverage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	task, err := cfg.task()
	if err != nil {
		return err
	}
	hp, err := cfg.hyperparams()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("projectionbox: open input: %w", err)
	}
	defer f.Close()

	parsed, err := ingest.ReadCSV(f, cfg.TargetColumn, task)
	if err != nil {
		return err
	}

	coverage, err := decisionlist.OptimalCoverage(context.Background(), parsed.Dataset, &baselineModel{task: task}, task, hp, cfg.Seed)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%f\n", coverage)
	return nil
}

// baselineModel is the CLI's stand-in for the "external collaborator" the
// coverage estimate measures a decision list against when the caller has
// no domain-specific model to plug in: the majority class (classification)
// or the mean (regression) of whatever it was last fit on, exactly what
// dataset.Dataset.DefaultValue computes for the whole active set.
type baselineModel struct {
	task  dataset.Task
	value float64
}

func (b *baselineModel) Fit(_ context.Context, _ [][]float64, outputs []float64) error {
	if b.task == dataset.Classification {
		counts := make(map[float64]int)
		for _, v := range outputs {
			counts[v]++
		}
		distinct := make([]float64, 0, len(counts))
		for v := range counts {
			distinct = append(distinct, v)
		}
		sort.Float64s(distinct)
		best, bestCount := 0.0, -1
		for _, v := range distinct {
			if counts[v] > bestCount {
				best, bestCount = v, counts[v]
			}
		}
		b.value = best
		return nil
	}
	var sum float64
	for _, v := range outputs {
		sum += v
	}
	if len(outputs) > 0 {
		b.value = sum / float64(len(outputs))
	}
	return nil
}

func (b *baselineModel) Predict(_ context.Context, inputs [][]float64) ([]float64, error) {
	out := make([]float64, len(inputs))
	for i := range out {
		out[i] = b.value
	}
	return out, nil
}
