package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arborly/projectionbox/cmd/projectionbox/internal/ingest"
	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/decisionlist"
	"github.com/arborly/projectionbox/internal/telemetry"
	"github.com/arborly/projectionbox/persist"
	"github.com/arborly/projectionbox/projection"
	"github.com/arborly/projectionbox/search"
)

func init() {
	fitCmd.Flags().String("out", "model.pbox", "output model file")
	fitCmd.Flags().Bool("full", false, "emit the full feature map instead of a greedy decision list")
	rootCmd.AddCommand(fitCmd)
}

var fitCmd = &cobra.Command{
	Use:   "fit INPUT.csv",
	Short: "Fit a feature map or decision list from a CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runFit,
}

func runFit(cmd *cobra.Command, args []string) error {
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
	hp.Logger = telemetry.New(os.Stderr, cfg.LogLevel)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("projectionbox: open input: %w", err)
	}
	defer f.Close()

	parsed, err := ingest.ReadCSV(f, cfg.TargetColumn, task)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	full, _ := cmd.Flags().GetBool("full")

	labels, err := decodedLabels(parsed)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var fm *projection.FeatureMap
	if full {
		fm, err = search.SearchAll(ctx, parsed.Dataset, hp)
		if err != nil {
			return err
		}
	} else {
		builder := decisionlist.NewBuilder()
		fm, err = builder.Build(ctx, parsed.Dataset, nil, hp, cfg.ValidationFraction, cfg.Seed)
		if err != nil && !errors.Is(err, decisionlist.ErrEmptyModel) {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "fitted %d projection(s)\n", fm.Len())
	return writeModel(outPath, fm, parsed.Dataset, task, labels)
}

// decodedLabels recovers the encoder's sorted label list in class-index
// order, since labelencode.Encoder doesn't expose its internal slice.
func decodedLabels(parsed *ingest.Result) ([]string, error) {
	if parsed.Encoder == nil {
		return nil, nil
	}
	indices := make([]float64, parsed.Encoder.Classes())
	for i := range indices {
		indices[i] = float64(i)
	}
	return parsed.Encoder.Inverse(indices)
}

func writeModel(outPath string, fm *projection.FeatureMap, ds *dataset.Dataset, task dataset.Task, labels []string) error {
	model := persist.FromFeatureMap(fm, task, ds.DefaultValue(), labels)
	b, err := persist.Save(model)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		return fmt.Errorf("projectionbox: write model: %w", err)
	}
	return nil
}
