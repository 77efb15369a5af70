package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arborly/projectionbox/cmd/projectionbox/internal/ingest"
	"github.com/arborly/projectionbox/persist"
	"github.com/arborly/projectionbox/predict"
)

func init() {
	predictCmd.Flags().String("model", "model.pbox", "fitted model file")
	rootCmd.AddCommand(predictCmd)
}

var predictCmd = &cobra.Command{
	Use:   "predict INPUT.csv",
	Short: "Apply a fitted model to every row of a CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runPredict,
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	task, err := cfg.task()
	if err != nil {
		return err
	}

	modelPath, _ := cmd.Flags().GetString("model")
	raw, err := os.ReadFile(modelPath)
	if err != nil {
		return fmt.Errorf("projectionbox: read model: %w", err)
	}
	model, err := persist.Load(raw)
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

	predictor := predict.NewStandalone(model.FeatureMap(), model.DefaultValue)
	ctx := context.Background()
	rows := parsed.Dataset.ActiveRows()
	values, err := predictor.PredictBatch(ctx, parsed.Dataset, rows)
	if err != nil {
		return err
	}

	for i, v := range values {
		if len(model.Labels) > 0 {
			idx := int(v)
			if idx >= 0 && idx < len(model.Labels) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", rows[i], model.Labels[idx])
				continue
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%f\n", rows[i], v)
	}
	return nil
}
