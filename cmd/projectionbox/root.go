package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "projectionbox",
	Short: "Fit and query projection-box decision lists and feature maps",
	Long: `projectionbox enumerates axis-aligned rectangles over pairs of
numeric features that separate a homogeneous subset of rows from the
rest, producing either a full feature map or a greedily-validated
decision list, and applies a fitted model to new rows.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML/TOML, default: ./projectionbox.yaml)")
	rootCmd.PersistentFlags().Int("binsize", 10, "number of equal-count histogram bins per feature")
	rootCmd.PersistentFlags().Int("support", 25, "minimum rows a rectangle must cover")
	rootCmd.PersistentFlags().Float64("purity", 0.75, "minimum majority-class purity (classification)")
	rootCmd.PersistentFlags().String("mode", "low_variance", "regression scoring: low_variance|high_mean|low_mean")
	rootCmd.PersistentFlags().Int("threads", 4, "concurrent feature-pair workers")
	rootCmd.PersistentFlags().Float64("validation-fraction", 0.2, "held-out fraction for decision-list validation")
	rootCmd.PersistentFlags().Int64("seed", 1, "seed for the train/validate split and coverage bootstrap resamples")
	rootCmd.PersistentFlags().String("task", "classification", "classification|regression")
	rootCmd.PersistentFlags().String("target-column", "target", "name of the CSV target column")
	rootCmd.PersistentFlags().String("log-level", "info", "debug|info|warn")

	_ = v.BindPFlags(rootCmd.PersistentFlags())
	// runConfig's keys use underscores; bind the hyphenated flags under them.
	_ = v.BindPFlag("validation_fraction", rootCmd.PersistentFlags().Lookup("validation-fraction"))
	_ = v.BindPFlag("target_column", rootCmd.PersistentFlags().Lookup("target-column"))
	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("projectionbox")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("PROJECTIONBOX")
	v.AutomaticEnv()
	// A missing config file is not an error: flags and environment alone
	// are a complete configuration.
	_ = v.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
