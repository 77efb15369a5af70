package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/histogram"
	"github.com/arborly/projectionbox/search"
)

// runConfig layers flags, environment (PROJECTIONBOX_*), and an optional
// config file through viper, the same precedence order tutu and
// datadog-agent build their config commands on.
type runConfig struct {
	Binsize            int     `mapstructure:"binsize"`
	Support            int     `mapstructure:"support"`
	Purity             float64 `mapstructure:"purity"`
	Mode               string  `mapstructure:"mode"`
	Threads            int     `mapstructure:"threads"`
	ValidationFraction float64 `mapstructure:"validation_fraction"`
	Seed               int64   `mapstructure:"seed"`
	Task               string  `mapstructure:"task"`
	TargetColumn       string  `mapstructure:"target_column"`
	LogLevel           string  `mapstructure:"log_level"`
}

func defaultConfig() runConfig {
	return runConfig{
		Binsize:            10,
		Support:            25,
		Purity:             0.75,
		Mode:               "low_variance",
		Threads:            4,
		ValidationFraction: 0.2,
		Seed:               1,
		Task:               "classification",
		TargetColumn:       "target",
		LogLevel:           "info",
	}
}

func loadConfig(v *viper.Viper) (runConfig, error) {
	cfg := defaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("projectionbox: parse config: %w", err)
	}
	return cfg, nil
}

func (c runConfig) task() (dataset.Task, error) {
	switch c.Task {
	case "classification":
		return dataset.Classification, nil
	case "regression":
		return dataset.Regression, nil
	default:
		return 0, fmt.Errorf("projectionbox: unknown task %q (want classification|regression)", c.Task)
	}
}

func (c runConfig) mode() (histogram.Mode, error) {
	switch c.Mode {
	case "low_variance":
		return histogram.LowVariance, nil
	case "high_mean":
		return histogram.HighMean, nil
	case "low_mean":
		return histogram.LowMean, nil
	default:
		return 0, fmt.Errorf("projectionbox: unknown mode %q (want low_variance|high_mean|low_mean)", c.Mode)
	}
}

func (c runConfig) hyperparams() (search.Hyperparams, error) {
	mode, err := c.mode()
	if err != nil {
		return search.Hyperparams{}, err
	}
	return search.Hyperparams{
		Binsize: c.Binsize,
		Support: c.Support,
		Purity:  c.Purity,
		Mode:    mode,
		Threads: c.Threads,
	}, nil
}
