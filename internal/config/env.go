// Package config defines environment configuration structs and loaders.
package config

import (
	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	DatasetEnvConfig
	ModelEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DatasetEnvConfig locates the fixture dataset consumed by the demo binary.
type DatasetEnvConfig struct {
	FixturePath   string `env:"FIXTURE_PATH" envDefault:"testdata/sensor.json.gz"`
	ScaleFeatures bool   `env:"SCALE_FEATURES" envDefault:"false"`
}

// ModelEnvConfig holds the knobs of the concrete models used by the demo.
type ModelEnvConfig struct {
	Seed           uint64  `env:"DECODING_SEED" envDefault:"42"`
	RidgeLambda    float64 `env:"RIDGE_LAMBDA" envDefault:"1.0"`
	LogisticRate   float64 `env:"LOGISTIC_RATE" envDefault:"0.1"`
	LogisticEpochs int     `env:"LOGISTIC_EPOCHS" envDefault:"500"`
}
