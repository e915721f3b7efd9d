package main

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/spindriftlab/circdecode/internal/config"
	"github.com/spindriftlab/circdecode/internal/dataset"
	"github.com/spindriftlab/circdecode/internal/decoding"
	"github.com/spindriftlab/circdecode/internal/utils/logger"
	"github.com/spindriftlab/circdecode/pkg/model"
)

// Runs the three decoding paths over one recorded fixture. The fixture's
// target column stores the trial angle; the categorical and ordinal targets
// are derived from it the same way the recording sessions define them:
// label = 1 when cos θ > 0, ordinal value = cos θ.
func main() {
	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Sugar().Infow("starting decoding run", "fixture", cfg.FixturePath, "seed", cfg.Seed)

	ds, err := dataset.ReadFixture(cfg.FixturePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.FixturePath).Msg("failed to read fixture")
	}
	if cfg.ScaleFeatures {
		ds.Features = dataset.MinMaxScaleColumns(ds.Features)
	}

	train, test, err := dataset.SplitHalf(ds)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to split dataset")
	}
	log.Info().Int("train", train.Len()).Int("test", test.Len()).Msg("split fixture by index order")

	runCategorical(cfg, train, test)
	runOrdinal(cfg, train, test)
	runCircular(cfg, train, test)
}

func runCategorical(cfg *config.AppConfig, train, test dataset.Dataset) {
	clf := model.NewLogistic(cfg.Seed)
	clf.LearnRate = cfg.LogisticRate
	clf.Epochs = cfg.LogisticEpochs

	path, err := decoding.NewCategorical(clf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build categorical path")
	}

	catTrain, err := train.WithTarget(binaryLabels(train.Target))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to derive training labels")
	}
	catTest, err := test.WithTarget(binaryLabels(test.Target))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to derive test labels")
	}

	if err := path.Fit(catTrain); err != nil {
		log.Fatal().Err(err).Msg("categorical fit failed")
	}
	auc, err := path.Score(catTest)
	if err != nil {
		log.Fatal().Err(err).Msg("categorical scoring failed")
	}
	log.Info().Float64("auc", auc).Float64("chance", 0.5).Msg("categorical path")
}

func runOrdinal(cfg *config.AppConfig, train, test dataset.Dataset) {
	path, err := decoding.NewOrdinal(model.NewRidge(cfg.RidgeLambda))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build ordinal path")
	}

	ordTrain, err := train.WithTarget(ordinalValues(train.Target))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to derive training values")
	}
	ordTest, err := test.WithTarget(ordinalValues(test.Target))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to derive test values")
	}

	if err := path.Fit(ordTrain); err != nil {
		log.Fatal().Err(err).Msg("ordinal fit failed")
	}
	rho, err := path.Score(ordTest)
	if err != nil {
		log.Fatal().Err(err).Msg("ordinal scoring failed")
	}
	log.Info().Float64("spearman", rho).Float64("chance", 0).Msg("ordinal path")
}

func runCircular(cfg *config.AppConfig, train, test dataset.Dataset) {
	path := decoding.NewCircular(
		decoding.WithSeed(cfg.Seed),
		decoding.WithRidgeLambda(cfg.RidgeLambda),
	)

	if err := path.Fit(train.Features, train.Target); err != nil {
		log.Fatal().Err(err).Msg("circular fit failed")
	}
	report, err := path.Report(test)
	if err != nil {
		log.Fatal().Err(err).Msg("circular scoring failed")
	}
	log.Info().
		Float64("mean_abs_error", report.MeanAbsError).
		Float64("chance_centered", report.ChanceCentered).
		Float64("chance_error", math.Pi/2).
		Msg("circular path")
}

func binaryLabels(theta []float64) []float64 {
	labels := make([]float64, len(theta))
	for i, angle := range theta {
		if math.Cos(angle) > 0 {
			labels[i] = 1
		}
	}
	return labels
}

func ordinalValues(theta []float64) []float64 {
	values := make([]float64, len(theta))
	for i, angle := range theta {
		values[i] = math.Cos(angle)
	}
	return values
}
