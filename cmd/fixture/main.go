package main

import (
	"flag"
	"math"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/spindriftlab/circdecode/internal/dataset"
	"github.com/spindriftlab/circdecode/internal/utils/logger"
)

// Generates a synthetic sensor fixture for the decoding demo: each trial has
// an angle target and sensor channels carrying its cos/sin components under
// noise, plus pure-noise distractor channels.
func main() {
	trials := flag.Int("trials", 200, "number of trials")
	sensors := flag.Int("sensors", 8, "sensor channels per trial (min 2)")
	noise := flag.Float64("noise", 0.1, "noise standard deviation on signal channels")
	seed := flag.Uint64("seed", 42, "generator seed")
	out := flag.String("out", "testdata/sensor.json.gz", "output path (.gz for gzip)")
	flag.Parse()

	logger.Init()

	if *sensors < 2 {
		log.Fatal().Int("sensors", *sensors).Msg("need at least 2 sensor channels")
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	features := mat.NewDense(*trials, *sensors, nil)
	theta := make([]float64, *trials)
	for i := range *trials {
		angle := rng.Float64() * 2 * math.Pi
		theta[i] = angle

		features.Set(i, 0, math.Cos(angle)+rng.NormFloat64()*(*noise))
		features.Set(i, 1, math.Sin(angle)+rng.NormFloat64()*(*noise))
		for j := 2; j < *sensors; j++ {
			features.Set(i, j, rng.NormFloat64())
		}
	}

	ds, err := dataset.New(features, theta)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to assemble dataset")
	}
	if err := dataset.WriteFixture(*out, ds); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("failed to write fixture")
	}

	log.Info().Str("path", *out).Int("trials", *trials).Int("sensors", *sensors).Msg("fixture written")
}
