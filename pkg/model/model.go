// Package model defines the trainable model abstraction the decoding paths
// delegate to, plus two concrete implementations sufficient to exercise the
// library end to end. Decoders depend only on the interfaces; any estimator
// satisfying them can be substituted.
package model

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrShapeMismatch = errors.New("model: feature/target dimensions disagree")
	ErrNotFitted     = errors.New("model: predict called before fit")
)

// Regressor is a trainable real-valued predictor.
type Regressor interface {
	Fit(features *mat.Dense, target []float64) error
	Predict(features *mat.Dense) ([]float64, error)
}

// Classifier is a trainable binary classifier exposing class posteriors.
// The probability matrix has one row per input row and two columns:
// P(class 0) and P(class 1).
type Classifier interface {
	Fit(features *mat.Dense, labels []float64) error
	PredictProba(features *mat.Dense) (*mat.Dense, error)
}

// RegressorFactory builds a fresh regressor from an initialization seed.
// Deterministic estimators may ignore the seed; stochastic ones must derive
// all randomness from it so that equal seeds give equal models.
type RegressorFactory func(seed uint64) Regressor
