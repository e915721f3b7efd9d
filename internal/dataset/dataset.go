// Package dataset holds the feature-matrix/target container shared by all
// decoding paths, its deterministic split helper and the fixture codec.
package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var ErrShapeMismatch = errors.New("dataset: feature rows and target length disagree")

// Dataset pairs a trials-by-sensors feature matrix with one target value per
// trial. Row i of Features and Target[i] describe the same trial.
type Dataset struct {
	Features *mat.Dense
	Target   []float64
}

func New(features *mat.Dense, target []float64) (Dataset, error) {
	if features == nil {
		return Dataset{}, fmt.Errorf("feature matrix cannot be nil")
	}
	rows, _ := features.Dims()
	if rows != len(target) {
		return Dataset{}, fmt.Errorf("%w: %d feature rows, %d targets", ErrShapeMismatch, rows, len(target))
	}
	return Dataset{Features: features, Target: target}, nil
}

// Len returns the number of trials.
func (d Dataset) Len() int {
	if d.Features == nil {
		return 0
	}
	rows, _ := d.Features.Dims()
	return rows
}

// WithTarget returns a dataset sharing d's features but carrying a different
// target vector, e.g. a label sequence derived from the stored angles.
func (d Dataset) WithTarget(target []float64) (Dataset, error) {
	return New(d.Features, target)
}
