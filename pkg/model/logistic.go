package model

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Logistic is a binary logistic-regression classifier fit by full-batch
// gradient descent. Weight initialization is drawn from the seed, so equal
// seeds reproduce the same model exactly.
type Logistic struct {
	LearnRate float64
	Epochs    int

	seed    uint64
	weights []float64 // coefficients, intercept last
}

func NewLogistic(seed uint64) *Logistic {
	return &Logistic{LearnRate: 0.1, Epochs: 500, seed: seed}
}

func (c *Logistic) Fit(features *mat.Dense, labels []float64) error {
	rows, cols := features.Dims()
	if rows != len(labels) {
		return fmt.Errorf("%w: %d feature rows, %d labels", ErrShapeMismatch, rows, len(labels))
	}
	if rows == 0 {
		return fmt.Errorf("%w: empty training set", ErrShapeMismatch)
	}
	for i, label := range labels {
		if label != 0 && label != 1 {
			return fmt.Errorf("label at trial %d is %v, want 0 or 1", i, label)
		}
	}

	rng := rand.New(rand.NewPCG(c.seed, c.seed^0x9e3779b97f4a7c15))
	weights := make([]float64, cols+1)
	for i := range weights {
		weights[i] = rng.NormFloat64() * 0.01
	}

	grad := make([]float64, cols+1)
	for epoch := 0; epoch < c.Epochs; epoch++ {
		for i := range grad {
			grad[i] = 0
		}
		for i := range rows {
			p := sigmoid(decision(features, i, weights))
			d := p - labels[i]
			for j := range cols {
				grad[j] += d * features.At(i, j)
			}
			grad[cols] += d
		}
		step := c.LearnRate / float64(rows)
		for i := range weights {
			weights[i] -= step * grad[i]
		}
	}

	c.weights = weights
	return nil
}

// PredictProba returns an n-by-2 matrix of class posteriors, columns ordered
// P(class 0), P(class 1), rows aligned with the input.
func (c *Logistic) PredictProba(features *mat.Dense) (*mat.Dense, error) {
	if c.weights == nil {
		return nil, ErrNotFitted
	}
	rows, cols := features.Dims()
	if cols != len(c.weights)-1 {
		return nil, fmt.Errorf("%w: fitted on %d features, got %d", ErrShapeMismatch, len(c.weights)-1, cols)
	}

	probs := mat.NewDense(rows, 2, nil)
	for i := range rows {
		p := sigmoid(decision(features, i, c.weights))
		probs.Set(i, 0, 1-p)
		probs.Set(i, 1, p)
	}
	return probs, nil
}

func decision(features *mat.Dense, row int, weights []float64) float64 {
	cols := len(weights) - 1
	sum := weights[cols]
	for j := range cols {
		sum += weights[j] * features.At(row, j)
	}
	return sum
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
