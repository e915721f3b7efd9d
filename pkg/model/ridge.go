package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ridge is an L2-regularized least-squares regressor solved in closed form
// via the normal equations. The fit is deterministic, so its factory ignores
// the seed.
type Ridge struct {
	Lambda float64

	weights *mat.VecDense // coefficients, intercept last
	cols    int
}

func NewRidge(lambda float64) *Ridge {
	return &Ridge{Lambda: lambda}
}

// RidgeFactory adapts NewRidge to the RegressorFactory signature.
func RidgeFactory(lambda float64) RegressorFactory {
	return func(_ uint64) Regressor {
		return NewRidge(lambda)
	}
}

func (r *Ridge) Fit(features *mat.Dense, target []float64) error {
	rows, cols := features.Dims()
	if rows != len(target) {
		return fmt.Errorf("%w: %d feature rows, %d targets", ErrShapeMismatch, rows, len(target))
	}
	if rows == 0 {
		return fmt.Errorf("%w: empty training set", ErrShapeMismatch)
	}

	augmented := withInterceptColumn(features)

	var gram mat.Dense
	gram.Mul(augmented.T(), augmented)
	// Regularize coefficients only, never the intercept.
	for i := range cols {
		gram.Set(i, i, gram.At(i, i)+r.Lambda)
	}

	var moment mat.VecDense
	moment.MulVec(augmented.T(), mat.NewVecDense(rows, target))

	weights := mat.NewVecDense(cols+1, nil)
	if err := weights.SolveVec(&gram, &moment); err != nil {
		return fmt.Errorf("solve normal equations: %w", err)
	}

	r.weights = weights
	r.cols = cols
	return nil
}

func (r *Ridge) Predict(features *mat.Dense) ([]float64, error) {
	if r.weights == nil {
		return nil, ErrNotFitted
	}
	rows, cols := features.Dims()
	if cols != r.cols {
		return nil, fmt.Errorf("%w: fitted on %d features, got %d", ErrShapeMismatch, r.cols, cols)
	}

	var out mat.VecDense
	out.MulVec(withInterceptColumn(features), r.weights)

	preds := make([]float64, rows)
	for i := range rows {
		preds[i] = out.AtVec(i)
	}
	return preds, nil
}

// withInterceptColumn appends a constant 1 column so the intercept is learned
// as the last weight.
func withInterceptColumn(features *mat.Dense) *mat.Dense {
	rows, cols := features.Dims()
	augmented := mat.NewDense(rows, cols+1, nil)
	for i := range rows {
		for j := range cols {
			augmented.Set(i, j, features.At(i, j))
		}
		augmented.Set(i, cols, 1)
	}
	return augmented
}
