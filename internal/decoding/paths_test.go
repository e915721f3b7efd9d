package decoding

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/spindriftlab/circdecode/internal/dataset"
	"github.com/spindriftlab/circdecode/internal/scoring"
	"github.com/spindriftlab/circdecode/pkg/model"
)

func TestCategoricalPathSeparableData(t *testing.T) {
	rng := rand.New(rand.NewPCG(101, 103))
	n := 80
	features := mat.NewDense(n, 2, nil)
	labels := make([]float64, n)
	for i := range labels {
		if i%2 == 0 {
			labels[i] = 1
			features.Set(i, 0, 2+rng.NormFloat64()*0.2)
		} else {
			features.Set(i, 0, -2+rng.NormFloat64()*0.2)
		}
		features.Set(i, 1, rng.NormFloat64())
	}

	ds, err := dataset.New(features, labels)
	require.NoError(t, err)
	train, test, err := dataset.SplitHalf(ds)
	require.NoError(t, err)

	path, err := NewCategorical(model.NewLogistic(42))
	require.NoError(t, err)
	require.NoError(t, path.Fit(train))

	auc, err := path.Score(test)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, auc, 1e-9)
}

func TestCategoricalPathSingleClassTestSet(t *testing.T) {
	features := mat.NewDense(8, 1, []float64{-2, -1, 1, 2, 1, 1, 2, 3})
	labels := []float64{0, 0, 1, 1, 1, 1, 1, 1}

	ds, err := dataset.New(features, labels)
	require.NoError(t, err)
	train, test, err := dataset.SplitHalf(ds)
	require.NoError(t, err)

	path, err := NewCategorical(model.NewLogistic(1))
	require.NoError(t, err)
	require.NoError(t, path.Fit(train))

	// All test labels are class 1: AUC is undefined and must surface.
	_, err = path.Score(test)
	assert.ErrorIs(t, err, scoring.ErrSingleClass)
}

func TestCategoricalNilClassifier(t *testing.T) {
	_, err := NewCategorical(nil)
	require.Error(t, err)
}

func TestOrdinalPathMonotoneTarget(t *testing.T) {
	rng := rand.New(rand.NewPCG(201, 203))
	n := 60
	features := mat.NewDense(n, 2, nil)
	target := make([]float64, n)
	for i := range target {
		x := rng.Float64()*4 - 2
		target[i] = 3*x + 0.5
		features.Set(i, 0, x)
		features.Set(i, 1, rng.NormFloat64())
	}

	ds, err := dataset.New(features, target)
	require.NoError(t, err)
	train, test, err := dataset.SplitHalf(ds)
	require.NoError(t, err)

	path, err := NewOrdinal(model.NewRidge(1e-6))
	require.NoError(t, err)
	require.NoError(t, path.Fit(train))

	rho, err := path.Score(test)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rho, 1e-9)
}

func TestOrdinalPathConstantTruth(t *testing.T) {
	features := mat.NewDense(8, 1, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	target := []float64{1, 2, 3, 4, 5, 5, 5, 5}

	ds, err := dataset.New(features, target)
	require.NoError(t, err)
	train, test, err := dataset.SplitHalf(ds)
	require.NoError(t, err)

	path, err := NewOrdinal(model.NewRidge(1e-6))
	require.NoError(t, err)
	require.NoError(t, path.Fit(train))

	// Test-half truth is constant: correlation is degenerate and must error.
	_, err = path.Score(test)
	assert.ErrorIs(t, err, scoring.ErrZeroVariance)
}

func TestOrdinalNilRegressor(t *testing.T) {
	_, err := NewOrdinal(nil)
	require.Error(t, err)
}
