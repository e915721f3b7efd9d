package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpearmanSelfCorrelation(t *testing.T) {
	a := []float64{3.2, -1.5, 0.4, 7.8, 2.2}
	rho, err := Spearman(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rho, 1e-12)
}

func TestSpearmanReversedSequence(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{5, 4, 3, 2, 1}
	rho, err := Spearman(a, b)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, rho, 1e-12)
}

func TestSpearmanMonotoneNonlinear(t *testing.T) {
	// Rank correlation sees only the ordering; any strictly increasing
	// transform correlates perfectly.
	a := []float64{1, 2, 3, 4}
	b := []float64{1, 4, 9, 16}
	rho, err := Spearman(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rho, 1e-12)
}

func TestSpearmanBounds(t *testing.T) {
	a := []float64{0.3, 1.2, -4, 2.2, 0.9, 5.5}
	b := []float64{1.1, -0.4, 2.2, 0.0, -3.3, 0.7}
	rho, err := Spearman(a, b)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rho, -1.0)
	assert.LessOrEqual(t, rho, 1.0)
}

func TestSpearmanTiesAveraged(t *testing.T) {
	ranks := rank([]float64{1, 2, 2, 3})
	assert.Equal(t, []float64{1, 2.5, 2.5, 4}, ranks)
}

func TestSpearmanZeroVariance(t *testing.T) {
	_, err := Spearman([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrZeroVariance)

	_, err = Spearman([]float64{1, 2, 3}, []float64{5, 5, 5})
	assert.ErrorIs(t, err, ErrZeroVariance)

	_, err = Spearman([]float64{1}, []float64{2})
	assert.ErrorIs(t, err, ErrZeroVariance)
}

func TestSpearmanShapeMismatch(t *testing.T) {
	_, err := Spearman([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
