package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewShapeMismatch(t *testing.T) {
	features := mat.NewDense(3, 2, nil)
	_, err := New(features, []float64{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = New(nil, []float64{1})
	require.Error(t, err)
}

func TestSplitHalfDeterminism(t *testing.T) {
	features := mat.NewDense(5, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
		5, 50,
	})
	ds, err := New(features, []float64{0.1, 0.2, 0.3, 0.4, 0.5})
	require.NoError(t, err)

	train, test, err := SplitHalf(ds)
	require.NoError(t, err)

	// First ⌊5/2⌋ = 2 trials train, remaining 3 test, in index order.
	assert.Equal(t, 2, train.Len())
	assert.Equal(t, 3, test.Len())
	assert.Equal(t, []float64{0.1, 0.2}, train.Target)
	assert.Equal(t, []float64{0.3, 0.4, 0.5}, test.Target)

	// Row correspondence preserved on both sides.
	assert.Equal(t, 1.0, train.Features.At(0, 0))
	assert.Equal(t, 20.0, train.Features.At(1, 1))
	assert.Equal(t, 3.0, test.Features.At(0, 0))
	assert.Equal(t, 50.0, test.Features.At(2, 1))
}

func TestSplitHalfTooSmall(t *testing.T) {
	ds, err := New(mat.NewDense(1, 2, nil), []float64{1})
	require.NoError(t, err)
	_, _, err = SplitHalf(ds)
	require.Error(t, err)
}

func TestWithTarget(t *testing.T) {
	ds, err := New(mat.NewDense(2, 2, nil), []float64{1, 2})
	require.NoError(t, err)

	derived, err := ds.WithTarget([]float64{9, 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 8}, derived.Target)
	assert.Same(t, ds.Features, derived.Features)

	_, err = ds.WithTarget([]float64{9})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMinMaxScaleColumns(t *testing.T) {
	features := mat.NewDense(3, 2, []float64{
		0, 7,
		5, 7,
		10, 7,
	})

	scaled := MinMaxScaleColumns(features)

	assert.InDelta(t, 0.0, scaled.At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, scaled.At(1, 0), 1e-12)
	assert.InDelta(t, 1.0, scaled.At(2, 0), 1e-12)
	// Constant channel scales to zero.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, scaled.At(i, 1))
	}
}

func TestFixtureRoundTrip(t *testing.T) {
	features := mat.NewDense(4, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		10, 11, 12,
	})
	ds, err := New(features, []float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)

	for _, name := range []string{"fixture.json", "fixture.json.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFixture(path, ds))

			got, err := ReadFixture(path)
			require.NoError(t, err)
			assert.Equal(t, ds.Target, got.Target)
			assert.True(t, mat.EqualApprox(ds.Features, got.Features, 1e-12))
		})
	}
}

func TestReadFixtureMissing(t *testing.T) {
	_, err := ReadFixture(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
