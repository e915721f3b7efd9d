package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func MinMaxScale(values []float64) []float64 {
	result := make([]float64, len(values))
	copy(result, values)

	min := floats.Min(result)
	max := floats.Max(result)

	if max != min {
		floats.AddConst(-min, result)
		floats.Scale(1.0/(max-min), result)
	} else {
		floats.Scale(0, result)
	}

	return result
}

// MinMaxScaleColumns rescales each sensor channel (column) of the feature
// matrix into [0, 1]. Constant channels scale to zero.
func MinMaxScaleColumns(features *mat.Dense) *mat.Dense {
	rows, cols := features.Dims()

	scaled := mat.NewDense(rows, cols, nil)

	for colIdx := range cols {
		colValues := mat.Col(nil, colIdx, features)
		scaled.SetCol(colIdx, MinMaxScale(colValues))
	}

	return scaled
}
