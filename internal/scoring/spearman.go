package scoring

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Spearman computes the rank correlation between two sequences: both sides
// are replaced by their ranks (ties receive the average of the ranks they
// span) and the ranks are Pearson-correlated.
//
// The result is bounded in [-1, 1] with chance level 0. A constant sequence
// on either side leaves the correlation undefined and returns
// ErrZeroVariance instead of a misleading number.
func Spearman(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d values", ErrShapeMismatch, len(a), len(b))
	}
	if len(a) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 values, got %d", ErrZeroVariance, len(a))
	}

	ranksA := rank(a)
	ranksB := rank(b)

	if isConstant(ranksA) || isConstant(ranksB) {
		return 0, fmt.Errorf("%w: constant sequence", ErrZeroVariance)
	}

	return stat.Correlation(ranksA, ranksB, nil), nil
}

// rank assigns 1-based ranks, averaging over runs of equal values.
func rank(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && values[order[j+1]] == values[order[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
