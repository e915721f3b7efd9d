package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SplitHalf divides d by index order: train = first ⌊N/2⌋ trials, test = the
// remainder. The split is deliberately not shuffled or stratified; trial
// order carries meaning in the recorded sessions and row correspondence
// between features and targets is preserved on both sides.
func SplitHalf(d Dataset) (train, test Dataset, err error) {
	n := d.Len()
	half := n / 2
	if half == 0 || n-half == 0 {
		return Dataset{}, Dataset{}, fmt.Errorf("cannot split %d trials into non-empty halves", n)
	}
	_, cols := d.Features.Dims()

	trainFeatures := d.Features.Slice(0, half, 0, cols).(*mat.Dense)
	testFeatures := d.Features.Slice(half, n, 0, cols).(*mat.Dense)

	train = Dataset{Features: trainFeatures, Target: d.Target[:half]}
	test = Dataset{Features: testFeatures, Target: d.Target[half:]}
	return train, test, nil
}
