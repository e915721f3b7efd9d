// Package scoring contains the pure scoring functions for the three target
// topologies: ROC AUC for categorical labels, Spearman rank correlation for
// ordinal targets and wrapped angular error for circular targets.
package scoring

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// RocAuc computes the area under the ROC curve of class-1 probabilities
// against binary labels. Labels must take exactly the values 0 and 1; a
// test set that contains only one class has no defined AUC and returns
// ErrSingleClass rather than a substitute value.
//
// The result is bounded in [0, 1] with chance level 0.5.
func RocAuc(labels, probs []float64) (float64, error) {
	if len(labels) != len(probs) {
		return 0, fmt.Errorf("%w: %d labels, %d probabilities", ErrShapeMismatch, len(labels), len(probs))
	}
	if len(labels) == 0 {
		return 0, fmt.Errorf("%w: empty input", ErrShapeMismatch)
	}

	classes := make([]bool, len(labels))
	positives := 0
	for i, label := range labels {
		switch label {
		case 0:
		case 1:
			classes[i] = true
			positives++
		default:
			return 0, fmt.Errorf("label at trial %d is %v, want 0 or 1", i, label)
		}
	}
	if positives == 0 || positives == len(labels) {
		return 0, fmt.Errorf("%w: all %d labels are class %d", ErrSingleClass, len(labels), boolToClass(positives > 0))
	}

	scores := make([]float64, len(probs))
	copy(scores, probs)

	stat.SortWeightedLabeled(scores, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)

	return integrate.Trapezoidal(fpr, tpr), nil
}

func boolToClass(positive bool) int {
	if positive {
		return 1
	}
	return 0
}
