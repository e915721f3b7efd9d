package scoring

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// WrapAngle maps any real angle into (-π, π]. Angles that differ by a
// multiple of 2π wrap to the same representative, so differences computed
// across the 0/2π boundary stay small.
func WrapAngle(angle float64) float64 {
	wrapped := math.Mod(angle+math.Pi, 2*math.Pi)
	if wrapped <= 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped - math.Pi
}

// AngularErrors returns the element-wise absolute wrapped difference between
// true and predicted angles. The wrap step is mandatory: raw differences
// near the boundary would report spuriously large errors.
func AngularErrors(trueAngles, predAngles []float64) ([]float64, error) {
	if len(trueAngles) != len(predAngles) {
		return nil, fmt.Errorf("%w: %d true vs %d predicted angles", ErrShapeMismatch, len(trueAngles), len(predAngles))
	}

	errs := make([]float64, len(trueAngles))
	for i := range trueAngles {
		errs[i] = math.Abs(WrapAngle(trueAngles[i] - predAngles[i]))
	}
	return errs, nil
}

// MeanAbsAngularError is the canonical circular score: the mean of the
// absolute wrapped differences, bounded in [0, π] with chance level π/2.
func MeanAbsAngularError(trueAngles, predAngles []float64) (float64, error) {
	errs, err := AngularErrors(trueAngles, predAngles)
	if err != nil {
		return 0, err
	}
	if len(errs) == 0 {
		return 0, fmt.Errorf("%w: empty input", ErrShapeMismatch)
	}
	return floats.Sum(errs) / float64(len(errs)), nil
}

// ChanceCenteredAngularScore converts a mean absolute angular error into the
// accuracy-style value π/2 − error, in [-π/2, π/2] with 0 at chance. This is
// a presentation transform over MeanAbsAngularError, not a separate metric.
func ChanceCenteredAngularScore(meanAbsError float64) float64 {
	return math.Pi/2 - meanAbsError
}
