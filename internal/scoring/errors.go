package scoring

import "errors"

// Degenerate inputs are surfaced through these sentinels instead of a NaN or
// default value, so callers can errors.Is on the exact failure.
var (
	ErrShapeMismatch = errors.New("scoring: true/predicted lengths differ")
	ErrSingleClass   = errors.New("scoring: labels contain a single class, auc undefined")
	ErrZeroVariance  = errors.New("scoring: zero-variance input, rank correlation undefined")
)
