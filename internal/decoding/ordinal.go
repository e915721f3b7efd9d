package decoding

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/spindriftlab/circdecode/internal/dataset"
	"github.com/spindriftlab/circdecode/internal/scoring"
	"github.com/spindriftlab/circdecode/pkg/model"
)

// Ordinal decodes a real-valued, order-preserving target. The target
// transform is the identity; the path exists for the monotonicity-sensitive
// scoring.
type Ordinal struct {
	reg model.Regressor
}

func NewOrdinal(reg model.Regressor) (*Ordinal, error) {
	if reg == nil {
		return nil, fmt.Errorf("regressor cannot be nil")
	}
	return &Ordinal{reg: reg}, nil
}

func (o *Ordinal) Fit(train dataset.Dataset) error {
	if err := o.reg.Fit(train.Features, train.Target); err != nil {
		return fmt.Errorf("fit regressor: %w", err)
	}
	return nil
}

func (o *Ordinal) Predict(features *mat.Dense) ([]float64, error) {
	return o.reg.Predict(features)
}

// Score returns the Spearman rank correlation between true and predicted
// targets on the test set.
func (o *Ordinal) Score(test dataset.Dataset) (float64, error) {
	preds, err := o.Predict(test.Features)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	rho, err := scoring.Spearman(test.Target, preds)
	if err != nil {
		return 0, err
	}
	log.Debug().Float64("spearman", rho).Int("trials", test.Len()).Msg("ordinal path scored")
	return rho, nil
}
