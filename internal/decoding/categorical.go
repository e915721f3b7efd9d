// Package decoding implements the three target-topology paths: categorical
// labels scored by ROC AUC, ordinal targets scored by rank correlation and
// circular (angular) targets handled through a cos/sin encoding pair.
package decoding

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/spindriftlab/circdecode/internal/dataset"
	"github.com/spindriftlab/circdecode/internal/scoring"
	"github.com/spindriftlab/circdecode/pkg/model"
)

// Categorical decodes an unordered binary label from sensor features.
type Categorical struct {
	clf model.Classifier
}

func NewCategorical(clf model.Classifier) (*Categorical, error) {
	if clf == nil {
		return nil, fmt.Errorf("classifier cannot be nil")
	}
	return &Categorical{clf: clf}, nil
}

func (c *Categorical) Fit(train dataset.Dataset) error {
	if err := c.clf.Fit(train.Features, train.Target); err != nil {
		return fmt.Errorf("fit classifier: %w", err)
	}
	return nil
}

// PredictProba returns the class-1 posterior per trial, aligned with the
// rows of features.
func (c *Categorical) PredictProba(features *mat.Dense) ([]float64, error) {
	probs, err := c.clf.PredictProba(features)
	if err != nil {
		return nil, fmt.Errorf("predict probabilities: %w", err)
	}
	return mat.Col(nil, 1, probs), nil
}

// Score evaluates the fitted classifier on the test set and returns the AUC
// of class-1 posteriors against the true labels.
func (c *Categorical) Score(test dataset.Dataset) (float64, error) {
	probs, err := c.PredictProba(test.Features)
	if err != nil {
		return 0, err
	}
	auc, err := scoring.RocAuc(test.Target, probs)
	if err != nil {
		return 0, err
	}
	log.Debug().Float64("auc", auc).Int("trials", test.Len()).Msg("categorical path scored")
	return auc, nil
}
