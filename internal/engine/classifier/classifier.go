package classifier

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/crimson-sun/castag/internal/engine/svm"
	"github.com/crimson-sun/castag/internal/model"
)

// estimator scores one label dimension.
type estimator interface {
	Decision(x []float64) float64
}

// constant stands in for a label that never (or always) occurs in the
// training set; an SVM cannot be trained on a single class.
type constant struct {
	positive bool
}

func (c constant) Decision([]float64) float64 {
	if c.positive {
		return 1
	}
	return -1
}

// OneVsRest holds one independent binary estimator per label dimension.
type OneVsRest struct {
	estimators [model.NumLabels]estimator
	converged  [model.NumLabels]bool
}

// Fit trains one binary model per label, treating any non-zero label value
// as present. When parallel is true the labels train concurrently; each
// trainer owns its own state, so the result matches sequential training.
func Fit(x [][]float64, labels []model.LabelVector, p svm.Params, parallel bool) (*OneVsRest, error) {
	if len(x) != len(labels) {
		return nil, fmt.Errorf("classifier: %w: %d rows but %d label rows",
			model.ErrDimensionMismatch, len(x), len(labels))
	}

	c := &OneVsRest{}
	train := func(k int) error {
		est, err := fitLabel(x, labels, k, p)
		if err != nil {
			return fmt.Errorf("classifier: label %d: %w", k, err)
		}
		c.estimators[k] = est
		c.converged[k] = true
		if m, ok := est.(*svm.Model); ok {
			c.converged[k] = m.Converged
		}
		return nil
	}

	if !parallel {
		for k := 0; k < model.NumLabels; k++ {
			if err := train(k); err != nil {
				return nil, err
			}
		}
		return c, nil
	}

	var g errgroup.Group
	for k := 0; k < model.NumLabels; k++ {
		g.Go(func() error { return train(k) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

func fitLabel(x [][]float64, labels []model.LabelVector, k int, p svm.Params) (estimator, error) {
	y := make([]bool, len(labels))
	pos := 0
	for i, lv := range labels {
		y[i] = lv.Has(k)
		if y[i] {
			pos++
		}
	}
	if pos == 0 || pos == len(y) {
		return constant{positive: pos > 0}, nil
	}
	return svm.Train(x, y, p)
}

// Converged reports, per label, whether its solver met the tolerance before
// the iteration cap. Constant labels always report true.
func (c *OneVsRest) Converged() [model.NumLabels]bool {
	return c.converged
}

// Decision returns the raw score of every label for row x.
func (c *OneVsRest) Decision(x []float64) []float64 {
	scores := make([]float64, model.NumLabels)
	for k, est := range c.estimators {
		scores[k] = est.Decision(x)
	}
	return scores
}

// Predict sets every label whose score is positive.
func (c *OneVsRest) Predict(x []float64) model.LabelVector {
	return Threshold(c.Decision(x))
}

// Threshold converts raw scores into a 0/1 label vector.
func Threshold(scores []float64) model.LabelVector {
	var lv model.LabelVector
	for k := 0; k < model.NumLabels && k < len(scores); k++ {
		if scores[k] > 0 {
			lv[k] = 1
		}
	}
	return lv
}
