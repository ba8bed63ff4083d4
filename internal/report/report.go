// Package report runs a fitted classifier over held-out items and pairs
// each item with its predicted labels.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crimson-sun/castag/internal/model"
)

// Predictor assigns labels to items, one vector per item in input order.
type Predictor interface {
	Predict(items []string) []model.LabelVector
}

// scoredPredictor is implemented by predictors that can also expose the
// raw decision scores in the same pass.
type scoredPredictor interface {
	PredictScored(items []string) ([]model.LabelVector, [][]float64)
}

// Build predicts all items in one call and zips the results with the inputs.
func Build(p Predictor, items []string) []model.Prediction {
	var (
		labels []model.LabelVector
		scores [][]float64
	)
	if sp, ok := p.(scoredPredictor); ok {
		labels, scores = sp.PredictScored(items)
	} else {
		labels = p.Predict(items)
	}

	out := make([]model.Prediction, len(items))
	for i, item := range items {
		out[i] = model.Prediction{Item: item, Labels: labels[i]}
		if scores != nil {
			out[i].Scores = scores[i]
		}
	}
	return out
}

// Report is one evaluation run.
type Report struct {
	RunID       string
	Created     time.Time
	Predictions []model.Prediction
	Metrics     *Metrics // nil unless Score was called
}

// New evaluates items with p under a fresh run ID.
func New(p Predictor, items []string) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		Created:     time.Now().UTC(),
		Predictions: Build(p, items),
	}
}

// Score compares the predictions with the expected labels, positionally.
func (r *Report) Score(truth []model.LabelVector) error {
	if len(truth) != len(r.Predictions) {
		return fmt.Errorf("report: %w: %d predictions but %d expected label rows",
			model.ErrDimensionMismatch, len(r.Predictions), len(truth))
	}
	predicted := make([]model.LabelVector, len(r.Predictions))
	for i, p := range r.Predictions {
		predicted[i] = p.Labels
	}
	m := Evaluate(predicted, truth)
	r.Metrics = &m
	return nil
}
