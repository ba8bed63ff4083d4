package output

import (
	"fmt"

	"github.com/crimson-sun/castag/internal/engine/taxonomy"
	"github.com/crimson-sun/castag/internal/model"
	"github.com/crimson-sun/castag/internal/report"
)

// Record is the serialized form of one prediction.
type Record struct {
	Item       string    `json:"item" yaml:"item"`
	Labels     []int     `json:"labels" yaml:"labels,flow"`
	Categories []string  `json:"categories" yaml:"categories,flow"`
	Scores     []float64 `json:"scores,omitempty" yaml:"scores,omitempty,flow"`
}

// FormatPrediction converts a prediction into a Record, naming the set
// labels with tax.
func FormatPrediction(p model.Prediction, tax *taxonomy.Taxonomy) Record {
	cats := tax.Names(p.Labels)
	if cats == nil {
		cats = []string{}
	}
	return Record{
		Item:       p.Item,
		Labels:     p.Labels.Ints(),
		Categories: cats,
		Scores:     p.Scores,
	}
}

// Summary is the serialized form of a run's metadata and metrics.
type Summary struct {
	RunID   string          `json:"run_id" yaml:"run_id"`
	Items   int             `json:"items" yaml:"items"`
	Metrics *report.Metrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// FormatSummary converts a report into a Summary.
func FormatSummary(r *report.Report) Summary {
	return Summary{RunID: r.RunID, Items: len(r.Predictions), Metrics: r.Metrics}
}

// FormatLine renders a prediction as "item => [1 0 1]".
func FormatLine(p model.Prediction) string {
	return fmt.Sprintf("%s => %v", p.Item, p.Labels.Ints())
}
