package report

import "github.com/crimson-sun/castag/internal/model"

// LabelMetrics scores one label dimension.
type LabelMetrics struct {
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
	Support   int     `json:"support" yaml:"support"` // items where the label is expected
}

// Metrics summarizes multi-label agreement between predictions and truth.
type Metrics struct {
	Samples     int                           `json:"samples" yaml:"samples"`
	ExactMatch  float64                       `json:"exact_match" yaml:"exact_match"`
	HammingLoss float64                       `json:"hamming_loss" yaml:"hamming_loss"`
	PerLabel    [model.NumLabels]LabelMetrics `json:"per_label" yaml:"per_label"`
}

// Evaluate compares predicted and expected label rows positionally. Only
// the first min(len(predicted), len(truth)) rows are scored. Any non-zero
// entry counts as present on either side. Undefined ratios (no predicted
// or no expected positives) are reported as 0.
func Evaluate(predicted, truth []model.LabelVector) Metrics {
	truth = truth[:min(len(predicted), len(truth))]
	m := Metrics{Samples: len(truth)}
	if len(truth) == 0 {
		return m
	}

	var tp, fp, fn [model.NumLabels]int
	exact, wrong := 0, 0
	for i := range truth {
		same := true
		for k := 0; k < model.NumLabels; k++ {
			p, t := predicted[i].Has(k), truth[i].Has(k)
			switch {
			case p && t:
				tp[k]++
			case p && !t:
				fp[k]++
			case !p && t:
				fn[k]++
			}
			if p != t {
				same = false
				wrong++
			}
		}
		if same {
			exact++
		}
	}

	n := float64(len(truth))
	m.ExactMatch = float64(exact) / n
	m.HammingLoss = float64(wrong) / (n * model.NumLabels)
	for k := range m.PerLabel {
		lm := LabelMetrics{
			Precision: ratio(tp[k], tp[k]+fp[k]),
			Recall:    ratio(tp[k], tp[k]+fn[k]),
			Support:   tp[k] + fn[k],
		}
		if lm.Precision+lm.Recall > 0 {
			lm.F1 = 2 * lm.Precision * lm.Recall / (lm.Precision + lm.Recall)
		}
		m.PerLabel[k] = lm
	}
	return m
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
