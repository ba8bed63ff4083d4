package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/crimson-sun/castag/internal/engine/classifier"
	"github.com/crimson-sun/castag/internal/engine/svm"
	"github.com/crimson-sun/castag/internal/engine/tfidf"
	"github.com/crimson-sun/castag/internal/engine/vectorizer"
	"github.com/crimson-sun/castag/internal/model"
)

// Engine orchestrates the count → tf-idf → one-vs-rest SVM pipeline.
type Engine struct {
	params   svm.Params
	parallel bool
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed fixes the seed of the solver's visiting order.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.params.Seed = seed }
}

// WithC sets the SVM regularization parameter.
func WithC(c float64) Option {
	return func(e *Engine) { e.params.C = c }
}

// WithTolerance sets the solver stopping tolerance.
func WithTolerance(tol float64) Option {
	return func(e *Engine) { e.params.Tolerance = tol }
}

// WithMaxIter caps the number of solver passes per label.
func WithMaxIter(n int) Option {
	return func(e *Engine) { e.params.MaxIter = n }
}

// WithParallel trains the per-label models concurrently.
func WithParallel(on bool) Option {
	return func(e *Engine) { e.parallel = on }
}

// WithLogger sets the logger used for training diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an Engine. Without options it trains sequentially with
// svm.DefaultParams.
func New(opts ...Option) *Engine {
	e := &Engine{
		params: svm.DefaultParams(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fit learns a vocabulary, idf weights and one linear model per label from
// names and their label rows. Shape errors are reported before any text is
// processed.
func (e *Engine) Fit(names []string, labels []model.LabelVector) (*Fitted, error) {
	if len(names) != len(labels) {
		return nil, fmt.Errorf("engine: %w: %d items but %d label rows",
			model.ErrDimensionMismatch, len(names), len(labels))
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("engine: %w", model.ErrEmptyTrainingSet)
	}

	start := time.Now()

	vec, err := vectorizer.Fit(names)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	counts := vec.Transform(names)

	weights := tfidf.Fit(counts)
	features := weights.Transform(counts)

	clf, err := classifier.Fit(features, labels, e.params, e.parallel)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	for k, ok := range clf.Converged() {
		if !ok {
			e.logger.Warn("solver did not converge; increase max iterations",
				zap.Int("label", k),
				zap.Int("max_iter", e.params.MaxIter))
		}
	}

	e.logger.Debug("classifier fitted",
		zap.Int("items", len(names)),
		zap.Int("vocabulary", vec.Size()),
		zap.Bool("parallel", e.parallel),
		zap.Duration("elapsed", time.Since(start)))

	return &Fitted{vec: vec, tfidf: weights, clf: clf}, nil
}

// FitDataset is Fit over a dataset's names and labels.
func (e *Engine) FitDataset(ds model.Dataset) (*Fitted, error) {
	return e.Fit(ds.Names, ds.Labels)
}

// Fitted is a trained pipeline. It is immutable and safe for concurrent use.
type Fitted struct {
	vec   *vectorizer.Vectorizer
	tfidf *tfidf.Transformer
	clf   *classifier.OneVsRest
}

// Predict assigns labels to each item. Items made only of unknown words get
// a zero feature row, so the learned biases alone decide their labels.
func (f *Fitted) Predict(items []string) []model.LabelVector {
	features := f.features(items)
	out := make([]model.LabelVector, len(items))
	for i, x := range features {
		out[i] = f.clf.Predict(x)
	}
	return out
}

// PredictScored is Predict that also returns the raw per-label scores.
func (f *Fitted) PredictScored(items []string) ([]model.LabelVector, [][]float64) {
	features := f.features(items)
	labels := make([]model.LabelVector, len(items))
	scores := make([][]float64, len(items))
	for i, x := range features {
		scores[i] = f.clf.Decision(x)
		labels[i] = classifier.Threshold(scores[i])
	}
	return labels, scores
}

// Vocabulary returns the learned terms in feature order.
func (f *Fitted) Vocabulary() []string {
	return f.vec.Terms()
}

func (f *Fitted) features(items []string) [][]float64 {
	return f.tfidf.Transform(f.vec.Transform(items))
}
