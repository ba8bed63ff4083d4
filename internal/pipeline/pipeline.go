package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/crimson-sun/castag/internal/dataset"
	"github.com/crimson-sun/castag/internal/engine"
	"github.com/crimson-sun/castag/internal/output"
	"github.com/crimson-sun/castag/internal/report"
	"github.com/crimson-sun/castag/internal/source"
)

// DefaultDatasetName is the cache file written next to an extracted CSV.
const DefaultDatasetName = "data.pkl"

// Pipeline connects dataset loading, the classifier engine, and an output.
type Pipeline struct {
	engine      *engine.Engine
	output      output.Output
	logger      *zap.Logger
	datasetName string
	scores      bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDatasetName sets the file name Extract uses when no destination is
// given. Default: DefaultDatasetName.
func WithDatasetName(name string) Option {
	return func(p *Pipeline) { p.datasetName = name }
}

// WithScores keeps raw decision scores on written predictions.
func WithScores(on bool) Option {
	return func(p *Pipeline) { p.scores = on }
}

// New creates a Pipeline from the given components. A nil logger disables
// logging; a nil output is allowed for pipelines that only Extract.
func New(eng *engine.Engine, out output.Output, logger *zap.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Pipeline{
		engine:      eng,
		output:      out,
		logger:      logger,
		datasetName: DefaultDatasetName,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract parses the CSV at src and caches it at dst. An empty dst means the
// configured dataset name in src's directory. Returns the absolute path written.
func (p *Pipeline) Extract(src, dst string) (string, error) {
	ds, err := dataset.Extract(src)
	if err != nil {
		return "", fmt.Errorf("pipeline extract: %w", err)
	}

	if dst == "" {
		dst = filepath.Join(filepath.Dir(src), p.datasetName)
	}
	abs, err := filepath.Abs(dst)
	if err != nil {
		return "", fmt.Errorf("pipeline extract: %w", err)
	}
	if err := dataset.Persist(ds, abs); err != nil {
		return "", fmt.Errorf("pipeline extract: %w", err)
	}

	p.logger.Info("dataset cached",
		zap.String("source", src),
		zap.String("dataset", abs),
		zap.Int("items", ds.Len()))
	return abs, nil
}

// Train fits a classifier on the dataset at trainPath (any registered source
// kind), evaluates it on the items at testPath, and writes the report to the
// output. When the held-out file carries labels the report is scored.
func (p *Pipeline) Train(ctx context.Context, trainPath, testPath string) (*report.Report, error) {
	fitted, err := p.fit(trainPath)
	if err != nil {
		return nil, err
	}

	items, labeled, err := source.LoadItems(testPath)
	if err != nil {
		return nil, fmt.Errorf("pipeline test data: %w", err)
	}

	r := report.New(fitted, items)
	if labeled != nil {
		if err := r.Score(labeled.Labels); err != nil {
			return nil, fmt.Errorf("pipeline score: %w", err)
		}
		p.logger.Info("held-out evaluation",
			zap.String("run", r.RunID),
			zap.Float64("exact_match", r.Metrics.ExactMatch),
			zap.Float64("hamming_loss", r.Metrics.HammingLoss))
	}

	if err := p.emit(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Predict fits a classifier on trainPath and classifies the given items.
func (p *Pipeline) Predict(ctx context.Context, trainPath string, items []string) (*report.Report, error) {
	fitted, err := p.fit(trainPath)
	if err != nil {
		return nil, err
	}

	r := report.New(fitted, items)
	if err := p.emit(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (p *Pipeline) emit(ctx context.Context, r *report.Report) error {
	if !p.scores {
		for i := range r.Predictions {
			r.Predictions[i].Scores = nil
		}
	}
	if err := output.WriteReport(ctx, p.output, r); err != nil {
		return fmt.Errorf("pipeline output: %w", err)
	}
	return nil
}

func (p *Pipeline) fit(trainPath string) (*engine.Fitted, error) {
	ds, err := source.Load(trainPath)
	if err != nil {
		return nil, fmt.Errorf("pipeline load: %w", err)
	}
	fitted, err := p.engine.FitDataset(ds)
	if err != nil {
		return nil, fmt.Errorf("pipeline fit: %w", err)
	}
	p.logger.Info("classifier trained",
		zap.String("source", trainPath),
		zap.Int("items", ds.Len()),
		zap.Int("vocabulary", len(fitted.Vocabulary())))
	return fitted, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	if p.output == nil {
		return nil
	}
	return p.output.Close()
}
