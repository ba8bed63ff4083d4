package castag

import (
	"fmt"

	"github.com/crimson-sun/castag/internal/dataset"
	"github.com/crimson-sun/castag/internal/engine"
	"github.com/crimson-sun/castag/internal/engine/taxonomy"
	"github.com/crimson-sun/castag/internal/model"
	"github.com/crimson-sun/castag/internal/source"
)

// Classifier is a trained multi-label classifier.
// Safe for concurrent use.
type Classifier struct {
	fitted   *engine.Fitted
	taxonomy *taxonomy.Taxonomy
}

// Train fits a classifier on items and their labels. items[i] is labeled by
// labels[i].
func Train(items []string, labels []Labels, opts ...Option) (*Classifier, error) {
	lvs := make([]model.LabelVector, len(labels))
	for i, l := range labels {
		lvs[i] = model.LabelVector(l)
	}
	return train(model.Dataset{Names: items, Labels: lvs}, opts)
}

// TrainFile fits a classifier on a training CSV or a saved dataset file,
// chosen by the path's extension.
func TrainFile(path string, opts ...Option) (*Classifier, error) {
	ds, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("castag: %w", err)
	}
	return train(ds, opts)
}

func train(ds model.Dataset, opts []Option) (*Classifier, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tax := taxonomy.Default()
	if o.categories != nil {
		var err error
		tax, err = taxonomy.New(toModel(o.categories))
		if err != nil {
			return nil, fmt.Errorf("castag: %w", err)
		}
	}

	eng := engine.New(
		engine.WithSeed(o.seed),
		engine.WithC(o.c),
		engine.WithTolerance(o.tolerance),
		engine.WithMaxIter(o.maxIter),
		engine.WithParallel(o.parallel),
	)
	fitted, err := eng.Fit(ds.Names, ds.Labels)
	if err != nil {
		return nil, fmt.Errorf("castag: %w", err)
	}
	return &Classifier{fitted: fitted, taxonomy: tax}, nil
}

// Classify labels a single item.
func (c *Classifier) Classify(text string) Result {
	return c.ClassifyBatch([]string{text})[0]
}

// ClassifyBatch labels multiple items in one pass. Results are in input
// order.
func (c *Classifier) ClassifyBatch(texts []string) []Result {
	labels, scores := c.fitted.PredictScored(texts)
	results := make([]Result, len(texts))
	for i, text := range texts {
		cats := c.taxonomy.Names(labels[i])
		if cats == nil {
			cats = []string{}
		}
		results[i] = Result{
			Item:       text,
			Labels:     Labels(labels[i]),
			Categories: cats,
			Scores:     scores[i],
		}
	}
	return results
}

// Vocabulary returns the terms learned during training, sorted.
func (c *Classifier) Vocabulary() []string {
	return c.fitted.Vocabulary()
}

// LoadDataset reads items and labels from a training CSV or a saved
// dataset file.
func LoadDataset(path string) ([]string, []Labels, error) {
	ds, err := source.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("castag: %w", err)
	}
	labels := make([]Labels, len(ds.Labels))
	for i, lv := range ds.Labels {
		labels[i] = Labels(lv)
	}
	return ds.Names, labels, nil
}

// SaveDataset writes items and labels to path, which must end in ".pkl".
// An existing file is replaced atomically.
func SaveDataset(path string, items []string, labels []Labels) error {
	ds := model.Dataset{Names: items, Labels: make([]model.LabelVector, len(labels))}
	for i, l := range labels {
		ds.Labels[i] = model.LabelVector(l)
	}
	if err := dataset.Persist(ds, path); err != nil {
		return fmt.Errorf("castag: %w", err)
	}
	return nil
}

// Extract converts a training CSV into a dataset file at dst.
func Extract(csvPath, dst string) error {
	ds, err := dataset.Extract(csvPath)
	if err != nil {
		return fmt.Errorf("castag: %w", err)
	}
	if err := dataset.Persist(ds, dst); err != nil {
		return fmt.Errorf("castag: %w", err)
	}
	return nil
}
