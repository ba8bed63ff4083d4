package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/crimson-sun/castag/internal/engine/corpus"
	"github.com/crimson-sun/castag/internal/engine/vectorizer"
	"github.com/crimson-sun/castag/internal/model"
	"github.com/crimson-sun/castag/internal/report"
)

func scenario() ([]string, []model.LabelVector) {
	return []string{"paint a mural", "volunteer at shelter", "play soccer"},
		[]model.LabelVector{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}}
}

func TestFitPredictScenario(t *testing.T) {
	names, labels := scenario()
	f, err := New().Fit(names, labels)
	require.NoError(t, err)

	got := f.Predict([]string{"paint a mural"})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0][0])
	assert.Equal(t, model.LabelVector{1, 0, 0}, got[0])

	assert.Equal(t, labels, f.Predict(names))
}

func TestPredictNearIdenticalPhrase(t *testing.T) {
	names, labels := scenario()
	f, err := New().Fit(names, labels)
	require.NoError(t, err)

	got := f.Predict([]string{"Paint the mural!", "soccer"})
	assert.Equal(t, 1, got[0][0])
	assert.Equal(t, 1, got[1][1])
}

func TestPredictOutOfVocabulary(t *testing.T) {
	names, labels := scenario()
	f, err := New().Fit(names, labels)
	require.NoError(t, err)

	got, scores := f.PredictScored([]string{"quantum chromodynamics", ""})
	for i := range got {
		assert.Equal(t, model.LabelVector{}, got[i])
		for _, s := range scores[i] {
			assert.Less(t, s, 0.0)
		}
	}
}

func TestFitDeterministic(t *testing.T) {
	names := []string{
		"paint a mural", "volunteer at shelter", "play soccer",
		"soccer coaching for kids", "sketch portraits", "run a marathon",
		"beach cleanup volunteer", "compose music", "swim team practice",
	}
	labels := []model.LabelVector{
		{1, 0, 0}, {0, 0, 1}, {0, 1, 0},
		{0, 1, 1}, {1, 0, 0}, {0, 1, 0},
		{0, 1, 1}, {1, 0, 0}, {0, 1, 0},
	}
	held := []string{"paint portraits", "volunteer soccer coaching", "music marathon", "unknown words"}

	a, err := New(WithSeed(7)).Fit(names, labels)
	require.NoError(t, err)
	b, err := New(WithSeed(7), WithParallel(true)).Fit(names, labels)
	require.NoError(t, err)

	la, sa := a.PredictScored(held)
	lb, sb := b.PredictScored(held)
	assert.Equal(t, la, lb)
	assert.Equal(t, sa, sb)
	assert.Equal(t, la, a.Predict(held))
}

func TestFitErrors(t *testing.T) {
	e := New()

	_, err := e.Fit([]string{}, []model.LabelVector{})
	assert.ErrorIs(t, err, model.ErrEmptyTrainingSet)

	_, err = e.Fit(nil, nil)
	assert.ErrorIs(t, err, model.ErrEmptyTrainingSet)

	_, err = e.Fit([]string{"a mural"}, nil)
	assert.ErrorIs(t, err, model.ErrDimensionMismatch)

	_, err = e.Fit([]string{}, []model.LabelVector{{1, 0, 0}})
	assert.ErrorIs(t, err, model.ErrDimensionMismatch)

	_, err = e.Fit([]string{"a", "b"}, []model.LabelVector{{1, 0, 0}, {0, 1, 0}})
	assert.ErrorIs(t, err, vectorizer.ErrEmptyVocabulary)
}

func TestFitDataset(t *testing.T) {
	names, labels := scenario()
	f, err := New().FitDataset(model.Dataset{Names: names, Labels: labels})
	require.NoError(t, err)
	assert.Equal(t, []string{"at", "mural", "paint", "play", "shelter", "soccer", "volunteer"}, f.Vocabulary())
}

func TestInvalidParamsPropagate(t *testing.T) {
	names, labels := scenario()
	_, err := New(WithC(-1)).Fit(names, labels)
	assert.Error(t, err)
}

func TestCorpusTrainingFit(t *testing.T) {
	ds, err := corpus.Load()
	require.NoError(t, err)

	f, err := New(WithParallel(true)).FitDataset(ds)
	require.NoError(t, err)

	got := f.Predict(ds.Names)
	require.Len(t, got, ds.Len())

	m := report.Evaluate(got, ds.Labels)
	assert.Less(t, m.HammingLoss, 0.2, "training hamming loss")

	var predicted [model.NumLabels]int
	for _, lv := range got {
		for j := 0; j < model.NumLabels; j++ {
			if lv.Has(j) {
				predicted[j]++
			}
		}
	}
	for j, n := range predicted {
		assert.Positive(t, n, "label %d never predicted", j)
	}
}

func TestFitWarnsWhenSolverHitsIterationCap(t *testing.T) {
	names, labels := scenario()

	core, logs := observer.New(zapcore.WarnLevel)
	_, err := New(WithMaxIter(1), WithLogger(zap.New(core))).Fit(names, labels)
	require.NoError(t, err)

	warned := logs.FilterMessageSnippet("did not converge").All()
	require.Len(t, warned, model.NumLabels)
	for k, entry := range warned {
		assert.Equal(t, int64(k), entry.ContextMap()["label"])
	}

	core, logs = observer.New(zapcore.WarnLevel)
	_, err = New(WithLogger(zap.New(core))).Fit(names, labels)
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
