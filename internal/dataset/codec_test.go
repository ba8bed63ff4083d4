package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/castag/internal/model"
)

func sampleDataset() model.Dataset {
	return model.Dataset{
		Names: []string{"paint a mural", "volunteer at shelter", "play soccer"},
		Labels: []model.LabelVector{
			{1, 0, 0},
			{0, 0, 1},
			{0, 1, 0},
		},
	}
}

func writeRaw(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, EncodeRaw(&buf, v))
	path := filepath.Join(t.TempDir(), "raw.pkl")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestPersistRestoreRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ds   model.Dataset
	}{
		{"three items", sampleDataset()},
		{"empty", model.Dataset{Names: []string{}, Labels: []model.LabelVector{}}},
		{"unicode and commas", model.Dataset{
			Names:  []string{"café, crêpes", "build a robot"},
			Labels: []model.LabelVector{{1, 1, 0}, {2, 0, 7}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.pkl")
			require.NoError(t, Persist(tt.ds, path))

			got, err := Restore(path)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.ds, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPersistOverwritesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.pkl")
	require.NoError(t, Persist(sampleDataset(), path))

	next := model.Dataset{Names: []string{"knit"}, Labels: []model.LabelVector{{1, 0, 0}}}
	require.NoError(t, Persist(next, path))

	got, err := Restore(path)
	require.NoError(t, err)
	assert.Equal(t, next, got)
}

func TestPersistFileIsWorldReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.pkl")
	require.NoError(t, Persist(sampleDataset(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestPersistRejectsExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"data.csv", "data.pkl.bak", "data", "datapkl"} {
		err := Persist(sampleDataset(), filepath.Join(dir, name))
		assert.ErrorIs(t, err, model.ErrInvalidDestinationExtension, name)
	}

	// Extension is checked before the dataset itself.
	err := Persist(model.Dataset{}, filepath.Join(dir, "data.txt"))
	assert.ErrorIs(t, err, model.ErrInvalidDestinationExtension)
}

func TestPersistRejectsDestinationKind(t *testing.T) {
	err := Persist(sampleDataset(), "")
	assert.ErrorIs(t, err, model.ErrInvalidDestinationKind)

	dir := filepath.Join(t.TempDir(), "dir.pkl")
	require.NoError(t, os.Mkdir(dir, 0o755))
	err = Persist(sampleDataset(), dir)
	assert.ErrorIs(t, err, model.ErrInvalidDestinationKind)
}

func TestPersistRejectsShapeWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.pkl")
	require.NoError(t, Persist(sampleDataset(), path))

	bad := []model.Dataset{
		{},
		{Names: []string{"a"}},
		{Labels: []model.LabelVector{{1, 0, 0}}},
		{Names: []string{"a", "b"}, Labels: []model.LabelVector{{1, 0, 0}}},
	}
	for _, ds := range bad {
		err := Persist(ds, path)
		assert.ErrorIs(t, err, model.ErrInvalidDatasetShape)
	}

	// Previous file intact and no temp files left behind.
	got, err := Restore(path)
	require.NoError(t, err)
	assert.Equal(t, sampleDataset(), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPersistMissingDirectoryLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	err := Persist(sampleDataset(), filepath.Join(dir, "missing", "data.pkl"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRestoreRejectsSourceKind(t *testing.T) {
	_, err := Restore("")
	assert.ErrorIs(t, err, model.ErrInvalidSourceKind)

	_, err = Restore(t.TempDir())
	assert.ErrorIs(t, err, model.ErrInvalidSourceKind)
}

func TestRestoreMissingFile(t *testing.T) {
	_, err := Restore(filepath.Join(t.TempDir(), "nope.pkl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRestoreCorrupt(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"three elements", []any{[]string{"a"}, [][]int{{1, 0, 0}}, []string{"x"}}},
		{"one element", []any{[]string{"a"}}},
		{"unequal lengths", []any{[]string{"a", "b"}, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}},
		{"names not a list", []any{"a", [][]int{{1, 0, 0}}}},
		{"labels not a matrix", []any{[]string{"a"}, []int{1}}},
		{"short label row", []any{[]string{"a"}, [][]int{{1, 0}}}},
		{"not a sequence", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(writeRaw(t, tt.value))
			assert.ErrorIs(t, err, model.ErrCorruptDataset)
		})
	}
}

func TestRestoreGarbageBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.pkl")
	require.NoError(t, os.WriteFile(path, []byte("definitely not gob"), 0o644))

	_, err := Restore(path)
	assert.ErrorIs(t, err, model.ErrCorruptDataset)
}
