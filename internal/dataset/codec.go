package dataset

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/crimson-sun/castag/internal/model"
)

// Ext is the file suffix for cached datasets.
const Ext = ".pkl"

func init() {
	gob.Register([][]int(nil))
}

// Restore reads a cached dataset from path. The stored value must be a pair
// of equal-length lists: item names and 3-wide label rows.
func Restore(path string) (model.Dataset, error) {
	if err := checkPath(path); err != nil {
		return model.Dataset{}, fmt.Errorf("dataset: restore: %w: %v", model.ErrInvalidSourceKind, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("dataset: restore: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("dataset: restore %s: %w", path, err)
	}
	zap.L().Debug("dataset restored", zap.String("path", path), zap.Int("items", ds.Len()))
	return ds, nil
}

// Persist writes ds to path. path must end in Ext. The file is replaced
// atomically: on failure the previous contents (if any) are left untouched
// and no partial file remains.
func Persist(ds model.Dataset, path string) error {
	if err := checkPath(path); err != nil {
		return fmt.Errorf("dataset: persist: %w: %v", model.ErrInvalidDestinationKind, err)
	}
	if !strings.HasSuffix(path, Ext) {
		return fmt.Errorf("dataset: persist: %w: %q does not end in %s",
			model.ErrInvalidDestinationExtension, path, Ext)
	}
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("dataset: persist: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("dataset: persist: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := Encode(tmp, ds); err != nil {
		return fmt.Errorf("dataset: persist: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("dataset: persist: chmod: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("dataset: persist: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("dataset: persist: close: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("dataset: persist: rename: %w", err)
	}
	committed = true

	zap.L().Debug("dataset persisted", zap.String("path", path), zap.Int("items", ds.Len()))
	return nil
}

// Encode writes ds to w as a two-element gob sequence.
func Encode(w io.Writer, ds model.Dataset) error {
	rows := make([][]int, len(ds.Labels))
	for i, lv := range ds.Labels {
		rows[i] = lv.Ints()
	}
	return EncodeRaw(w, []any{ds.Names, rows})
}

// EncodeRaw gob-encodes an arbitrary value. It exists so callers can
// produce files of any shape; Decode decides whether the shape is valid.
func EncodeRaw(w io.Writer, v any) error {
	if err := gob.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Decode reads one dataset from r, rejecting any value that is not a pair
// of equal-length lists of names and 3-wide label rows.
func Decode(r io.Reader) (model.Dataset, error) {
	var pair []any
	if err := gob.NewDecoder(r).Decode(&pair); err != nil {
		return model.Dataset{}, fmt.Errorf("%w: %v", model.ErrCorruptDataset, err)
	}
	if len(pair) != 2 {
		return model.Dataset{}, fmt.Errorf("%w: expected 2 elements, got %d", model.ErrCorruptDataset, len(pair))
	}

	names, ok := pair[0].([]string)
	if !ok {
		return model.Dataset{}, fmt.Errorf("%w: names are %T, want []string", model.ErrCorruptDataset, pair[0])
	}
	rows, ok := pair[1].([][]int)
	if !ok {
		return model.Dataset{}, fmt.Errorf("%w: labels are %T, want [][]int", model.ErrCorruptDataset, pair[1])
	}
	if len(names) != len(rows) {
		return model.Dataset{}, fmt.Errorf("%w: %d names but %d label rows",
			model.ErrCorruptDataset, len(names), len(rows))
	}

	ds := model.Dataset{
		Names:  make([]string, len(names)),
		Labels: make([]model.LabelVector, len(rows)),
	}
	copy(ds.Names, names)
	for i, row := range rows {
		if len(row) != model.NumLabels {
			return model.Dataset{}, fmt.Errorf("%w: label row %d has %d entries, want %d",
				model.ErrCorruptDataset, i, len(row), model.NumLabels)
		}
		copy(ds.Labels[i][:], row)
	}
	return ds, nil
}

// checkPath rejects locations that cannot name a dataset file.
func checkPath(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
