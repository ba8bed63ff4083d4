package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/crimson-sun/castag/internal/model"
)

// SourceExt is the file suffix for tabular training sources.
const SourceExt = ".csv"

// Extract parses a headerless CSV file of "name,l0,l1,l2" rows into a dataset.
func Extract(path string) (model.Dataset, error) {
	if !strings.HasSuffix(path, SourceExt) {
		return model.Dataset{}, fmt.Errorf("dataset: extract: %w: %q does not end in %s",
			model.ErrInvalidSourceExtension, path, SourceExt)
	}

	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("dataset: extract: %w", err)
	}
	defer f.Close()

	ds, err := ExtractReader(f)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("dataset: extract %s: %w", path, err)
	}
	zap.L().Debug("dataset extracted", zap.String("path", path), zap.Int("items", ds.Len()))
	return ds, nil
}

// ExtractReader parses CSV rows from r. Every row must carry exactly
// model.NumLabels integer fields after the item name.
func ExtractReader(r io.Reader) (model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // arity is checked per row below
	cr.LazyQuotes = true    // stray quotes inside a name are kept literally

	ds := model.Dataset{
		Names:  []string{},
		Labels: []model.LabelVector{},
	}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return model.Dataset{}, fmt.Errorf("dataset: %w", err)
		}
		line, _ := cr.FieldPos(0)

		labels, err := parseLabels(record[1:], line)
		if err != nil {
			return model.Dataset{}, err
		}
		ds.Names = append(ds.Names, record[0])
		ds.Labels = append(ds.Labels, labels)
	}
	return ds, nil
}

func parseLabels(fields []string, line int) (model.LabelVector, error) {
	var lv model.LabelVector
	if len(fields) != model.NumLabels {
		return lv, fmt.Errorf("%w: line %d has %d label fields, want %d",
			model.ErrLabelArityMismatch, line, len(fields), model.NumLabels)
	}
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return lv, fmt.Errorf("%w: line %d field %d: %q is not an integer",
				model.ErrLabelParseError, line, i+1, field)
		}
		lv[i] = n
	}
	return lv, nil
}
