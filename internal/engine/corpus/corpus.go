// Package corpus embeds a small labeled activity dataset used to validate
// classifier behavior end to end.
package corpus

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/crimson-sun/castag/internal/dataset"
	"github.com/crimson-sun/castag/internal/model"
)

//go:embed corpus.csv
var corpusCSV []byte

// Load parses the embedded corpus.
func Load() (model.Dataset, error) {
	ds, err := dataset.ExtractReader(bytes.NewReader(corpusCSV))
	if err != nil {
		return model.Dataset{}, fmt.Errorf("parse corpus.csv: %w", err)
	}
	return ds, nil
}
