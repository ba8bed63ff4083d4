// Package source loads training and held-out data, choosing the reader by
// file extension.
package source

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crimson-sun/castag/internal/model"
)

// ItemsExt is the suffix of plain item lists: one item per line, no labels.
const ItemsExt = ".txt"

// Load reads a labeled dataset from path.
func Load(path string) (model.Dataset, error) {
	l, err := Get(path)
	if err != nil {
		return model.Dataset{}, err
	}
	return l(path)
}

// LoadItems reads the item names from path. Besides every labeled source
// kind it accepts ItemsExt files, whose non-blank lines are the items.
// The dataset is returned too when the file carries labels, nil otherwise.
func LoadItems(path string) ([]string, *model.Dataset, error) {
	if filepath.Ext(path) == ItemsExt {
		items, err := readLines(path)
		return items, nil, err
	}
	ds, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	return ds.Names, &ds, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	defer f.Close()

	items := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return items, nil
}
