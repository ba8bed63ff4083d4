package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/crimson-sun/castag/internal/dataset"
	"github.com/crimson-sun/castag/internal/model"
)

// ErrUnknownSource is returned for paths whose suffix has no loader.
var ErrUnknownSource = errors.New("unknown dataset source")

// Loader reads a dataset from a path.
type Loader func(path string) (model.Dataset, error)

var registry = map[string]Loader{}

func init() {
	Register(dataset.SourceExt, dataset.Extract)
	Register(dataset.Ext, dataset.Restore)
}

// Register adds a loader for files ending in ext (including the dot).
// Extensions are matched case-sensitively.
func Register(ext string, l Loader) {
	registry[ext] = l
}

// Get returns the loader registered for path's extension.
func Get(path string) (Loader, error) {
	l, ok := registry[filepath.Ext(path)]
	if !ok {
		return nil, fmt.Errorf("source: %w: %q (known: %s)",
			ErrUnknownSource, path, strings.Join(Extensions(), ", "))
	}
	return l, nil
}

// Extensions returns the registered extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(registry))
	for ext := range registry {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
