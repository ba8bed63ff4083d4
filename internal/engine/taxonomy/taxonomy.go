package taxonomy

import (
	"fmt"
	"strings"

	"github.com/crimson-sun/castag/internal/model"
)

// Taxonomy names the label dimensions, in label-vector order.
type Taxonomy struct {
	categories [model.NumLabels]model.Category
}

// New creates a Taxonomy from exactly model.NumLabels categories.
func New(categories []model.Category) (*Taxonomy, error) {
	if len(categories) != model.NumLabels {
		return nil, fmt.Errorf("taxonomy: got %d categories, want %d", len(categories), model.NumLabels)
	}
	t := &Taxonomy{}
	seen := make(map[string]bool, len(categories))
	for i, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("taxonomy: category %d has no name", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("taxonomy: duplicate category %q", name)
		}
		seen[name] = true
		t.categories[i] = model.Category{Name: name, Desc: c.Desc}
	}
	return t, nil
}

// FromNames builds a Taxonomy from bare category names.
func FromNames(names []string) (*Taxonomy, error) {
	cats := make([]model.Category, len(names))
	for i, n := range names {
		cats[i] = model.Category{Name: n}
	}
	return New(cats)
}

// Categories returns the categories in label order.
func (t *Taxonomy) Categories() []model.Category {
	out := make([]model.Category, model.NumLabels)
	copy(out, t.categories[:])
	return out
}

// Names returns the names of the categories set in lv.
func (t *Taxonomy) Names(lv model.LabelVector) []string {
	var names []string
	for i, c := range t.categories {
		if lv.Has(i) {
			names = append(names, c.Name)
		}
	}
	return names
}
