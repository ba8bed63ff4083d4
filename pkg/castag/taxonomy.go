package castag

import (
	"github.com/crimson-sun/castag/internal/engine/taxonomy"
	"github.com/crimson-sun/castag/internal/model"
)

// Category names one label dimension.
type Category struct {
	Name        string // e.g. "Creativity"
	Description string
}

// DefaultCategories returns the built-in label names.
func DefaultCategories() []Category {
	return fromModel(taxonomy.DefaultCategories())
}

// Categories returns the classifier's label dimensions in order.
func (c *Classifier) Categories() []Category {
	return fromModel(c.taxonomy.Categories())
}

func fromModel(cats []model.Category) []Category {
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = Category{Name: c.Name, Description: c.Desc}
	}
	return out
}

func toModel(cats []Category) []model.Category {
	out := make([]model.Category, len(cats))
	for i, c := range cats {
		out[i] = model.Category{Name: c.Name, Desc: c.Description}
	}
	return out
}
