package taxonomy

import "github.com/crimson-sun/castag/internal/model"

// DefaultCategories returns the built-in activity categories.
func DefaultCategories() []model.Category {
	return []model.Category{
		{Name: "Creativity", Desc: "Arts and other experiences that involve creative thinking"},
		{Name: "Action", Desc: "Physical exertion contributing to a healthy lifestyle"},
		{Name: "Service", Desc: "Collaborative, unpaid engagement with the community"},
	}
}

// Default returns a Taxonomy over DefaultCategories.
func Default() *Taxonomy {
	t, err := New(DefaultCategories())
	if err != nil {
		panic(err) // built-in categories are valid
	}
	return t
}
