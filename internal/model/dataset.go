package model

import "fmt"

// NumLabels is the fixed width of every label vector.
const NumLabels = 3

// LabelVector holds one item's label indicators, one entry per category.
// Any non-zero entry marks the category as present.
type LabelVector [NumLabels]int

// Has reports whether label i is set.
func (v LabelVector) Has(i int) bool {
	return i >= 0 && i < NumLabels && v[i] != 0
}

// Ints returns the vector as a plain slice.
func (v LabelVector) Ints() []int {
	out := make([]int, NumLabels)
	copy(out, v[:])
	return out
}

// Dataset is an ordered pairing of item identifiers and their labels.
// Names[i] is labeled by Labels[i].
type Dataset struct {
	Names  []string
	Labels []LabelVector
}

// Len returns the number of items in the dataset.
func (d Dataset) Len() int {
	return len(d.Names)
}

// Validate checks that both collections are present and equally long.
func (d Dataset) Validate() error {
	if d.Names == nil {
		return fmt.Errorf("%w: missing item names", ErrInvalidDatasetShape)
	}
	if d.Labels == nil {
		return fmt.Errorf("%w: missing label matrix", ErrInvalidDatasetShape)
	}
	if len(d.Names) != len(d.Labels) {
		return fmt.Errorf("%w: %d names but %d label rows",
			ErrInvalidDatasetShape, len(d.Names), len(d.Labels))
	}
	return nil
}
