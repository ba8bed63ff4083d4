package castag

// Labels holds one item's label indicators in category order. A non-zero
// entry marks the category as present.
type Labels [3]int

// Result is a classified item.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Result struct {
	Item       string    `json:"item"`
	Labels     Labels    `json:"labels"`
	Categories []string  `json:"categories"`       // Names of the set labels
	Scores     []float64 `json:"scores,omitempty"` // Raw decision scores, > 0 means set
}
