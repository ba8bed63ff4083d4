package model

// Category describes one label dimension.
type Category struct {
	Name string
	Desc string
}
