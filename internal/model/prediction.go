package model

// Prediction pairs an input item with the labels the classifier assigned it.
type Prediction struct {
	Item   string
	Labels LabelVector
	Scores []float64 // raw decision scores, one per label; nil when not requested
}
