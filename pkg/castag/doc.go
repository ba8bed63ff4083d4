// Package castag provides a multi-label text classifier for short activity
// descriptions. Each item is tagged with any subset of three categories
// (Creativity, Action, Service by default).
//
// Quick start:
//
//	c, err := castag.TrainFile("activities.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := c.Classify("paint a mural")
//	fmt.Println(r.Labels, r.Categories) // [1 0 0] [Creativity]
//
// Training data is either a headerless CSV of "name,l0,l1,l2" rows or a
// dataset file written by SaveDataset or Extract. A trained Classifier is
// read-only and safe for concurrent use.
package castag
