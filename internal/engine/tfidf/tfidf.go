// Package tfidf reweights term counts by smoothed inverse document frequency.
package tfidf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Transformer holds the per-term idf weights learned from a training set.
type Transformer struct {
	idf []float64
}

// Fit learns idf(t) = ln((1+n)/(1+df(t))) + 1 from count rows, where n is
// the number of rows and df(t) the number of rows in which t occurs.
// All rows must share the same width.
func Fit(counts [][]float64) *Transformer {
	if len(counts) == 0 {
		return &Transformer{}
	}
	width := len(counts[0])
	df := make([]float64, width)
	for _, row := range counts {
		for j, c := range row {
			if c > 0 {
				df[j]++
			}
		}
	}

	n := float64(len(counts))
	idf := make([]float64, width)
	for j := range idf {
		idf[j] = math.Log((1+n)/(1+df[j])) + 1
	}
	return &Transformer{idf: idf}
}

// Transform returns new rows with each count scaled by its term's idf and
// the row L2-normalized. Rows with no known terms stay all zero.
func (t *Transformer) Transform(counts [][]float64) [][]float64 {
	out := make([][]float64, len(counts))
	for i, row := range counts {
		w := make([]float64, len(row))
		copy(w, row)
		floats.Mul(w, t.idf)
		if norm := floats.Norm(w, 2); norm > 0 {
			floats.Scale(1/norm, w)
		}
		out[i] = w
	}
	return out
}

// IDF returns a copy of the learned weights in column order.
func (t *Transformer) IDF() []float64 {
	out := make([]float64, len(t.idf))
	copy(out, t.idf)
	return out
}
