// Package svm trains binary linear support vector machines with an
// L2-regularized squared hinge loss, solved in the dual by coordinate
// descent (Hsieh et al., 2008). The bias is learned as the weight of a
// constant extra feature.
package svm

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoSamples   = errors.New("svm: no training samples")
	ErrSingleClass = errors.New("svm: training targets contain a single class")
)

// Params controls training.
type Params struct {
	C         float64 // inverse regularization strength
	Tolerance float64 // stop when the projected gradient spread falls below this
	MaxIter   int     // maximum passes over the data
	Seed      int64   // seeds the per-pass visiting order
	BiasScale float64 // value of the constant bias feature
}

// DefaultParams mirrors the usual LinearSVC defaults.
func DefaultParams() Params {
	return Params{
		C:         1.0,
		Tolerance: 1e-4,
		MaxIter:   1000,
		Seed:      0,
		BiasScale: 1.0,
	}
}

// Model is a trained linear decision function w·x + b.
type Model struct {
	Weights   []float64
	Bias      float64
	Iter      int  // passes used
	Converged bool // false when MaxIter was reached first
}

// Train fits a model to rows x with boolean targets y (true = positive).
// x must be non-empty, rectangular, and contain both classes.
func Train(x [][]float64, y []bool, p Params) (*Model, error) {
	if len(x) == 0 {
		return nil, ErrNoSamples
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("svm: %d rows but %d targets", len(x), len(y))
	}
	if p.C <= 0 || p.Tolerance <= 0 || p.MaxIter <= 0 {
		return nil, fmt.Errorf("svm: invalid params %+v", p)
	}
	pos := 0
	for _, t := range y {
		if t {
			pos++
		}
	}
	if pos == 0 || pos == len(y) {
		return nil, ErrSingleClass
	}

	width := len(x[0])
	l := len(x)

	// Augment every row with the bias feature.
	xa := make([][]float64, l)
	for i, row := range x {
		if len(row) != width {
			return nil, fmt.Errorf("svm: row %d has width %d, want %d", i, len(row), width)
		}
		r := make([]float64, width+1)
		copy(r, row)
		r[width] = p.BiasScale
		xa[i] = r
	}

	sign := make([]float64, l)
	for i, t := range y {
		sign[i] = -1
		if t {
			sign[i] = 1
		}
	}

	// Squared hinge loss: no upper bound on alpha, diagonal shift 1/(2C).
	diag := 0.5 / p.C
	qd := make([]float64, l)
	for i, r := range xa {
		qd[i] = diag + floats.Dot(r, r)
	}

	w := make([]float64, width+1)
	alpha := make([]float64, l)
	index := make([]int, l)
	for i := range index {
		index[i] = i
	}
	rng := rand.New(rand.NewSource(p.Seed))

	m := &Model{}
	for m.Iter < p.MaxIter {
		rng.Shuffle(l, func(i, j int) { index[i], index[j] = index[j], index[i] })

		pgMax, pgMin := math.Inf(-1), math.Inf(1)
		for _, i := range index {
			g := sign[i]*floats.Dot(w, xa[i]) - 1 + diag*alpha[i]

			pg := g
			if alpha[i] == 0 && g > 0 {
				pg = 0
			}
			pgMax = math.Max(pgMax, pg)
			pgMin = math.Min(pgMin, pg)

			if math.Abs(pg) > 1e-12 {
				old := alpha[i]
				alpha[i] = math.Max(alpha[i]-g/qd[i], 0)
				floats.AddScaled(w, (alpha[i]-old)*sign[i], xa[i])
			}
		}
		m.Iter++

		if pgMax-pgMin <= p.Tolerance {
			m.Converged = true
			break
		}
	}

	m.Weights = w[:width]
	m.Bias = w[width] * p.BiasScale
	return m, nil
}

// Decision returns the signed distance score w·x + b.
func (m *Model) Decision(x []float64) float64 {
	return floats.Dot(m.Weights, x) + m.Bias
}

// Predict reports whether x falls on the positive side.
func (m *Model) Predict(x []float64) bool {
	return m.Decision(x) > 0
}
