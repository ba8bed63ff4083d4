package castag

type options struct {
	seed       int64
	c          float64
	tolerance  float64
	maxIter    int
	parallel   bool
	categories []Category
}

// Option configures training.
type Option func(*options)

// WithSeed sets the seed for the solver's visiting order. Training with
// the same data and seed always yields the same classifier. Default: 0.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithC sets the SVM regularization strength. Larger values fit the
// training data more tightly. Default: 1.0.
func WithC(c float64) Option {
	return func(o *options) {
		o.c = c
	}
}

// WithTolerance sets the solver's stopping tolerance. Default: 1e-4.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithMaxIter caps solver passes per label. Default: 1000.
func WithMaxIter(n int) Option {
	return func(o *options) {
		o.maxIter = n
	}
}

// WithParallel trains the per-label models concurrently.
func WithParallel(on bool) Option {
	return func(o *options) {
		o.parallel = on
	}
}

// WithCategories renames the three label dimensions, in label order.
func WithCategories(categories ...Category) Option {
	return func(o *options) {
		o.categories = categories
	}
}

func defaultOptions() options {
	return options{
		c:         1.0,
		tolerance: 1e-4,
		maxIter:   1000,
	}
}
