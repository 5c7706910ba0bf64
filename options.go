package mimatch

import (
	"github.com/hupe1980/mimatch/distance"
	"github.com/hupe1980/mimatch/model"
	"github.com/hupe1980/mimatch/schema"
)

type options struct {
	groups      [][]model.ColumnRef
	weights     [][]float64
	matchVars   []model.ColumnRef
	metricName  string
	matching    schema.Options
	seed        int64
	parallelism int
	logger      *Logger
}

func defaultOptions() *options {
	return &options{
		matching: schema.Options{
			Metric: distance.MetricEuclidian,
			Donors: 5,
			Policy: schema.PolicyUniform,
			Ridge:  1e-5,
			Eps:    1e-4,
			MaxCor: 0.99,
		},
		seed:   1,
		logger: NoopLogger(),
	}
}

// Option configures a Match call.
type Option func(*options)

// Names builds a column group referenced by names.
func Names(names ...string) []model.ColumnRef {
	refs := make([]model.ColumnRef, len(names))
	for i, n := range names {
		refs[i] = model.ByName(n)
	}
	return refs
}

// Indices builds a column group referenced by zero-based indices.
func Indices(idx ...int) []model.ColumnRef {
	refs := make([]model.ColumnRef, len(idx))
	for i, v := range idx {
		refs[i] = model.ByIndex(v)
	}
	return refs
}

// WithGroups configures the column groups to match. A single group may be
// passed bare; omitting the option entirely enables group discovery from
// shared missingness patterns.
func WithGroups(groups ...[]model.ColumnRef) Option {
	return func(o *options) {
		o.groups = groups
	}
}

// WithWeights configures per-dimension weights, parallel to the groups.
// A nil entry, or a scalar 0 or 1, selects uniform weighting for that
// group.
func WithWeights(weights ...[]float64) Option {
	return func(o *options) {
		o.weights = weights
	}
}

// WithMatchVars configures per-group match variables, parallel to the
// groups. Use the zero model.ColumnRef for groups without one.
func WithMatchVars(vars ...model.ColumnRef) Option {
	return func(o *options) {
		o.matchVars = vars
	}
}

// WithMetric selects the distance metric.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.matching.Metric = m
	}
}

// WithMetricName selects the distance metric by name ("manhattan",
// "euclidian", "mahalanobis" or "residual"). An unknown name surfaces as a
// domain error from Match.
func WithMetricName(name string) Option {
	return func(o *options) {
		o.metricName = name
	}
}

// WithDonors sets the donor-pool size, the number of nearest candidates a
// selection policy chooses from.
func WithDonors(k int) Option {
	return func(o *options) {
		o.matching.Donors = k
	}
}

// WithSelectionPolicy sets the donor-selection policy (schema.PolicyNearest,
// schema.PolicyUniform or schema.PolicyWeighted).
func WithSelectionPolicy(policy int) Option {
	return func(o *options) {
		o.matching.Policy = policy
	}
}

// WithRidge sets the covariance regularization for the mahalanobis metric;
// must be in (0,1].
func WithRidge(ridge float64) Option {
	return func(o *options) {
		o.matching.Ridge = ridge
	}
}

// WithEps sets the stabilization floor used by the residual metric and the
// weighted selection policy; must be positive.
func WithEps(eps float64) Option {
	return func(o *options) {
		o.matching.Eps = eps
	}
}

// WithMaxCor bounds the correlation shrinkage of the residual metric; must
// be positive.
func WithMaxCor(maxcor float64) Option {
	return func(o *options) {
		o.matching.MaxCor = maxcor
	}
}

// WithSeed sets the base seed for the random donor-selection policies.
// The same seed always reproduces the same matching, regardless of
// parallelism.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithParallelism bounds the number of concurrent matching passes;
// values <= 0 mean GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithLogger configures structured logging. The default discards all
// output.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
