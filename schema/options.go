package schema

import (
	"fmt"
	"math"

	"github.com/hupe1980/mimatch/distance"
	"github.com/hupe1980/mimatch/model"
)

// Donor selection policy codes.
const (
	// PolicyNearest deterministically picks the single nearest donor.
	PolicyNearest = 0
	// PolicyUniform picks uniformly at random among the donor pool.
	PolicyUniform = 1
	// PolicyWeighted picks at random among the donor pool with
	// inverse-distance weights.
	PolicyWeighted = 2
)

// Options is the normalized matching options record.
type Options struct {
	// Metric selects the donor-distance function.
	Metric distance.Metric
	// Donors is the donor-pool size, at least 1.
	Donors int
	// Policy is one of the Policy* codes.
	Policy int
	// Ridge regularizes the mahalanobis covariance; in (0,1].
	Ridge float64
	// Eps stabilizes the residual scale; positive.
	Eps float64
	// MaxCor bounds the residual metric's correlation shrinkage; positive.
	MaxCor float64
}

// ValidateOptions checks every numeric option against its domain and
// returns the normalized record.
func ValidateOptions(o Options) (Options, error) {
	switch o.Metric {
	case distance.MetricManhattan, distance.MetricEuclidian, distance.MetricMahalanobis, distance.MetricResidual:
	default:
		return Options{}, fmt.Errorf("%w: unknown distance metric %d", model.ErrDomain, int(o.Metric))
	}
	if o.Donors < 1 {
		return Options{}, fmt.Errorf("%w: donor pool size %d, must be a positive integer", model.ErrDomain, o.Donors)
	}
	switch o.Policy {
	case PolicyNearest, PolicyUniform, PolicyWeighted:
	default:
		return Options{}, fmt.Errorf("%w: selection policy %d, must be 0, 1 or 2", model.ErrDomain, o.Policy)
	}
	if !positiveFinite(o.Ridge) || o.Ridge > 1 {
		return Options{}, fmt.Errorf("%w: ridge %v, must be in (0,1]", model.ErrDomain, o.Ridge)
	}
	if !positiveFinite(o.Eps) {
		return Options{}, fmt.Errorf("%w: eps %v, must be positive and finite", model.ErrDomain, o.Eps)
	}
	if !positiveFinite(o.MaxCor) {
		return Options{}, fmt.Errorf("%w: maxcor %v, must be positive and finite", model.ErrDomain, o.MaxCor)
	}
	return o, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
