package distance

import (
	"fmt"

	"github.com/hupe1980/mimatch/model"
)

// Metric selects the donor-distance function.
type Metric int

const (
	// MetricManhattan is the weighted sum of absolute component differences.
	MetricManhattan Metric = iota
	// MetricEuclidian is the square root of the weighted sum of squared
	// component differences.
	MetricEuclidian
	// MetricMahalanobis is the squared generalized distance under the
	// ridge-regularized covariance of the donor pool's predicted values.
	MetricMahalanobis
	// MetricResidual standardizes component differences by the donor pool's
	// residual scale and downweights near-collinear dimensions.
	MetricResidual
)

func (m Metric) String() string {
	switch m {
	case MetricManhattan:
		return "manhattan"
	case MetricEuclidian:
		return "euclidian"
	case MetricMahalanobis:
		return "mahalanobis"
	case MetricResidual:
		return "residual"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMetric resolves a metric name to its Metric value.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "manhattan":
		return MetricManhattan, nil
	case "euclidian":
		return MetricEuclidian, nil
	case "mahalanobis":
		return MetricMahalanobis, nil
	case "residual":
		return MetricResidual, nil
	default:
		return 0, fmt.Errorf("%w: unknown distance metric %q", model.ErrDomain, name)
	}
}

// Params carries the numeric stability parameters shared by the metrics.
type Params struct {
	// Ridge regularizes the donor covariance for the mahalanobis metric.
	Ridge float64
	// Eps floors the residual scale to avoid division by values near zero.
	Eps float64
	// MaxCor bounds the per-dimension correlation used by the residual
	// metric to avoid instability from near-collinear predictors.
	MaxCor float64
}

// Scorer computes the distance between a recipient row and a donor row.
// Implementations are safe for concurrent reads after construction.
type Scorer interface {
	Distance(recipient, donor int) float64
}

// New constructs a Scorer for metric m.
//
// preds[k][r] is the predicted value of the group's k-th column at row r
// under the current completed imputation; data[k][r] is the working value of
// that column (observed for donors), used only by the residual metric.
// weights holds one positive weight per group column, or nil for uniform
// weighting. donors lists the eligible donor pool rows, used to estimate the
// covariance and residual scale.
func New(m Metric, preds, data [][]float64, weights []float64, donors []int, p Params) (Scorer, error) {
	if len(preds) == 0 {
		return nil, fmt.Errorf("%w: scorer requires at least one dimension", model.ErrDomain)
	}
	w := weights
	if w == nil {
		w = make([]float64, len(preds))
		for k := range w {
			w[k] = 1
		}
	}
	if len(w) != len(preds) {
		return nil, fmt.Errorf("%w: %d weights for %d dimensions", model.ErrConsistency, len(w), len(preds))
	}
	switch m {
	case MetricManhattan:
		return &manhattan{preds: preds, w: w}, nil
	case MetricEuclidian:
		return &euclidian{preds: preds, w: w}, nil
	case MetricMahalanobis:
		return newMahalanobis(preds, w, donors, p.Ridge)
	case MetricResidual:
		return newResidual(preds, data, w, donors, p)
	default:
		return nil, fmt.Errorf("%w: unknown distance metric %d", model.ErrDomain, int(m))
	}
}
