package distance

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mimatch/model"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		name    string
		want    Metric
		wantErr bool
	}{
		{"manhattan", MetricManhattan, false},
		{"euclidian", MetricEuclidian, false},
		{"mahalanobis", MetricMahalanobis, false},
		{"residual", MetricResidual, false},
		{"cosine", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMetric(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrDomain))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestManhattan(t *testing.T) {
	preds := [][]float64{{0, 1, 2, 3}, {0, 2, 4, 6}}

	t.Run("Uniform", func(t *testing.T) {
		s, err := New(MetricManhattan, preds, nil, nil, nil, Params{})
		require.NoError(t, err)
		assert.InDelta(t, 3, s.Distance(0, 1), 1e-12)
		assert.InDelta(t, 9, s.Distance(0, 3), 1e-12)
		assert.Zero(t, s.Distance(2, 2))
	})

	t.Run("Weighted", func(t *testing.T) {
		s, err := New(MetricManhattan, preds, nil, []float64{2, 0.5}, nil, Params{})
		require.NoError(t, err)
		assert.InDelta(t, 3, s.Distance(0, 1), 1e-12)
	})
}

func TestEuclidian(t *testing.T) {
	preds := [][]float64{{0, 1, 2, 3}, {0, 2, 4, 6}}
	s, err := New(MetricEuclidian, preds, nil, nil, nil, Params{})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5), s.Distance(0, 1), 1e-12)
	assert.Zero(t, s.Distance(1, 1))
}

func TestMahalanobis(t *testing.T) {
	t.Run("OneDimensional", func(t *testing.T) {
		preds := [][]float64{{0, 1, 2, 3}}
		s, err := New(MetricMahalanobis, preds, nil, nil, []int{0, 1, 2, 3}, Params{Ridge: 1e-8})
		require.NoError(t, err)
		// Sample variance of the donor pool is 5/3; the squared generalized
		// distance for one unit of separation is its inverse.
		assert.InDelta(t, 0.6, s.Distance(0, 1), 1e-3)
		assert.InDelta(t, 4*0.6, s.Distance(0, 2), 1e-2)
	})

	t.Run("SingularCovariance", func(t *testing.T) {
		// Second dimension is an exact multiple of the first; only the ridge
		// keeps the covariance invertible.
		preds := [][]float64{{0, 1, 2, 3}, {0, 2, 4, 6}}
		s, err := New(MetricMahalanobis, preds, nil, nil, []int{0, 1, 2, 3}, Params{Ridge: 1e-5})
		require.NoError(t, err)
		d1 := s.Distance(0, 1)
		d3 := s.Distance(0, 3)
		assert.True(t, d1 > 0 && !math.IsNaN(d1) && !math.IsInf(d1, 0))
		assert.Greater(t, d3, d1)
	})

	t.Run("SingleDonor", func(t *testing.T) {
		preds := [][]float64{{0, 1, 2, 3}}
		s, err := New(MetricMahalanobis, preds, nil, nil, []int{2}, Params{Ridge: 1e-5})
		require.NoError(t, err)
		assert.False(t, math.IsNaN(s.Distance(0, 2)))
	})
}

func TestResidual(t *testing.T) {
	preds := [][]float64{{0, 1, 2, 3}}
	data := [][]float64{{0.5, 1.5, 2.5, 3.5}}
	p := Params{Eps: 0.1, MaxCor: 0.9}
	s, err := New(MetricResidual, preds, data, nil, []int{0, 1, 2, 3}, p)
	require.NoError(t, err)

	// Residuals are constant, so the scale bottoms out at eps and the
	// correlation shrinkage saturates at maxcor.
	assert.InDelta(t, math.Sqrt(0.9*100), s.Distance(0, 1), 1e-9)
	assert.Greater(t, s.Distance(0, 3), s.Distance(0, 1))
}

func TestNewRejects(t *testing.T) {
	t.Run("NoDimensions", func(t *testing.T) {
		_, err := New(MetricManhattan, nil, nil, nil, nil, Params{})
		assert.True(t, errors.Is(err, model.ErrDomain))
	})

	t.Run("WeightLengthMismatch", func(t *testing.T) {
		_, err := New(MetricManhattan, [][]float64{{0, 1}}, nil, []float64{1, 2}, nil, Params{})
		assert.True(t, errors.Is(err, model.ErrConsistency))
	})

	t.Run("UnknownMetric", func(t *testing.T) {
		_, err := New(Metric(99), [][]float64{{0, 1}}, nil, nil, nil, Params{})
		assert.True(t, errors.Is(err, model.ErrDomain))
	})
}
