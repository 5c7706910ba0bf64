package schema

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mimatch/distance"
	"github.com/hupe1980/mimatch/dummy"
	"github.com/hupe1980/mimatch/model"
	"github.com/hupe1980/mimatch/testutil"
)

// encodedContainer builds a 4-row container whose columns are
// age, color.red, color.green, color.blue, region (indices 0..4), with the
// color group missing blockwise at row 2.
func encodedContainer(t *testing.T) *model.Container {
	t.Helper()
	f := &model.Frame{Columns: []model.Column{
		{Name: "age", Kind: model.Numeric, Values: []float64{20, 30, 40, 25}},
		{Name: "color", Kind: model.Factor, Values: []float64{1, 2, math.NaN(), 2}, Levels: []string{"red", "green", "blue"}},
		{Name: "region", Kind: model.Numeric, Values: []float64{1, 2, 1, 2}},
	}}
	encoded, predictors, params, err := dummy.Encode(f, []model.ColumnRef{model.ByName("color")})
	require.NoError(t, err)
	return testutil.Container(encoded, predictors, params, 1)
}

func colorGroup() []model.ColumnRef {
	return []model.ColumnRef{model.ByName("color.red"), model.ByName("color.green"), model.ByName("color.blue")}
}

func TestValidateGroups(t *testing.T) {
	t.Run("CanonicalOrder", func(t *testing.T) {
		c := encodedContainer(t)
		groups, err := ValidateGroups(c, [][]model.ColumnRef{{
			model.ByName("color.blue"), model.ByName("color.red"), model.ByName("color.green"),
		}})
		require.NoError(t, err)
		assert.Equal(t, [][]int{{3, 1, 2}}, groups)
	})

	t.Run("ByIndex", func(t *testing.T) {
		c := encodedContainer(t)
		groups, err := ValidateGroups(c, [][]model.ColumnRef{{
			model.ByIndex(1), model.ByIndex(2), model.ByIndex(3),
		}})
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2, 3}}, groups)
	})

	t.Run("MixedNamesAndIndices", func(t *testing.T) {
		c := encodedContainer(t)
		_, err := ValidateGroups(c, [][]model.ColumnRef{{model.ByName("color.red"), model.ByIndex(2)}})
		assert.True(t, errors.Is(err, model.ErrSchema))
	})

	t.Run("EmptyGroup", func(t *testing.T) {
		c := encodedContainer(t)
		_, err := ValidateGroups(c, [][]model.ColumnRef{{}})
		assert.True(t, errors.Is(err, model.ErrSchema))
	})

	t.Run("UnknownName", func(t *testing.T) {
		c := encodedContainer(t)
		_, err := ValidateGroups(c, [][]model.ColumnRef{{model.ByName("color.pink"), model.ByName("color.red")}})
		assert.True(t, errors.Is(err, model.ErrSchema))
	})

	t.Run("IndexOutOfBounds", func(t *testing.T) {
		c := encodedContainer(t)
		_, err := ValidateGroups(c, [][]model.ColumnRef{{model.ByIndex(1), model.ByIndex(99)}})
		assert.True(t, errors.Is(err, model.ErrSchema))
	})

	t.Run("DuplicateWithinGroup", func(t *testing.T) {
		c := encodedContainer(t)
		_, err := ValidateGroups(c, [][]model.ColumnRef{{model.ByIndex(1), model.ByIndex(1)}})
		assert.True(t, errors.Is(err, model.ErrSchema))
	})

	t.Run("DuplicateAcrossGroups", func(t *testing.T) {
		c := encodedContainer(t)
		_, err := ValidateGroups(c, [][]model.ColumnRef{
			{model.ByIndex(1), model.ByIndex(2)},
			{model.ByIndex(2), model.ByIndex(3)},
		})
		assert.True(t, errors.Is(err, model.ErrConsistency))
	})

	t.Run("NotInVisitingSequence", func(t *testing.T) {
		c := encodedContainer(t)
		_, err := ValidateGroups(c, [][]model.ColumnRef{{model.ByName("age"), model.ByName("color.red")}})
		assert.True(t, errors.Is(err, model.ErrSchema))
	})

	t.Run("IncompatibleMethod", func(t *testing.T) {
		c := encodedContainer(t)
		c.Method[2] = "mean"
		_, err := ValidateGroups(c, [][]model.ColumnRef{colorGroup()})
		assert.True(t, errors.Is(err, model.ErrDomain))
	})

	t.Run("BlockwiseViolation", func(t *testing.T) {
		// Row 0: first indicator flagged missing, siblings observed.
		c := encodedContainer(t)
		c.Where[0][1] = true
		_, err := ValidateGroups(c, [][]model.ColumnRef{colorGroup()})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrConsistency))
		assert.Contains(t, err.Error(), "(1,2,3)")
		assert.Contains(t, err.Error(), "blockwise")
	})

	t.Run("Discovery", func(t *testing.T) {
		c := encodedContainer(t)
		groups, err := ValidateGroups(c, nil)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2, 3}}, groups)
	})

	t.Run("NilContainer", func(t *testing.T) {
		_, err := ValidateGroups(nil, nil)
		assert.True(t, errors.Is(err, model.ErrSchema))
	})
}

func TestValidateWeights(t *testing.T) {
	groups := [][]int{{1, 2, 3}}

	t.Run("NilCollection", func(t *testing.T) {
		w, err := ValidateWeights(nil, groups)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{nil}, w)
	})

	t.Run("NilEntry", func(t *testing.T) {
		w, err := ValidateWeights([][]float64{nil}, groups)
		require.NoError(t, err)
		assert.Nil(t, w[0])
	})

	t.Run("ScalarUniformSentinel", func(t *testing.T) {
		for _, sentinel := range []float64{0, 1} {
			w, err := ValidateWeights([][]float64{{sentinel}}, groups)
			require.NoError(t, err)
			assert.Nil(t, w[0])
		}
	})

	t.Run("Valid", func(t *testing.T) {
		w, err := ValidateWeights([][]float64{{1, 2, 0.5}}, groups)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 0.5}, w[0])
	})

	t.Run("CollectionLengthMismatch", func(t *testing.T) {
		_, err := ValidateWeights([][]float64{{1, 1, 1}, {1}}, groups)
		assert.True(t, errors.Is(err, model.ErrConsistency))
	})

	t.Run("GroupLengthMismatch", func(t *testing.T) {
		_, err := ValidateWeights([][]float64{{1, 2}}, groups)
		assert.True(t, errors.Is(err, model.ErrConsistency))
	})

	t.Run("NonPositive", func(t *testing.T) {
		_, err := ValidateWeights([][]float64{{1, -2, 3}}, groups)
		assert.True(t, errors.Is(err, model.ErrDomain))
	})

	t.Run("NonFinite", func(t *testing.T) {
		_, err := ValidateWeights([][]float64{{1, math.Inf(1), 3}}, groups)
		assert.True(t, errors.Is(err, model.ErrDomain))

		_, err = ValidateWeights([][]float64{{math.NaN(), 1, 1}}, groups)
		assert.True(t, errors.Is(err, model.ErrDomain))
	})
}

func TestValidateMatchVars(t *testing.T) {
	groups := [][]int{{1, 2, 3}}

	t.Run("NilCollection", func(t *testing.T) {
		c := encodedContainer(t)
		vars, err := ValidateMatchVars(c, groups, nil)
		require.NoError(t, err)
		assert.Equal(t, []int{NoMatchVar}, vars)
	})

	t.Run("ZeroSentinel", func(t *testing.T) {
		c := encodedContainer(t)
		vars, err := ValidateMatchVars(c, groups, []model.ColumnRef{{}})
		require.NoError(t, err)
		assert.Equal(t, []int{NoMatchVar}, vars)
	})

	t.Run("ByName", func(t *testing.T) {
		c := encodedContainer(t)
		vars, err := ValidateMatchVars(c, groups, []model.ColumnRef{model.ByName("region")})
		require.NoError(t, err)
		assert.Equal(t, []int{4}, vars)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		c := encodedContainer(t)
		_, err := ValidateMatchVars(c, groups, []model.ColumnRef{model.ByName("region"), model.ByName("age")})
		assert.True(t, errors.Is(err, model.ErrConsistency))
	})

	t.Run("MemberOfOwnGroup", func(t *testing.T) {
		c := encodedContainer(t)
		_, err := ValidateMatchVars(c, groups, []model.ColumnRef{model.ByName("color.red")})
		assert.True(t, errors.Is(err, model.ErrConsistency))
	})

	t.Run("NotFullyObserved", func(t *testing.T) {
		c := encodedContainer(t)
		c.Data[1][4] = math.NaN()
		_, err := ValidateMatchVars(c, groups, []model.ColumnRef{model.ByName("region")})
		assert.True(t, errors.Is(err, model.ErrDomain))
	})

	t.Run("NotDiscrete", func(t *testing.T) {
		c := encodedContainer(t)
		c.Data[0][0] = 20.5
		_, err := ValidateMatchVars(c, groups, []model.ColumnRef{model.ByName("age")})
		assert.True(t, errors.Is(err, model.ErrDomain))
	})
}

func TestValidateOptions(t *testing.T) {
	valid := Options{
		Metric: distance.MetricEuclidian,
		Donors: 5,
		Policy: PolicyUniform,
		Ridge:  1e-5,
		Eps:    1e-4,
		MaxCor: 0.99,
	}

	t.Run("Valid", func(t *testing.T) {
		got, err := ValidateOptions(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	})

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"DonorsZero", func(o *Options) { o.Donors = 0 }},
		{"PolicyThree", func(o *Options) { o.Policy = 3 }},
		{"RidgeAboveOne", func(o *Options) { o.Ridge = 1.5 }},
		{"RidgeZero", func(o *Options) { o.Ridge = 0 }},
		{"EpsZero", func(o *Options) { o.Eps = 0 }},
		{"EpsNegative", func(o *Options) { o.Eps = -1 }},
		{"MaxCorZero", func(o *Options) { o.MaxCor = 0 }},
		{"MetricUnknown", func(o *Options) { o.Metric = distance.Metric(42) }},
		{"RidgeNaN", func(o *Options) { o.Ridge = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			_, err := ValidateOptions(o)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrDomain))
		})
	}
}
