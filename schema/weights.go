package schema

import (
	"fmt"
	"math"

	"github.com/hupe1980/mimatch/model"
)

// ValidateWeights normalizes the per-group weight vectors. A nil weights
// collection means uniform weighting for every group; a nil entry, or a
// scalar 0 or 1, means uniform weighting for that group (returned as nil).
// Every retained entry must be finite and strictly positive.
func ValidateWeights(weights [][]float64, groups [][]int) ([][]float64, error) {
	out := make([][]float64, len(groups))
	if weights == nil {
		return out, nil
	}
	if len(weights) != len(groups) {
		return nil, fmt.Errorf("%w: %d weight vectors for %d groups", model.ErrConsistency, len(weights), len(groups))
	}
	for g, w := range weights {
		cols := groups[g]
		if w == nil {
			continue
		}
		if len(w) == 1 && (w[0] == 0 || w[0] == 1) {
			// Scalar uniform sentinel.
			continue
		}
		if len(w) != len(cols) {
			return nil, fmt.Errorf("%w: group %s: %d weights for %d columns",
				model.ErrConsistency, GroupTuple(cols), len(w), len(cols))
		}
		for k, v := range w {
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return nil, fmt.Errorf("%w: group %s: weight %v at position %d, must be finite and positive",
					model.ErrDomain, GroupTuple(cols), v, k)
			}
		}
		out[g] = append([]float64(nil), w...)
	}
	return out, nil
}
