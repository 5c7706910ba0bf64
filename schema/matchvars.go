package schema

import (
	"fmt"
	"math"

	"github.com/hupe1980/mimatch/model"
)

// NoMatchVar marks a group without a match variable.
const NoMatchVar = -1

// ValidateMatchVars resolves the per-group match variables to canonical
// column indices, NoMatchVar for the empty sentinel. A match variable must
// reference an existing, fully observed, discrete (integer-valued) column
// that is not a member of its own group.
func ValidateMatchVars(c *model.Container, groups [][]int, vars []model.ColumnRef) ([]int, error) {
	out := make([]int, len(groups))
	for g := range out {
		out[g] = NoMatchVar
	}
	if vars == nil {
		return out, nil
	}
	if len(vars) != len(groups) {
		return nil, fmt.Errorf("%w: %d match variables for %d groups", model.ErrConsistency, len(vars), len(groups))
	}
	for g, ref := range vars {
		if ref.IsZero() {
			continue
		}
		cols := groups[g]
		col, err := ref.Resolve(c.Names)
		if err != nil {
			return nil, fmt.Errorf("group %s: match variable: %w", GroupTuple(cols), err)
		}
		for _, member := range cols {
			if member == col {
				return nil, fmt.Errorf("%w: group %s: match variable %d (%s) is a member of its own group",
					model.ErrConsistency, GroupTuple(cols), col, c.Names[col])
			}
		}
		for r := range c.Data {
			v := c.Data[r][col]
			if math.IsNaN(v) || c.Where[r][col] {
				return nil, fmt.Errorf("%w: group %s: match variable %d (%s) is not fully observed (row %d)",
					model.ErrDomain, GroupTuple(cols), col, c.Names[col], r)
			}
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("%w: group %s: match variable %d (%s) is not discrete (row %d holds %v)",
					model.ErrDomain, GroupTuple(cols), col, c.Names[col], r, v)
			}
		}
		out[g] = col
	}
	return out, nil
}
