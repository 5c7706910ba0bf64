package schema

import (
	"fmt"
	"strings"

	"github.com/hupe1980/mimatch/dummy"
	"github.com/hupe1980/mimatch/model"
)

// GroupTuple renders a column group for error messages, e.g. "(2,3,4)".
func GroupTuple(cols []int) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// ValidateGroups resolves and checks the column groups against the
// container, returning the canonical integer tuples in the caller's order.
//
// When groups is empty, candidate groups are discovered from columns that
// share an identical target-missingness pattern and a matching-compatible
// method; finding none is a data coverage failure.
func ValidateGroups(c *model.Container, groups [][]model.ColumnRef) ([][]int, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil container", model.ErrSchema)
	}
	if len(groups) == 0 {
		discovered, err := dummy.DiscoverGroups(c)
		if err != nil {
			return nil, err
		}
		if err := checkImputed(c, discovered); err != nil {
			return nil, err
		}
		return discovered, nil
	}

	resolved := make([][]int, 0, len(groups))
	seen := make(map[int]int) // column -> group ordinal, for cross-group duplicates
	for g, refs := range groups {
		if len(refs) == 0 {
			return nil, fmt.Errorf("%w: group %d is empty", model.ErrSchema, g)
		}
		byIndex := refs[0].IsIndex()
		cols := make([]int, 0, len(refs))
		inGroup := make(map[int]bool, len(refs))
		for _, ref := range refs {
			if ref.IsIndex() != byIndex {
				return nil, fmt.Errorf("%w: group %d mixes column names and indices", model.ErrSchema, g)
			}
			col, err := ref.Resolve(c.Names)
			if err != nil {
				return nil, fmt.Errorf("group %d: %w", g, err)
			}
			if inGroup[col] {
				return nil, fmt.Errorf("%w: group %d: duplicate column %d (%s)", model.ErrSchema, g, col, c.Names[col])
			}
			inGroup[col] = true
			cols = append(cols, col)
		}
		for _, col := range cols {
			if prev, ok := seen[col]; ok {
				return nil, fmt.Errorf("%w: column %d (%s) appears in groups %d and %d",
					model.ErrConsistency, col, c.Names[col], prev, g)
			}
			seen[col] = g
			if !c.InVisit(col) {
				return nil, fmt.Errorf("%w: group %s: column %d (%s) is not in the visiting sequence",
					model.ErrSchema, GroupTuple(cols), col, c.Names[col])
			}
			if !model.MatchingCompatible(c.Method[col]) {
				return nil, fmt.Errorf("%w: group %s: column %d (%s) uses method %q, not matching-compatible",
					model.ErrDomain, GroupTuple(cols), col, c.Names[col], c.Method[col])
			}
		}
		if err := checkBlockwise(c, cols); err != nil {
			return nil, err
		}
		resolved = append(resolved, cols)
	}
	if err := checkImputed(c, resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// checkImputed verifies that every group column carries an imputed-value
// matrix; matching has nowhere to write otherwise.
func checkImputed(c *model.Container, groups [][]int) error {
	for _, cols := range groups {
		for _, col := range cols {
			if c.Imp[col] == nil {
				return fmt.Errorf("%w: group %s: column %d (%s) has no imputed-value matrix",
					model.ErrConsistency, GroupTuple(cols), col, c.Names[col])
			}
		}
	}
	return nil
}

// checkBlockwise enforces blockwise missingness: within a group, every
// row's columns are either all imputation targets or all observed.
func checkBlockwise(c *model.Container, cols []int) error {
	if len(cols) < 2 {
		return nil
	}
	for r := range c.Where {
		flagged := 0
		for _, col := range cols {
			if c.Where[r][col] {
				flagged++
			}
		}
		if flagged != 0 && flagged != len(cols) {
			return fmt.Errorf("%w: group %s: row %d is missing in %d of %d columns, blockwise missingness violated",
				model.ErrConsistency, GroupTuple(cols), r, flagged, len(cols))
		}
	}
	return nil
}
