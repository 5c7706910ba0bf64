package dummy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/mimatch/model"
)

// DiscoverGroups proposes candidate column groups for matching: maximal
// sets of at least two columns that share an identical target-missingness
// pattern, appear in the visiting sequence, and use a matching-compatible
// method. When the container carries a dummy-coding parameter record, its
// indicator groups take precedence; the heuristic only applies to what the
// record does not cover.
func DiscoverGroups(c *model.Container) ([][]int, error) {
	var groups [][]int
	claimed := make(map[int]bool)

	if c.Params != nil {
		for _, group := range c.Params.IndicatorGroups {
			if !candidateGroup(c, group) {
				continue
			}
			groups = append(groups, append([]int(nil), group...))
			for _, col := range group {
				claimed[col] = true
			}
		}
	}

	byPattern := make(map[string][]int)
	for col := 0; col < c.Cols(); col++ {
		if claimed[col] || !c.InVisit(col) || !model.MatchingCompatible(c.Method[col]) {
			continue
		}
		key, any := patternKey(c, col)
		if !any {
			continue
		}
		byPattern[key] = append(byPattern[key], col)
	}
	var keys []string
	for key, cols := range byPattern {
		if len(cols) >= 2 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		cols := byPattern[key]
		sort.Ints(cols)
		groups = append(groups, cols)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no candidate column groups: no columns share a missingness pattern under a matching-compatible method", model.ErrDataCoverage)
	}
	return groups, nil
}

// candidateGroup reports whether every column of group has imputation
// targets, a compatible method and a visiting-sequence slot.
func candidateGroup(c *model.Container, group []int) bool {
	for _, col := range group {
		if !c.InVisit(col) || !model.MatchingCompatible(c.Method[col]) {
			return false
		}
		if len(c.TargetRows(col)) == 0 {
			return false
		}
	}
	return true
}

// patternKey encodes the target-missingness column of col; any reports
// whether the column has at least one target row.
func patternKey(c *model.Container, col int) (string, bool) {
	var b strings.Builder
	b.Grow(c.Rows())
	any := false
	for r := range c.Where {
		if c.Where[r][col] {
			b.WriteByte('1')
			any = true
		} else {
			b.WriteByte('0')
		}
	}
	return b.String(), any
}
