package match

import (
	"fmt"
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/mimatch/model"
	"github.com/hupe1980/mimatch/schema"
)

// Analyze computes the reusable matching plan for one validated group:
// eligibility masks, partitions by the match variable, and the working
// values the distance engine and assembler read. The inputs must already
// have passed schema validation.
func Analyze(c *model.Container, cols []int, weights []float64, matchVar int) (*GroupPlan, error) {
	if len(cols) == 1 && matchVar == schema.NoMatchVar && c.Method[cols[0]] == model.MethodPMM {
		return nil, fmt.Errorf("%w: group %s: a singleton pmm group with no match variable has nothing to match against",
			model.ErrState, schema.GroupTuple(cols))
	}

	working := workingFrame(c)

	plan := &GroupPlan{
		Cols:     cols,
		Weights:  weights,
		MatchVar: matchVar,
	}
	for _, col := range cols {
		vals := make([]float64, c.Rows())
		for r := range vals {
			vals[r] = working[r][col]
		}
		plan.Working = append(plan.Working, vals)
	}

	for i, col := range cols {
		complete := predictorComplete(c, working, col)
		donors := roaring.New()
		recipients := roaring.New()
		for _, r := range complete {
			if c.Where[r][col] {
				recipients.Add(uint32(r))
			} else if !math.IsNaN(c.Data[r][col]) {
				donors.Add(uint32(r))
			}
		}
		if i == 0 {
			plan.CompleteR = donors
			plan.CompleteW = recipients
			continue
		}
		plan.CompleteR.And(donors)
		plan.CompleteW.And(recipients)
	}
	if plan.CompleteR.IsEmpty() {
		return nil, fmt.Errorf("%w: group %s: no rows qualify as donors (complete predictors and observed group columns)",
			model.ErrDataCoverage, schema.GroupTuple(cols))
	}
	if plan.CompleteW.IsEmpty() {
		return nil, fmt.Errorf("%w: group %s: no rows qualify as recipients (complete predictors and targeted group columns)",
			model.ErrDataCoverage, schema.GroupTuple(cols))
	}

	plan.ImpIndex = make(map[int]int)
	for i, r := range c.TargetRows(cols[0]) {
		plan.ImpIndex[r] = i
	}

	if matchVar == schema.NoMatchVar {
		plan.Partitions = []Partition{{Donors: plan.CompleteR, Recipients: plan.CompleteW}}
		return plan, nil
	}
	parts, err := partition(c, plan, working)
	if err != nil {
		return nil, err
	}
	plan.Partitions = parts
	return plan, nil
}

// workingFrame returns a copy of the data where every imputation-target
// cell is filled from the reference completed imputation (the first one).
// The copy is used for eligibility determination and working values only.
func workingFrame(c *model.Container) [][]float64 {
	working := make([][]float64, c.Rows())
	for r := range working {
		working[r] = append([]float64(nil), c.Data[r]...)
	}
	for col, imp := range c.Imp {
		for i, r := range c.TargetRows(col) {
			working[r][col] = imp[i][0]
		}
	}
	return working
}

// predictorComplete returns the rows whose full predictor set for col is
// available on the working frame. A predictor that is an indicator of a
// transformed factor expands to the factor's whole indicator group.
func predictorComplete(c *model.Container, working [][]float64, col int) []int {
	var predictors []int
	seen := make(map[int]bool)
	add := func(q int) {
		if !seen[q] {
			seen[q] = true
			predictors = append(predictors, q)
		}
	}
	for q, rel := range c.Predictors[col] {
		if rel == model.PredictorNone {
			continue
		}
		if c.Params != nil {
			if group, ok := c.Params.GroupOf(q); ok {
				for _, member := range group {
					add(member)
				}
				continue
			}
		}
		add(q)
	}

	var rows []int
	for r := range working {
		ok := true
		for _, q := range predictors {
			if math.IsNaN(working[r][q]) {
				ok = false
				break
			}
		}
		if ok {
			rows = append(rows, r)
		}
	}
	return rows
}

// partition splits the eligibility masks by the match variable's value and
// verifies donor coverage: every value occurring among recipients must also
// occur among donors.
func partition(c *model.Container, plan *GroupPlan, working [][]float64) ([]Partition, error) {
	byValue := make(map[float64]*Partition)
	order := func(v float64) *Partition {
		p, ok := byValue[v]
		if !ok {
			p = &Partition{Value: v, Donors: roaring.New(), Recipients: roaring.New()}
			byValue[v] = p
		}
		return p
	}
	plan.CompleteR.Iterate(func(r uint32) bool {
		order(working[r][plan.MatchVar]).Donors.Add(r)
		return true
	})
	plan.CompleteW.Iterate(func(r uint32) bool {
		order(working[r][plan.MatchVar]).Recipients.Add(r)
		return true
	})

	values := make([]float64, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Float64s(values)

	parts := make([]Partition, 0, len(byValue))
	for _, v := range values {
		p := byValue[v]
		if !p.Recipients.IsEmpty() && p.Donors.IsEmpty() {
			return nil, fmt.Errorf("%w: group %s: match variable %d (%s): value %v occurs among recipients but never among donors",
				model.ErrDataCoverage, schema.GroupTuple(plan.Cols), plan.MatchVar, c.Names[plan.MatchVar], v)
		}
		if p.Recipients.IsEmpty() {
			// Donor-only values contribute nothing; drop them.
			continue
		}
		parts = append(parts, *p)
	}
	return parts, nil
}
