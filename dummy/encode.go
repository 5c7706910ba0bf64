package dummy

import (
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/mimatch/model"
)

// Encode replaces the referenced multi-level factor columns of f with
// indicator columns, one per level, in place of the original column. It
// returns the augmented frame, a companion predictor-relevance matrix, and
// the parameter record required by Decode.
//
// Indicator columns are named "<factor>.<level>". Indicators belonging to
// one factor never predict each other in the returned relevance matrix;
// they are structurally collinear.
func Encode(f *model.Frame, factors []model.ColumnRef) (*model.Frame, [][]int8, *model.DummyParams, error) {
	if f == nil {
		return nil, nil, nil, fmt.Errorf("%w: nil frame", model.ErrSchema)
	}
	if err := f.Check(); err != nil {
		return nil, nil, nil, err
	}
	names := f.Names()
	isFactor := make(map[int]bool, len(factors))
	var factorCols []int
	for _, ref := range factors {
		col, err := ref.Resolve(names)
		if err != nil {
			return nil, nil, nil, err
		}
		if f.Columns[col].Kind != model.Factor {
			return nil, nil, nil, fmt.Errorf("%w: column %d (%s) is %s, not a factor",
				model.ErrSchema, col, names[col], f.Columns[col].Kind)
		}
		if len(f.Columns[col].Levels) < 2 {
			return nil, nil, nil, fmt.Errorf("%w: column %d (%s) has %d levels, need at least 2",
				model.ErrDomain, col, names[col], len(f.Columns[col].Levels))
		}
		if isFactor[col] {
			return nil, nil, nil, fmt.Errorf("%w: column %d (%s) referenced twice", model.ErrSchema, col, names[col])
		}
		isFactor[col] = true
		factorCols = append(factorCols, col)
	}
	sort.Ints(factorCols)

	params := &model.DummyParams{
		Source:      f,
		SourceCols:  f.NumCols(),
		SourceNames: names,
		FactorCols:  factorCols,
	}
	n := f.NumRows()
	out := &model.Frame{}
	for src, col := range f.Columns {
		if !isFactor[src] {
			out.Columns = append(out.Columns, col.Clone())
			continue
		}
		group := make([]int, 0, len(col.Levels))
		for lvl, levelName := range col.Levels {
			ind := model.Column{
				Name:   col.Name + "." + levelName,
				Kind:   model.Binary,
				Values: make([]float64, n),
			}
			for r, v := range col.Values {
				switch {
				case math.IsNaN(v):
					ind.Values[r] = math.NaN()
				case int(v) == lvl+1:
					ind.Values[r] = 1
				default:
					ind.Values[r] = 0
				}
			}
			group = append(group, len(out.Columns))
			out.Columns = append(out.Columns, ind)
		}
		params.IndicatorGroups = append(params.IndicatorGroups, group)
		params.Levels = append(params.Levels, append([]string(nil), col.Levels...))
	}
	params.EncodedCols = out.NumCols()
	params.EncodedNames = out.Names()

	predictors := relevanceMatrix(params)
	return out, predictors, params, nil
}

// relevanceMatrix builds the default predictor matrix for an encoded frame:
// every column predicts every other, except itself and its indicator
// siblings.
func relevanceMatrix(p *model.DummyParams) [][]int8 {
	pc := p.EncodedCols
	m := make([][]int8, pc)
	for j := range m {
		m[j] = make([]int8, pc)
		for q := range m[j] {
			if q != j {
				m[j][q] = model.PredictorFixed
			}
		}
	}
	for _, group := range p.IndicatorGroups {
		for _, j := range group {
			for _, q := range group {
				m[j][q] = model.PredictorNone
			}
		}
	}
	return m
}
