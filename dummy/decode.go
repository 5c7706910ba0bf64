package dummy

import (
	"fmt"
	"math"

	"github.com/hupe1980/mimatch/model"
)

// Decoded is the result of the inverse transform: the reconstructed frame
// plus the imputation bookkeeping in source-column space. It is not an
// iteration-capable imputation result; chain state (methods, predictor
// matrix, visiting sequence) is deliberately absent.
type Decoded struct {
	// Data is the reconstructed frame with factor columns restored.
	Data *model.Frame
	// NMis counts missing values per source column.
	NMis []int
	// Where marks imputation targets in source-column space.
	Where [][]bool
	// Imp maps a source column index to its |missing rows| x M matrix of
	// imputed values; factor imputations are 1-based level codes.
	Imp map[int][][]float64
}

// Decode reconstructs the original factor columns from the one-hot groups
// of an encoded, matched container. An imputed indicator pattern that is
// not exactly one-hot within its group is a consistency failure.
func Decode(c *model.Container, params *model.DummyParams) (*Decoded, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: nil dummy params", model.ErrSchema)
	}
	if err := params.Validate(c); err != nil {
		return nil, err
	}

	n := c.Rows()
	out := &Decoded{
		Data:  &model.Frame{},
		NMis:  make([]int, params.SourceCols),
		Where: make([][]bool, n),
		Imp:   make(map[int][][]float64),
	}
	for r := range out.Where {
		out.Where[r] = make([]bool, params.SourceCols)
	}

	factorOrdinal := make(map[int]int, len(params.FactorCols))
	for k, fc := range params.FactorCols {
		factorOrdinal[fc] = k
	}

	encoded := 0
	for src := 0; src < params.SourceCols; src++ {
		k, isFactor := factorOrdinal[src]
		if !isFactor {
			col := model.Column{
				Name:   params.SourceNames[src],
				Kind:   params.Source.Columns[src].Kind,
				Levels: append([]string(nil), params.Source.Columns[src].Levels...),
				Values: make([]float64, n),
			}
			for r := 0; r < n; r++ {
				col.Values[r] = c.Data[r][encoded]
				if math.IsNaN(col.Values[r]) {
					out.NMis[src]++
				}
				out.Where[r][src] = c.Where[r][encoded]
			}
			if imp, ok := c.Imp[encoded]; ok {
				out.Imp[src] = cloneMatrix(imp)
			}
			out.Data.Columns = append(out.Data.Columns, col)
			encoded++
			continue
		}

		group := params.IndicatorGroups[k]
		col := model.Column{
			Name:   params.SourceNames[src],
			Kind:   model.Factor,
			Levels: append([]string(nil), params.Levels[k]...),
			Values: make([]float64, n),
		}
		var targets []int
		for r := 0; r < n; r++ {
			out.Where[r][src] = c.Where[r][group[0]]
			if out.Where[r][src] {
				targets = append(targets, r)
			}
			code, missing, err := decodeRow(c, group, r)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", params.SourceNames[src], err)
			}
			if missing {
				col.Values[r] = math.NaN()
				out.NMis[src]++
				continue
			}
			col.Values[r] = float64(code)
		}
		if len(targets) > 0 {
			imp, err := decodeImp(c, group, targets, params.SourceNames[src])
			if err != nil {
				return nil, err
			}
			out.Imp[src] = imp
		}
		out.Data.Columns = append(out.Data.Columns, col)
		encoded += len(group)
	}
	return out, nil
}

// decodeRow maps one row of an indicator group back to a 1-based level
// code. Blockwise missingness means a NaN in any indicator marks the whole
// factor value missing.
func decodeRow(c *model.Container, group []int, r int) (code int, missing bool, err error) {
	hot := 0
	for lvl, col := range group {
		v := c.Data[r][col]
		if math.IsNaN(v) {
			return 0, true, nil
		}
		if v == 1 {
			hot++
			code = lvl + 1
		} else if v != 0 {
			return 0, false, fmt.Errorf("%w: row %d: indicator value %v, want 0 or 1", model.ErrConsistency, r, v)
		}
	}
	if hot != 1 {
		return 0, false, fmt.Errorf("%w: row %d: %d active indicators, want exactly 1", model.ErrConsistency, r, hot)
	}
	return code, false, nil
}

// decodeImp reconstructs the factor's imputed level codes from the imputed
// indicator matrices of its group.
func decodeImp(c *model.Container, group []int, targets []int, name string) ([][]float64, error) {
	imp := make([][]float64, len(targets))
	for t := range targets {
		imp[t] = make([]float64, c.M)
		for m := 0; m < c.M; m++ {
			hot, code := 0, 0
			for lvl, col := range group {
				rows, ok := c.Imp[col]
				if !ok {
					return nil, fmt.Errorf("%w: column %s: no imputations for indicator %d", model.ErrConsistency, name, col)
				}
				if rows[t][m] == 1 {
					hot++
					code = lvl + 1
				}
			}
			if hot != 1 {
				return nil, fmt.Errorf("%w: column %s: imputation %d row %d: %d active indicators, want exactly 1",
					model.ErrConsistency, name, m, targets[t], hot)
			}
			imp[t][m] = float64(code)
		}
	}
	return imp, nil
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}
	return out
}
