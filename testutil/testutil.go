package testutil

import (
	"fmt"
	"math"

	"github.com/hupe1980/mimatch/model"
)

// Container builds a ready-to-match container around an encoded frame.
// Every column with missing cells becomes an imputation target with method
// pmm, a visiting-sequence slot, and a zeroed |targets| x m imputed-value
// matrix. predictors may be nil for an everything-predicts-everything
// default, params may be nil for containers without dummy coding.
func Container(f *model.Frame, predictors [][]int8, params *model.DummyParams, m int) *model.Container {
	n, p := f.NumRows(), f.NumCols()
	c := &model.Container{
		Names:      f.Names(),
		Data:       make([][]float64, n),
		Where:      make([][]bool, n),
		Imp:        make(map[int][][]float64),
		Predictors: predictors,
		Method:     make([]string, p),
		M:          m,
		Params:     params,
	}
	for r := 0; r < n; r++ {
		c.Data[r] = make([]float64, p)
		c.Where[r] = make([]bool, p)
		for j := 0; j < p; j++ {
			v := f.Columns[j].Values[r]
			c.Data[r][j] = v
			c.Where[r][j] = math.IsNaN(v)
		}
	}
	if c.Predictors == nil {
		c.Predictors = make([][]int8, p)
		for j := range c.Predictors {
			c.Predictors[j] = make([]int8, p)
			for q := range c.Predictors[j] {
				if q != j {
					c.Predictors[j][q] = model.PredictorFixed
				}
			}
		}
	}
	for j := 0; j < p; j++ {
		targets := c.TargetRows(j)
		if len(targets) == 0 {
			continue
		}
		c.Method[j] = model.MethodPMM
		c.Visit = append(c.Visit, j)
		imp := make([][]float64, len(targets))
		for i := range imp {
			imp[i] = make([]float64, m)
		}
		c.Imp[j] = imp
	}
	return c
}

// StaticSource returns a PredictionSource that serves fixed per-row values
// for each column, identical across completed imputations. Unknown columns
// are an error.
func StaticSource(preds map[int][]float64) model.PredictionSource {
	return model.PredictionFunc(func(col, imp int) ([]float64, error) {
		p, ok := preds[col]
		if !ok {
			return nil, fmt.Errorf("no predictions for column %d", col)
		}
		return p, nil
	})
}
