package model

import (
	"fmt"
	"math"
)

// Imputation methods recognized by the matcher. Only these may appear on
// columns that participate in a matched group.
const (
	// MethodPMM is univariate predictive mean matching.
	MethodPMM = "pmm"
	// MethodNorm is Bayesian linear regression imputation.
	MethodNorm = "norm"
	// MethodLogreg is logistic regression imputation.
	MethodLogreg = "logreg"
)

// MatchingCompatible reports whether columns imputed with method may be
// members of a matched column group.
func MatchingCompatible(method string) bool {
	switch method {
	case MethodPMM, MethodNorm, MethodLogreg:
		return true
	default:
		return false
	}
}

// Predictor relevance codes used in Container.Predictors.
const (
	// PredictorNone marks a column as unused for predicting the target.
	PredictorNone int8 = 0
	// PredictorFixed marks a plain fixed-effect predictor.
	PredictorFixed int8 = 1
	// PredictorClass marks a class/cluster predictor.
	PredictorClass int8 = 2
)

// Container holds one multiply-imputed dataset. It mirrors the result
// object of a chained-equations imputation engine: the caller owns it, the
// matcher reads it and replaces entries of Imp for matched columns.
//
// Conventions:
//   - Data is n rows by p columns; missing cells are NaN.
//   - Where marks cells that are imputation targets.
//   - Imp maps a column index to a |missing rows| x M matrix holding the
//     imputed values of that column, one column per completed imputation.
//     Rows follow the ascending order of the column's target rows.
//   - Predictors is the p x p relevance matrix with values {0,1,2}.
//   - Visit is the ordered visiting sequence of imputed column indices.
type Container struct {
	Data       [][]float64
	Names      []string
	Where      [][]bool
	Imp        map[int][][]float64
	Predictors [][]int8
	Method     []string
	Visit      []int
	M          int

	// Params is the dummy-coding parameter record when the container was
	// produced by dummy.Encode; nil otherwise.
	Params *DummyParams
}

// Rows returns the number of rows.
func (c *Container) Rows() int { return len(c.Data) }

// Cols returns the number of columns.
func (c *Container) Cols() int { return len(c.Names) }

// ColumnIndex returns the index of the named column.
func (c *Container) ColumnIndex(name string) (int, bool) {
	for i, n := range c.Names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// TargetRows returns, in ascending order, the rows flagged as imputation
// targets for col. The k-th entry corresponds to row k of Imp[col].
func (c *Container) TargetRows(col int) []int {
	var rows []int
	for r := range c.Where {
		if c.Where[r][col] {
			rows = append(rows, r)
		}
	}
	return rows
}

// InVisit reports whether col appears in the visiting sequence.
func (c *Container) InVisit(col int) bool {
	for _, v := range c.Visit {
		if v == col {
			return true
		}
	}
	return false
}

// Observed reports whether row r of col holds an observed (non-target,
// non-missing) value.
func (c *Container) Observed(r, col int) bool {
	return !c.Where[r][col] && !math.IsNaN(c.Data[r][col])
}

// Check verifies the container's internal shape consistency. It does not
// validate matching configuration; that is the schema package's job.
func (c *Container) Check() error {
	n, p := c.Rows(), c.Cols()
	if len(c.Where) != n {
		return fmt.Errorf("%w: where has %d rows, want %d", ErrConsistency, len(c.Where), n)
	}
	for r := range c.Data {
		if len(c.Data[r]) != p {
			return fmt.Errorf("%w: data row %d has %d columns, want %d", ErrConsistency, r, len(c.Data[r]), p)
		}
		if len(c.Where[r]) != p {
			return fmt.Errorf("%w: where row %d has %d columns, want %d", ErrConsistency, r, len(c.Where[r]), p)
		}
	}
	if len(c.Method) != p {
		return fmt.Errorf("%w: method has %d entries, want %d", ErrConsistency, len(c.Method), p)
	}
	if len(c.Predictors) != p {
		return fmt.Errorf("%w: predictor matrix has %d rows, want %d", ErrConsistency, len(c.Predictors), p)
	}
	for j := range c.Predictors {
		if len(c.Predictors[j]) != p {
			return fmt.Errorf("%w: predictor matrix row %d has %d columns, want %d", ErrConsistency, j, len(c.Predictors[j]), p)
		}
	}
	if c.M < 1 {
		return fmt.Errorf("%w: container has %d completed imputations", ErrConsistency, c.M)
	}
	for col, imp := range c.Imp {
		want := len(c.TargetRows(col))
		if len(imp) != want {
			return fmt.Errorf("%w: imp matrix for column %d has %d rows, want %d", ErrConsistency, col, len(imp), want)
		}
		for k := range imp {
			if len(imp[k]) != c.M {
				return fmt.Errorf("%w: imp matrix for column %d row %d has %d entries, want %d", ErrConsistency, col, k, len(imp[k]), c.M)
			}
		}
	}
	for _, v := range c.Visit {
		if v < 0 || v >= p {
			return fmt.Errorf("%w: visiting sequence entry %d out of range [0,%d)", ErrConsistency, v, p)
		}
	}
	return nil
}
