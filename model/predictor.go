package model

// PredictionSource supplies model-predicted values for imputed columns.
// The upstream chained-equations engine implements it; the distance engine
// consumes the values verbatim.
type PredictionSource interface {
	// Predictions returns the predicted (fitted) value of column col for
	// every row under completed imputation imp. The slice has one entry per
	// container row; entries for rows the model never saw may be NaN, but
	// entries for eligible donor and recipient rows must be finite.
	Predictions(col, imp int) ([]float64, error)
}

// PredictionFunc adapts a function to the PredictionSource interface.
type PredictionFunc func(col, imp int) ([]float64, error)

// Predictions calls f.
func (f PredictionFunc) Predictions(col, imp int) ([]float64, error) {
	return f(col, imp)
}
