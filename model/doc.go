// Package model defines core types shared across mimatch.
//
// # Data Types
//
//   - Container: the multiply-imputed dataset (data, missingness targets,
//     per-column imputed-value matrices, predictor relevance, methods)
//   - Frame / Column: a typed column-oriented data frame with factor levels
//   - ColumnRef: a tagged name-or-index column reference
//   - DummyParams: the parameter record produced by the dummy encoding
//     transform, consumed by the inverse transform and predictor expansion
//
// # Collaborators
//
//   - PredictionSource: supplies model-predicted values per column and per
//     completed imputation; implemented by the upstream imputation engine
//
// # Errors
//
// The package also declares the sentinel error kinds used throughout the
// module (ErrSchema, ErrDomain, ErrConsistency, ErrDataCoverage, ErrState).
// All validation and analysis failures wrap one of these sentinels, so
// callers match them with errors.Is.
package model
