// Package match implements the matching pipeline behind mimatch.Match:
// completeness and partition analysis, distance-ranked donor selection, and
// assembly of the chosen donor patterns into the container's imputed-value
// matrices.
//
// Analysis runs once per group and its plan is reused across all completed
// imputations. The per-imputation matching passes are independent and run
// on a bounded errgroup; each pass derives its own pseudorandom stream from
// the configured seed, so results are reproducible regardless of
// parallelism.
package match
