// Package mimatch post-processes multiple imputations of one-hot-encoded
// categorical variables.
//
// Chained-equations imputation treats each dummy column independently, so a
// factor's indicator group frequently comes back internally inconsistent
// (two "1"s, or none at all). Mimatch re-matches each incomplete group
// jointly against fully observed donor rows using multivariate
// nearest-neighbor predictive mean matching, producing a single consistent
// one-hot pattern per completed imputation.
//
// # Quick Start
//
//	encoded, predictors, params, _ := dummy.Encode(frame, []model.ColumnRef{model.ByName("color")})
//	// ... run the chained-equations engine on the encoded frame ...
//
//	err := mimatch.Match(ctx, container, source,
//	    mimatch.WithGroups(mimatch.Names("color.red", "color.green", "color.blue")),
//	    mimatch.WithMetric(distance.MetricMahalanobis),
//	    mimatch.WithDonors(5),
//	    mimatch.WithSeed(42),
//	)
//
//	decoded, _ := dummy.Decode(container, params)
//
// The caller owns the container; Match mutates only the imputed-value
// matrices of the matched columns. All configuration is validated eagerly
// and a failure is returned before any mutation.
//
// # Determinism
//
// The random donor-selection policies never touch a global generator. Every
// (group, imputation) pass derives its own stream from the seed configured
// with WithSeed, so repeated and parallel runs yield identical results.
//
// # Errors
//
// Failures wrap one of five sentinel kinds (ErrSchema, ErrDomain,
// ErrConsistency, ErrDataCoverage, ErrState); match them with errors.Is.
// Messages name the offending group by its column tuple.
package mimatch
