package mimatch

import (
	"errors"

	"github.com/hupe1980/mimatch/model"
)

// The public error taxonomy. These are the same sentinel values the
// subpackages wrap, re-exported here so callers only import mimatch.
var (
	// ErrSchema indicates a malformed argument shape or type.
	ErrSchema = model.ErrSchema
	// ErrDomain indicates a value outside its allowed domain.
	ErrDomain = model.ErrDomain
	// ErrConsistency indicates mismatched lengths or contents across
	// parallel arguments, or a parameter record that does not describe its
	// container.
	ErrConsistency = model.ErrConsistency
	// ErrDataCoverage indicates a missing donor or recipient pool, or an
	// uncovered match-variable value.
	ErrDataCoverage = model.ErrDataCoverage
	// ErrState indicates a structurally unmatchable configuration.
	ErrState = model.ErrState
)

// IsValidationError reports whether err comes from configuration
// validation (schema, domain or consistency) rather than from data
// coverage or matchability analysis.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSchema) || errors.Is(err, ErrDomain) || errors.Is(err, ErrConsistency)
}
