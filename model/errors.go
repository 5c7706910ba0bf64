package model

import "errors"

// Sentinel error kinds for the matching pipeline. Every failure returned by
// the schema, match, distance and dummy packages wraps exactly one of these,
// so callers can classify with errors.Is regardless of which layer produced
// the error.
var (
	// ErrSchema indicates a malformed argument shape or type, e.g. a group
	// mixing column names with column indices.
	ErrSchema = errors.New("mimatch: schema error")

	// ErrDomain indicates a value outside its allowed domain, e.g. a
	// non-positive weight or an unknown metric name.
	ErrDomain = errors.New("mimatch: domain error")

	// ErrConsistency indicates mismatched lengths or contents across parallel
	// arguments, or a parameter record that does not describe its container.
	ErrConsistency = errors.New("mimatch: consistency error")

	// ErrDataCoverage indicates that no common donor or recipient pool exists
	// for a group, or that a match-variable value occurs among recipients but
	// never among donors.
	ErrDataCoverage = errors.New("mimatch: data coverage error")

	// ErrState indicates a structurally unmatchable configuration, e.g. a
	// singleton pmm group with no match variable.
	ErrState = errors.New("mimatch: state error")
)
