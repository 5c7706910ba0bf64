// Package testutil provides helpers for constructing imputation containers
// and prediction sources in tests.
package testutil
