// Package dummy implements the one-hot encoding transform for multi-level
// factor columns, its inverse, and the candidate group discovery used when
// no explicit column groups are configured.
//
// Encode replaces each factor with one indicator column per level and
// records everything needed to undo the transform in a DummyParams record.
// Decode reconstructs the factors from matched one-hot imputations. Both
// directions propagate missingness blockwise: a missing factor value means
// every one of its indicators is missing.
package dummy
