// Package schema normalizes and validates the matching configuration.
//
// All heterogeneous user input (bare group or collection, names or indices,
// scalar weight sentinels) is resolved here, once, into canonical
// integer-indexed structures. Every check is eager and side-effect-free:
// validation runs to completion before any matching work starts, and a
// failure is fatal to the call.
package schema
