package model

import "fmt"

// DummyParams is the parameter record produced by the dummy encoding
// transform. It captures everything the inverse transform and the predictor
// expansion need: which source factors were transformed, which encoded
// columns belong to each, and the original naming and level sets.
//
// The record is a fixed struct checked by direct field access; nothing here
// is reflective or optional.
type DummyParams struct {
	// Source is the pre-transform frame.
	Source *Frame
	// SourceCols and EncodedCols are the column counts before and after the
	// transform.
	SourceCols  int
	EncodedCols int
	// FactorCols are the indices of the transformed factor columns in the
	// source frame, ascending.
	FactorCols []int
	// IndicatorGroups holds, per transformed factor (parallel to
	// FactorCols), the indices of its indicator columns in the encoded
	// frame, ascending.
	IndicatorGroups [][]int
	// SourceNames and EncodedNames are the column names before and after.
	SourceNames  []string
	EncodedNames []string
	// Levels holds, per transformed factor, its level names.
	Levels [][]string
}

// GroupOf returns the full indicator group containing the encoded column
// col, or false when col is not an indicator of a transformed factor.
func (p *DummyParams) GroupOf(col int) ([]int, bool) {
	for _, g := range p.IndicatorGroups {
		for _, c := range g {
			if c == col {
				return g, true
			}
		}
	}
	return nil, false
}

// Validate cross-checks the record against the container it claims to
// describe. Every field is checked independently; the first mismatch wins.
func (p *DummyParams) Validate(c *Container) error {
	if p.Source == nil {
		return fmt.Errorf("%w: dummy params: nil source frame", ErrSchema)
	}
	if p.SourceCols != p.Source.NumCols() {
		return fmt.Errorf("%w: dummy params: source column count %d, frame has %d", ErrConsistency, p.SourceCols, p.Source.NumCols())
	}
	if p.EncodedCols != c.Cols() {
		return fmt.Errorf("%w: dummy params: encoded column count %d, container has %d", ErrConsistency, p.EncodedCols, c.Cols())
	}
	if len(p.SourceNames) != p.SourceCols {
		return fmt.Errorf("%w: dummy params: %d source names for %d columns", ErrConsistency, len(p.SourceNames), p.SourceCols)
	}
	if len(p.EncodedNames) != p.EncodedCols {
		return fmt.Errorf("%w: dummy params: %d encoded names for %d columns", ErrConsistency, len(p.EncodedNames), p.EncodedCols)
	}
	for j, name := range p.EncodedNames {
		if c.Names[j] != name {
			return fmt.Errorf("%w: dummy params: encoded name %q at %d, container has %q", ErrConsistency, name, j, c.Names[j])
		}
	}
	if len(p.IndicatorGroups) != len(p.FactorCols) {
		return fmt.Errorf("%w: dummy params: %d indicator groups for %d factors", ErrConsistency, len(p.IndicatorGroups), len(p.FactorCols))
	}
	if len(p.Levels) != len(p.FactorCols) {
		return fmt.Errorf("%w: dummy params: %d level sets for %d factors", ErrConsistency, len(p.Levels), len(p.FactorCols))
	}
	for k, fc := range p.FactorCols {
		if fc < 0 || fc >= p.SourceCols {
			return fmt.Errorf("%w: dummy params: factor column %d out of range [0,%d)", ErrConsistency, fc, p.SourceCols)
		}
		if len(p.IndicatorGroups[k]) != len(p.Levels[k]) {
			return fmt.Errorf("%w: dummy params: factor %q has %d indicators for %d levels",
				ErrConsistency, p.SourceNames[fc], len(p.IndicatorGroups[k]), len(p.Levels[k]))
		}
		for _, col := range p.IndicatorGroups[k] {
			if col < 0 || col >= p.EncodedCols {
				return fmt.Errorf("%w: dummy params: indicator column %d out of range [0,%d)", ErrConsistency, col, p.EncodedCols)
			}
		}
	}
	return nil
}
