package model

import (
	"fmt"
	"math"
)

// ColumnKind classifies a frame column.
type ColumnKind int

const (
	// Numeric is a plain numeric column.
	Numeric ColumnKind = iota
	// Binary is a 0/1 indicator column, typically produced by the dummy
	// encoding transform.
	Binary
	// Factor is a categorical column; values are 1-based level codes and
	// Levels holds the level names.
	Factor
)

func (k ColumnKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Binary:
		return "binary"
	case Factor:
		return "factor"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Column is a single typed column. Missing cells are NaN. Factor columns
// store 1-based codes into Levels.
type Column struct {
	Name   string
	Kind   ColumnKind
	Values []float64
	Levels []string
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	out.Values = append([]float64(nil), c.Values...)
	out.Levels = append([]string(nil), c.Levels...)
	return out
}

// Frame is an ordered collection of equal-length columns.
type Frame struct {
	Columns []Column
}

// NumRows returns the row count, zero for an empty frame.
func (f *Frame) NumRows() int {
	if len(f.Columns) == 0 {
		return 0
	}
	return len(f.Columns[0].Values)
}

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.Columns) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the index of the named column.
func (f *Frame) ColumnIndex(name string) (int, bool) {
	for i, c := range f.Columns {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Check verifies that all columns share one length and that factor codes are
// valid for their level sets.
func (f *Frame) Check() error {
	n := f.NumRows()
	for _, c := range f.Columns {
		if len(c.Values) != n {
			return fmt.Errorf("%w: column %q has %d rows, want %d", ErrConsistency, c.Name, len(c.Values), n)
		}
		if c.Kind != Factor {
			continue
		}
		for r, v := range c.Values {
			if math.IsNaN(v) {
				continue
			}
			code := int(v)
			if float64(code) != v || code < 1 || code > len(c.Levels) {
				return fmt.Errorf("%w: column %q row %d: invalid level code %v", ErrConsistency, c.Name, r, v)
			}
		}
	}
	return nil
}
