package model

import "fmt"

// ColumnRef is a tagged reference to a column, either by name or by index.
// References are resolved once, at the validation boundary; downstream
// components only ever see canonical integer indices.
type ColumnRef struct {
	name    string
	index   int
	isIndex bool
}

// ByName references a column by its name.
func ByName(name string) ColumnRef {
	return ColumnRef{name: name}
}

// ByIndex references a column by its zero-based index.
func ByIndex(i int) ColumnRef {
	return ColumnRef{index: i, isIndex: true}
}

// IsIndex reports whether the reference carries an index rather than a name.
func (r ColumnRef) IsIndex() bool { return r.isIndex }

// IsZero reports whether the reference is the empty sentinel ("no column").
func (r ColumnRef) IsZero() bool { return !r.isIndex && r.name == "" }

// Resolve returns the zero-based index of the referenced column within names.
func (r ColumnRef) Resolve(names []string) (int, error) {
	if r.isIndex {
		if r.index < 0 || r.index >= len(names) {
			return 0, fmt.Errorf("%w: column index %d out of range [0,%d)", ErrSchema, r.index, len(names))
		}
		return r.index, nil
	}
	for i, n := range names {
		if n == r.name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown column name %q", ErrSchema, r.name)
}

// String returns the reference in human-readable form.
func (r ColumnRef) String() string {
	if r.isIndex {
		return fmt.Sprintf("#%d", r.index)
	}
	return r.name
}
