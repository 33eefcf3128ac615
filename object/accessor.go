package object

import (
	"errors"
	"fmt"
)

// Common errors for field access.
var (
	ErrNoField     = errors.New("no such field")
	ErrNotSequence = errors.New("field is not a sequence")
	ErrBadRange    = errors.New("splice range out of bounds")
)

// Accessor is the narrow mutation surface a tracked object must expose.
// Implementations may reject values from SetField; the history engine
// routes such failures to its fault sink instead of propagating them.
type Accessor interface {
	// Field returns the current value of the named field.
	Field(name string) (any, error)

	// SetField assigns a new value to the named field.
	SetField(name string, value any) error

	// SpliceField replaces the range [start, start+count) of a
	// sequence-valued field with items and returns the removed run.
	SpliceField(name string, start, count int, items []any) ([]any, error)
}

// Dict is a map-backed dynamic object. Sequence-valued fields are stored
// as []any. The zero value is not usable; create with NewDict.
type Dict struct {
	fields map[string]any

	// Validate, if set, is consulted before every SetField. Returning an
	// error rejects the assignment.
	Validate func(field string, value any) error
}

// NewDict creates a dynamic object with the given initial fields.
func NewDict(fields map[string]any) *Dict {
	d := &Dict{fields: make(map[string]any, len(fields))}
	for k, v := range fields {
		d.fields[k] = v
	}
	return d
}

// Field returns the current value of the named field.
func (d *Dict) Field(name string) (any, error) {
	v, ok := d.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoField, name)
	}
	return v, nil
}

// SetField assigns a new value, subject to the Validate hook.
// Assigning to an unknown name creates the field.
func (d *Dict) SetField(name string, value any) error {
	if d.Validate != nil {
		if err := d.Validate(name, value); err != nil {
			return fmt.Errorf("set %q: %w", name, err)
		}
	}
	d.fields[name] = value
	return nil
}

// SpliceField replaces [start, start+count) of a []any-valued field with
// items and returns the removed elements.
func (d *Dict) SpliceField(name string, start, count int, items []any) ([]any, error) {
	v, ok := d.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoField, name)
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotSequence, name, v)
	}
	if start < 0 || count < 0 || start+count > len(seq) {
		return nil, fmt.Errorf("%w: [%d:%d) of %d", ErrBadRange, start, start+count, len(seq))
	}

	removed := make([]any, count)
	copy(removed, seq[start:start+count])

	next := make([]any, 0, len(seq)-count+len(items))
	next = append(next, seq[:start]...)
	next = append(next, items...)
	next = append(next, seq[start+count:]...)
	d.fields[name] = next

	return removed, nil
}

// Fields returns the field names currently present, in no particular order.
func (d *Dict) Fields() []string {
	names := make([]string, 0, len(d.fields))
	for k := range d.fields {
		names = append(names, k)
	}
	return names
}
