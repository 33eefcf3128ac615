package history

import (
	"fmt"
	"reflect"

	"github.com/quillpad/rewind/object"
)

// Record represents a reversible unit of change.
//
// Undo followed by Redo restores the post-change state exactly; Redo
// followed by Undo restores the pre-change state exactly. Errors returned
// from Undo/Redo are routed to the owning timeline's fault sink, never
// propagated out of a replay.
type Record interface {
	// Undo reverses the change on the target object.
	Undo() error

	// Redo re-applies the change on the target object.
	Redo() error

	// Merge absorbs next into this record if the two represent adjacent
	// compatible edits. Returns true on success; false means "append next
	// as a separate entry" and must leave both records unchanged.
	Merge(next Record) bool

	// String returns a human-readable description of the change.
	String() string
}

// FieldChange records setting a named field of an object from an old to a
// new value. Sequence-valued old/new values are snapshotted by value, not
// by reference, so later mutation of the live field cannot alias into the
// record.
type FieldChange struct {
	target   object.Ref
	field    string
	oldValue any
	newValue any
}

// NewFieldChange creates a record for target.field changing from oldValue
// to newValue.
func NewFieldChange(target object.Ref, field string, oldValue, newValue any) *FieldChange {
	return &FieldChange{
		target:   target,
		field:    field,
		oldValue: snapshot(oldValue),
		newValue: snapshot(newValue),
	}
}

// OldValue returns the value the field held before the change.
func (c *FieldChange) OldValue() any { return c.oldValue }

// NewValue returns the value the field holds after the change.
func (c *FieldChange) NewValue() any { return c.newValue }

// Undo restores the old value.
func (c *FieldChange) Undo() error {
	return c.set(c.oldValue)
}

// Redo re-applies the new value.
func (c *FieldChange) Redo() error {
	return c.set(c.newValue)
}

func (c *FieldChange) set(value any) error {
	acc, ok := c.target.Resolve()
	if !ok {
		return fmt.Errorf("%w: %s", ErrTargetGone, c.target)
	}
	if err := acc.SetField(c.field, value); err != nil {
		return err
	}
	return nil
}

// Merge coalesces next into this record when both target the same field of
// the same object and the values are closely related:
//
//   - strings differing by at most one single-character insertion,
//     deletion, or substitution (successive keystrokes in a text editor);
//   - sequences of simple scalars where at most one element differs from
//     this record's original old value;
//   - numeric scalars of the same type, which always merge.
//
// On success this record's new value becomes next's new value.
func (c *FieldChange) Merge(next Record) bool {
	other, ok := next.(*FieldChange)
	if !ok || other.target != c.target || other.field != c.field {
		return false
	}

	v1 := c.newValue
	v2 := other.newValue

	switch {
	case isString(v1) && isString(v2):
		if oneEditApart(v1.(string), v2.(string)) {
			c.newValue = v2
			return true
		}

	case isSequence(v1) && isSequence(v2):
		// Sequences merge only while at most one element has diverged
		// from the original old value, so a second divergent element
		// forces a new history entry.
		if oneElementApart(c.oldValue, v2) {
			c.newValue = snapshot(v2)
			return true
		}

	case isNumeric(v1) && reflect.TypeOf(v1) == reflect.TypeOf(v2):
		c.newValue = v2
		return true
	}
	return false
}

// String returns a "pretty print" form of the record.
func (c *FieldChange) String() string {
	return fmt.Sprintf("undo( %s.%s = %v ) redo( %s.%s = %v )",
		c.target, c.field, c.oldValue, c.target, c.field, c.newValue)
}

// snapshot copies sequence values so records own their old/new state.
func snapshot(v any) any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out.Interface()
}
