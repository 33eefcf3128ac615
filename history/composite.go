package history

import "fmt"

// TimelineRecord wraps a whole nested timeline as a single record of an
// outer timeline, so "undo everything done in an embedded sub-editor"
// becomes one outer step.
//
// Replaying is read-through: the nested timeline's own cursor is left
// untouched, keeping its state independently queryable and resumable.
type TimelineRecord struct {
	nested *Timeline
}

// NewTimelineRecord wraps nested.
func NewTimelineRecord(nested *Timeline) *TimelineRecord {
	return &TimelineRecord{nested: nested}
}

// Nested returns the wrapped timeline.
func (r *TimelineRecord) Nested() *Timeline {
	return r.nested
}

// Undo reverses the nested timeline's applied transactions, newest first,
// records within each transaction in reverse order.
func (r *TimelineRecord) Undo() error {
	t := r.nested
	for i := t.cursor - 1; i >= 0; i-- {
		t.replayUndo(t.transactions[i])
	}
	return nil
}

// Redo re-applies the nested timeline's applied transactions in forward
// order.
func (r *TimelineRecord) Redo() error {
	t := r.nested
	for i := 0; i < t.cursor; i++ {
		for _, rec := range t.transactions[i] {
			t.fault("redo", rec, rec.Redo())
		}
	}
	return nil
}

// Merge never merges nested timelines.
func (r *TimelineRecord) Merge(next Record) bool {
	return false
}

// String returns a description of the nested history.
func (r *TimelineRecord) String() string {
	return fmt.Sprintf("nested history (%d of %d steps applied)",
		r.nested.cursor, len(r.nested.transactions))
}
