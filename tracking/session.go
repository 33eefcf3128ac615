package tracking

import (
	"fmt"

	"github.com/quillpad/rewind/history"
	"github.com/quillpad/rewind/object"
)

// Session applies edits to tracked objects and records them on a timeline.
// Like the timeline it owns, a Session is single-writer: callers must
// serialize access.
type Session struct {
	timeline *history.Timeline
	registry *object.Registry

	// Grouping state
	grouping  bool
	groupOpen bool // first record of the group has landed
}

// NewSession creates a session recording onto timeline for objects in
// registry.
func NewSession(timeline *history.Timeline, registry *object.Registry) *Session {
	return &Session{
		timeline: timeline,
		registry: registry,
	}
}

// Timeline returns the session's timeline.
func (s *Session) Timeline() *history.Timeline {
	return s.timeline
}

// Registry returns the session's object registry.
func (s *Session) Registry() *object.Registry {
	return s.registry
}

// Track registers acc and returns a handle for use in edits.
func (s *Session) Track(acc object.Accessor) object.Ref {
	return s.registry.Add(acc)
}

// SetField assigns value to ref.field and records the change. Unlike
// replay faults, a failure on the forward edit path is returned to the
// caller; nothing is recorded on failure.
func (s *Session) SetField(ref object.Ref, field string, value any) error {
	acc, ok := ref.Resolve()
	if !ok {
		return fmt.Errorf("%w: %s", history.ErrTargetGone, ref)
	}
	old, err := acc.Field(field)
	if err != nil {
		return err
	}
	if err := acc.SetField(field, value); err != nil {
		return err
	}
	s.record(history.NewFieldChange(ref, field, old, value))
	return nil
}

// Splice replaces [start, start+count) of the sequence field with items
// and records the change.
func (s *Session) Splice(ref object.Ref, field string, start, count int, items []any) error {
	acc, ok := ref.Resolve()
	if !ok {
		return fmt.Errorf("%w: %s", history.ErrTargetGone, ref)
	}
	removed, err := acc.SpliceField(field, start, count, items)
	if err != nil {
		return err
	}
	s.record(history.NewListSplice(ref, field, start, removed, items))
	return nil
}

// Record adds an externally constructed record, honoring any open group.
func (s *Session) Record(rec history.Record) {
	s.record(rec)
}

func (s *Session) record(rec history.Record) {
	extend := false
	if s.grouping {
		extend = s.groupOpen
		s.groupOpen = true
	}
	s.timeline.Record(rec, extend)
}

// Undo reverses the last recorded step. No-op when nothing is undoable.
func (s *Session) Undo() bool {
	return s.timeline.Undo()
}

// Redo re-applies the last undone step. No-op when nothing is redoable.
func (s *Session) Redo() bool {
	return s.timeline.Redo()
}

// Revert undoes every recorded step and clears the timeline.
func (s *Session) Revert() {
	s.timeline.Revert()
}
