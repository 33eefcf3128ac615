package history

import (
	"fmt"

	"github.com/quillpad/rewind/object"
)

// ListSplice records replacing a contiguous run of a sequence field with
// another run (insert, delete, or replace).
type ListSplice struct {
	target  object.Ref
	field   string
	index   int
	removed []any
	added   []any
}

// NewListSplice creates a record for replacing removed with added at index
// within target.field. The runs are snapshotted.
func NewListSplice(target object.Ref, field string, index int, removed, added []any) *ListSplice {
	return &ListSplice{
		target:  target,
		field:   field,
		index:   index,
		removed: append([]any(nil), removed...),
		added:   append([]any(nil), added...),
	}
}

// Added returns the run the splice inserts on redo.
func (s *ListSplice) Added() []any { return s.added }

// Removed returns the run the splice restores on undo.
func (s *ListSplice) Removed() []any { return s.removed }

// Undo splices the removed run back over the added one.
func (s *ListSplice) Undo() error {
	return s.splice(len(s.added), s.removed)
}

// Redo splices the added run over the removed one.
func (s *ListSplice) Redo() error {
	return s.splice(len(s.removed), s.added)
}

func (s *ListSplice) splice(count int, items []any) error {
	acc, ok := s.target.Resolve()
	if !ok {
		return fmt.Errorf("%w: %s", ErrTargetGone, s.target)
	}
	if _, err := acc.SpliceField(s.field, s.index, count, items); err != nil {
		return err
	}
	return nil
}

// Merge discards records identical to this one. Multiple listeners
// monitoring the same sequence field produce duplicate records for one
// logical edit; deduplicating here keeps a single history entry. Neither
// record is mutated.
func (s *ListSplice) Merge(next Record) bool {
	other, ok := next.(*ListSplice)
	if !ok || other.target != s.target || other.field != s.field || other.index != s.index {
		return false
	}
	return sameElements(s.added, other.added) && sameElements(s.removed, other.removed)
}

// String returns a "pretty print" form of the record.
func (s *ListSplice) String() string {
	return fmt.Sprintf("undo( %s.%s[%d:%d] = %v )",
		s.target, s.field, s.index, s.index+len(s.removed), s.added)
}
