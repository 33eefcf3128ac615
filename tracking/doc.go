// Package tracking connects mutable objects to a history timeline.
//
// The history engine does not detect mutations itself; something has to
// observe an edit, build the matching record, and hand it to the timeline.
// A Session is that something: edits flow through its SetField and Splice
// methods, which apply the mutation via the object's Accessor, construct
// the corresponding record, and record it.
//
//	reg := object.NewRegistry()
//	sess := tracking.NewSession(history.NewTimeline(), reg)
//	ref := sess.Track(object.NewDict(map[string]any{"x": 0}))
//
//	sess.SetField(ref, "x", 1)
//	sess.Undo() // x back to 0
//
// # Grouping
//
// Multiple related edits can share one undo step:
//
//	defer sess.Scope().End()
//	sess.SetField(ref, "x", 1)
//	sess.SetField(ref, "y", 2)
//
// Now both fields revert with a single undo.
package tracking
