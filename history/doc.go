// Package history provides undo/redo management for attribute-based
// object models.
//
// The engine records reversible edits as Records, groups them into atomic
// transactions, and replays them forward or backward on demand. Key
// concepts:
//
// # Records
//
// A Record is a reversible unit of change with Undo, Redo, and Merge.
// Built-in records include:
//   - FieldChange: set a named field from an old to a new value
//   - ListSplice: replace a contiguous run of a sequence field
//   - TimelineRecord: replay a whole nested timeline as one step
//
// Records refer to their targets through object.Ref handles, never owning
// pointers; a record whose target has been dropped fails gracefully.
//
// # Merging
//
// Adjacent compatible edits are coalesced to keep history compact: typing
// one character at a time into a text field, or dragging a numeric slider,
// collapses into a single record instead of one entry per keystroke or
// tick. Merge returning false is the common case and simply means "append
// as a new entry".
//
// # Timeline
//
// The Timeline owns an ordered list of transactions and a cursor:
//
//	tl := history.NewTimeline()
//	tl.Record(rec, false) // new atomic step
//	tl.Record(rec, true)  // extend the current step
//	tl.Undo()
//	tl.Redo()
//	tl.Revert() // undo everything, then clear
//
// Recording at a non-terminal cursor discards the redo tail. The derived
// Undoable and Redoable signals fire only on actual flips, for driving UI
// enablement.
//
// # Faults
//
// A target rejecting a value, or a dead target, never aborts a replay:
// each failure is routed to the timeline's fault sink and the remaining
// records in the transaction still run.
package history
