// Package object defines the contract between the history engine and the
// mutable objects it edits.
//
// The engine never touches concrete domain types. It reads and writes named
// fields through the Accessor interface:
//
//	type Accessor interface {
//	    Field(name string) (any, error)
//	    SetField(name string, value any) error
//	    SpliceField(name string, start, count int, items []any) ([]any, error)
//	}
//
// Two implementations are provided: Dict, a map-backed dynamic object, and
// Reflected, which adapts any pointer-to-struct via reflection.
//
// # Registry and Refs
//
// History records must not keep edited objects alive, so they never hold an
// Accessor directly. Live objects are registered in a Registry, which hands
// out Ref handles (relation + lookup, never ownership). Resolving a Ref
// after the object was dropped fails cleanly, letting the history engine
// treat the record as targeting a dead object.
package object
