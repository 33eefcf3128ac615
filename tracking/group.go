package tracking

// Begin starts a group. Edits made until End share a single undo step.
// Nested calls are ignored.
func (s *Session) Begin() {
	if s.grouping {
		return
	}
	s.grouping = true
	s.groupOpen = false
}

// End finishes the current group. Subsequent edits record as individual
// steps again.
func (s *Session) End() {
	s.grouping = false
	s.groupOpen = false
}

// IsGrouping returns true while a group is open.
func (s *Session) IsGrouping() bool {
	return s.grouping
}

// Scope provides a convenient way to group edits using defer:
//
//	func renameAll(s *tracking.Session) {
//	    defer s.Scope().End()
//	    // ... multiple edits ...
//	}
type Scope struct {
	session *Session
	active  bool
}

// Scope starts a new group scope. Call End, typically with defer, to close
// the group.
func (s *Session) Scope() *Scope {
	s.Begin()
	return &Scope{session: s, active: true}
}

// End ends the scope. Safe to call multiple times; only the first call has
// effect.
func (g *Scope) End() {
	if g.active {
		g.session.End()
		g.active = false
	}
}

// Transaction runs fn with all its edits grouped into one undo step. The
// group is closed whether or not fn fails; edits already applied by a
// failing fn remain on the timeline as one step.
func (s *Session) Transaction(fn func() error) error {
	s.Begin()
	defer s.End()
	return fn()
}
