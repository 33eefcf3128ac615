package object

import (
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// Handle identifies a registered object.
type Handle uuid.UUID

// String returns the short form of the handle.
func (h Handle) String() string {
	return uuid.UUID(h).String()[:8]
}

// Registry tracks the live objects a history session may edit. Objects are
// registered once and dropped when destroyed; history records refer to them
// only through Ref handles, so dropping an object never leaves dangling
// pointers in the history, just records whose target no longer resolves.
//
// The registry itself is safe for concurrent use. The single-writer rule of
// the history engine applies to timelines, not to object lifetime.
type Registry struct {
	objects *xsync.MapOf[Handle, Accessor]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		objects: xsync.NewMapOf[Handle, Accessor](),
	}
}

// Add registers acc and returns a Ref to it.
func (r *Registry) Add(acc Accessor) Ref {
	h := Handle(uuid.New())
	r.objects.Store(h, acc)
	return Ref{registry: r, handle: h}
}

// Drop removes the object for h. Refs to it remain valid values but no
// longer resolve.
func (r *Registry) Drop(h Handle) {
	r.objects.Delete(h)
}

// Resolve returns the object for h, or false if it was never registered or
// has been dropped.
func (r *Registry) Resolve(h Handle) (Accessor, bool) {
	return r.objects.Load(h)
}

// Len returns the number of live objects.
func (r *Registry) Len() int {
	return r.objects.Size()
}

// Ref is a non-owning handle to a registered object. The zero Ref resolves
// to nothing. Refs are comparable; two Refs are equal iff they name the
// same registration in the same registry.
type Ref struct {
	registry *Registry
	handle   Handle
}

// Resolve looks up the live object, returning false if it is gone.
func (ref Ref) Resolve() (Accessor, bool) {
	if ref.registry == nil {
		return nil, false
	}
	return ref.registry.Resolve(ref.handle)
}

// Handle returns the identity of the referenced registration.
func (ref Ref) Handle() Handle {
	return ref.handle
}

// Drop removes the referenced object from its registry.
func (ref Ref) Drop() {
	if ref.registry != nil {
		ref.registry.Drop(ref.handle)
	}
}

// String returns the short handle form.
func (ref Ref) String() string {
	if ref.registry == nil {
		return "object(nil)"
	}
	return "object(" + ref.handle.String() + ")"
}
