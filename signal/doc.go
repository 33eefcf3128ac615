// Package signal provides edge-triggered state signals for driving UI
// enablement and other observers.
//
// A State holds a current value and notifies listeners only when the value
// actually changes. Setting a State to its current value is a no-op, which
// makes it safe to recompute and republish derived state after every
// mutation without flooding subscribers:
//
//	undoable := signal.NewState(false)
//	sub := undoable.Subscribe(func(v bool) {
//	    menu.SetEnabled("Undo", v)
//	})
//	defer sub.Cancel()
//
//	undoable.Set(true)  // listener fires
//	undoable.Set(true)  // no-op, listener not called
//
// States are not safe for concurrent use; the owner of the state is
// expected to serialize mutations, matching the single-writer model of the
// history engine that publishes through them.
package signal
