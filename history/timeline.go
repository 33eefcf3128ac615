package history

import (
	"log/slog"

	"github.com/quillpad/rewind/signal"
)

// Transaction is an ordered group of records applied and undone atomically
// as one user-visible step. Committed transactions are never empty.
type Transaction []Record

// Timeline manages a linear list of transactions and a cursor separating
// the applied past from the redoable future.
//
// The invariant 0 <= cursor <= len(transactions) always holds: cursor 0
// means fully undone, cursor == len(transactions) means fully redone.
// Recording at a non-terminal cursor discards the redo tail.
//
// A Timeline is exclusively owned by the editing session that created it
// and performs no internal locking; callers must serialize access.
type Timeline struct {
	transactions []Transaction
	cursor       int

	maxEntries int
	sink       FaultSink

	// Undoable and Redoable fire only on actual flips, for driving UI
	// enablement (greying out undo/redo controls).
	Undoable *signal.State[bool]
	Redoable *signal.State[bool]
}

// Option configures a Timeline.
type Option func(*Timeline)

// WithFaultSink routes replay faults to sink instead of the default
// structured logger.
func WithFaultSink(sink FaultSink) Option {
	return func(t *Timeline) {
		if sink != nil {
			t.sink = sink
		}
	}
}

// WithLogger routes replay faults to log at warn level.
func WithLogger(log *slog.Logger) Option {
	return func(t *Timeline) {
		if log != nil {
			t.sink = slogSink{log: log}
		}
	}
}

// WithMaxEntries caps the number of retained transactions. When the cap is
// exceeded, the oldest applied transactions are evicted; the redo tail is
// never evicted. Zero or negative means unlimited.
func WithMaxEntries(n int) Option {
	return func(t *Timeline) {
		t.maxEntries = n
	}
}

// NewTimeline creates an empty timeline.
func NewTimeline(opts ...Option) *Timeline {
	t := &Timeline{
		sink:     slogSink{log: slog.Default()},
		Undoable: signal.NewState(false),
		Redoable: signal.NewState(false),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CanUndo reports whether there is an applied transaction to undo.
func (t *Timeline) CanUndo() bool {
	return t.cursor > 0
}

// CanRedo reports whether there is an undone transaction to redo.
func (t *Timeline) CanRedo() bool {
	return t.cursor < len(t.transactions)
}

// Len returns the number of transactions, applied and redoable.
func (t *Timeline) Len() int {
	return len(t.transactions)
}

// Cursor returns the current position in the transaction list.
func (t *Timeline) Cursor() int {
	return t.cursor
}

// Record adds item to the timeline.
//
// With extend false, item first tries to merge into the single-record
// transaction just behind the cursor; whether or not the merge succeeds,
// any redoable future is discarded. On merge failure a new single-record
// transaction is appended and the cursor advances.
//
// With extend true, item joins the transaction behind the cursor as an
// additional record (merging with its last record when possible) without
// creating a new undo step; if the timeline has no current transaction
// this is a no-op.
func (t *Timeline) Record(item Record, extend bool) {
	if item == nil {
		return
	}
	if extend {
		t.Extend(item)
		return
	}

	if t.cursor > 0 {
		prev := t.transactions[t.cursor-1]
		if len(prev) == 1 && prev[0].Merge(item) {
			// The merged record already represents the latest state, so
			// any previously redoable future is invalid.
			t.transactions = t.transactions[:t.cursor]
			t.publish()
			return
		}
	}

	t.transactions = append(t.transactions[:t.cursor], Transaction{item})
	t.cursor++
	t.evict()
	t.publish()
}

// Extend merges item into the last record of the transaction behind the
// cursor if possible, otherwise appends it to that transaction. Used for
// grouping related changes into one atomic step. No-op when nothing has
// been recorded yet.
func (t *Timeline) Extend(item Record) {
	if item == nil || t.cursor == 0 {
		return
	}
	tx := t.transactions[t.cursor-1]
	if !tx[len(tx)-1].Merge(item) {
		t.transactions[t.cursor-1] = append(tx, item)
	}
}

// Undo reverses the transaction behind the cursor, replaying its records
// last-applied-first. Returns false (a no-op) when nothing is undoable.
// Individual record failures go to the fault sink; the rest of the
// transaction still replays.
func (t *Timeline) Undo() bool {
	if !t.CanUndo() {
		return false
	}
	t.cursor--
	t.replayUndo(t.transactions[t.cursor])
	t.publish()
	return true
}

// Redo re-applies the transaction at the cursor, replaying its records in
// forward order. Returns false (a no-op) when nothing is redoable.
func (t *Timeline) Redo() bool {
	if !t.CanRedo() {
		return false
	}
	tx := t.transactions[t.cursor]
	t.cursor++
	for _, rec := range tx {
		t.fault("redo", rec, rec.Redo())
	}
	t.publish()
	return true
}

// Revert undoes every applied transaction in reverse chronological order
// and clears the whole timeline, redo tail included. A full reset: nothing
// is redoable afterwards.
func (t *Timeline) Revert() {
	applied := make([]Transaction, t.cursor)
	copy(applied, t.transactions[:t.cursor])

	t.Clear()

	for i := len(applied) - 1; i >= 0; i-- {
		t.replayUndo(applied[i])
	}
}

// Clear discards all transactions and resets the cursor.
func (t *Timeline) Clear() {
	t.transactions = nil
	t.cursor = 0
	t.publish()
}

// replayUndo undoes a transaction's records in reverse order, routing
// per-record failures to the fault sink.
func (t *Timeline) replayUndo(tx Transaction) {
	for i := len(tx) - 1; i >= 0; i-- {
		t.fault("undo", tx[i], tx[i].Undo())
	}
}

func (t *Timeline) fault(op string, rec Record, err error) {
	if err != nil {
		t.sink.Fault(op, rec, err)
	}
}

// publish recomputes both derived signals; subscribers only hear flips.
func (t *Timeline) publish() {
	t.Undoable.Set(t.CanUndo())
	t.Redoable.Set(t.CanRedo())
}

// evict enforces the entry cap by dropping the oldest applied
// transactions. The redo tail is never evicted.
func (t *Timeline) evict() {
	if t.maxEntries <= 0 {
		return
	}
	excess := len(t.transactions) - t.maxEntries
	if excess > t.cursor {
		excess = t.cursor
	}
	if excess <= 0 {
		return
	}
	n := copy(t.transactions, t.transactions[excess:])
	t.transactions = t.transactions[:n]
	t.cursor -= excess
}
