package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillpad/rewind/object"
)

// newTarget registers a fresh dict with the given fields.
func newTarget(t *testing.T, fields map[string]any) (object.Ref, *object.Dict) {
	t.Helper()
	d := object.NewDict(fields)
	return object.NewRegistry().Add(d), d
}

func fieldValue(t *testing.T, d *object.Dict, name string) any {
	t.Helper()
	v, err := d.Field(name)
	require.NoError(t, err)
	return v
}

func TestFieldChangeRoundTrip(t *testing.T) {
	ref, d := newTarget(t, map[string]any{"x": "A"})
	rec := NewFieldChange(ref, "x", "A", "B")

	require.NoError(t, rec.Redo())
	assert.Equal(t, "B", fieldValue(t, d, "x"))

	require.NoError(t, rec.Undo())
	assert.Equal(t, "A", fieldValue(t, d, "x"))

	require.NoError(t, rec.Redo())
	assert.Equal(t, "B", fieldValue(t, d, "x"))
}

func TestFieldChangeDeadTarget(t *testing.T) {
	ref, _ := newTarget(t, map[string]any{"x": 1})
	rec := NewFieldChange(ref, "x", 1, 2)

	ref.Drop()

	assert.ErrorIs(t, rec.Undo(), ErrTargetGone)
	assert.ErrorIs(t, rec.Redo(), ErrTargetGone)
}

func TestFieldChangeSnapshotsSequences(t *testing.T) {
	ref, d := newTarget(t, map[string]any{"items": []any{1, 2}})

	live := []any{1, 2}
	rec := NewFieldChange(ref, "items", live, []any{1, 3})

	// Mutating the slice after recording must not alias into the record.
	live[0] = 99

	require.NoError(t, rec.Undo())
	assert.Equal(t, []any{1, 2}, fieldValue(t, d, "items"))
}

func TestFieldChangeMergeNumeric(t *testing.T) {
	ref, _ := newTarget(t, map[string]any{"x": 0})

	rec := NewFieldChange(ref, "x", 0, 1)
	ok := rec.Merge(NewFieldChange(ref, "x", 1, 2))
	require.True(t, ok)

	assert.Equal(t, 0, rec.OldValue(), "merge keeps the original old value")
	assert.Equal(t, 2, rec.NewValue(), "merge adopts the candidate's new value")

	// Different numeric types refuse to merge.
	assert.False(t, rec.Merge(NewFieldChange(ref, "x", 2, 2.5)))
}

func TestFieldChangeMergeStrings(t *testing.T) {
	ref, _ := newTarget(t, map[string]any{"s": "hello"})

	rec := NewFieldChange(ref, "s", "hello", "hellox")
	assert.True(t, rec.Merge(NewFieldChange(ref, "s", "hellox", "helloxy")))
	assert.Equal(t, "helloxy", rec.NewValue())

	assert.False(t, rec.Merge(NewFieldChange(ref, "s", "helloxy", "goodbye")))
	assert.Equal(t, "helloxy", rec.NewValue(), "failed merge must not mutate")
}

func TestFieldChangeMergeSequenceBaseline(t *testing.T) {
	ref, _ := newTarget(t, map[string]any{"items": []any{1, 2, 3}})

	rec := NewFieldChange(ref, "items", []any{1, 2, 3}, []any{1, 9, 3})

	// Still one element away from the original old value: merges.
	require.True(t, rec.Merge(NewFieldChange(ref, "items", []any{1, 9, 3}, []any{1, 7, 3})))
	assert.Equal(t, []any{1, 7, 3}, rec.NewValue())

	// A second element diverging from the baseline refuses the merge.
	assert.False(t, rec.Merge(NewFieldChange(ref, "items", []any{1, 7, 3}, []any{1, 7, 9})))

	// Returning to the baseline exactly also refuses (nothing to coalesce).
	assert.False(t, rec.Merge(NewFieldChange(ref, "items", []any{1, 7, 3}, []any{1, 2, 3})))
}

func TestFieldChangeMergeMismatches(t *testing.T) {
	reg := object.NewRegistry()
	a := reg.Add(object.NewDict(map[string]any{"x": 1}))
	b := reg.Add(object.NewDict(map[string]any{"x": 1}))

	rec := NewFieldChange(a, "x", 1, 2)

	assert.False(t, rec.Merge(NewFieldChange(b, "x", 1, 2)), "different object")
	assert.False(t, rec.Merge(NewFieldChange(a, "y", 1, 2)), "different field")
	assert.False(t, rec.Merge(NewListSplice(a, "x", 0, nil, nil)), "different record kind")
	assert.False(t, rec.Merge(NewFieldChange(a, "x", 2, "two")), "kind mismatch between values")
}

func TestFieldChangeString(t *testing.T) {
	ref, _ := newTarget(t, map[string]any{"x": 1})
	rec := NewFieldChange(ref, "x", 1, 2)
	s := rec.String()
	assert.Contains(t, s, ".x = 1")
	assert.Contains(t, s, ".x = 2")
}
