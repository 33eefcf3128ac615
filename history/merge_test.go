package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneEditApart(t *testing.T) {
	tests := []struct {
		name string
		v1   string
		v2   string
		want bool
	}{
		{"equal", "hello", "hello", true},
		{"append one", "hello", "hellox", true},
		{"delete last", "hellox", "hello", true},
		{"insert middle", "helo", "hello", true},
		{"delete middle", "hello", "helo", true},
		{"substitute", "hello", "hallo", true},
		{"substitute last", "hellox", "helloy", true},
		{"empty to one", "", "a", true},
		{"one to empty", "a", "", true},
		{"both empty", "", "", true},
		{"two inserts", "hello", "helloxy", false},
		{"two substitutions", "hello", "hallu", false},
		{"rewrite", "hellox", "goodbye", false},
		{"transposition", "ab", "ba", false},
		{"unicode substitute", "héllo", "hállo", true},
		{"unicode append", "héllo", "héllox", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, oneEditApart(tt.v1, tt.v2))
		})
	}
}

func TestOneElementApart(t *testing.T) {
	tests := []struct {
		name      string
		baseline  any
		candidate any
		want      bool
	}{
		{"one diff", []any{1, 2, 3}, []any{1, 9, 3}, true},
		{"first diff", []any{1, 2, 3}, []any{0, 2, 3}, true},
		{"no diff", []any{1, 2, 3}, []any{1, 2, 3}, false},
		{"two diffs", []any{1, 2, 3}, []any{0, 2, 9}, false},
		{"length mismatch", []any{1, 2}, []any{1, 2, 3}, false},
		{"string elements", []any{"a", "b"}, []any{"a", "c"}, true},
		{"float elements", []any{1.0, 2.0}, []any{1.0, 2.5}, true},
		{"element type change", []any{1, 2}, []any{1, 2.0}, true},
		// Non-simple elements always count as a difference, equal or not.
		{"bool counts as diff", []any{true, 1}, []any{false, 1}, true},
		{"equal bool still counts", []any{true, 1}, []any{true, 1}, true},
		{"two bools", []any{true, false}, []any{false, true}, false},
		{"not a sequence", 5, []any{1}, false},
		{"candidate not a sequence", []any{1}, 5, false},
		{"typed slices", []int{1, 2, 3}, []int{1, 9, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, oneElementApart(tt.baseline, tt.candidate))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric(1))
	assert.True(t, isNumeric(int8(1)))
	assert.True(t, isNumeric(uint64(1)))
	assert.True(t, isNumeric(1.5))
	assert.True(t, isNumeric(complex(1, 2)))
	assert.False(t, isNumeric("1"))
	assert.False(t, isNumeric(true))
	assert.False(t, isNumeric(nil))
	assert.False(t, isNumeric([]any{1}))
}

func TestSameElements(t *testing.T) {
	assert.True(t, sameElements([]any{1, "a"}, []any{1, "a"}))
	assert.True(t, sameElements(nil, nil))
	assert.False(t, sameElements([]any{1}, []any{1, 2}))
	assert.False(t, sameElements([]any{1}, []any{1.0}))
	assert.False(t, sameElements([]any{[]any{1}}, []any{[]any{1}}), "uncomparable elements never match")
	assert.True(t, sameElements([]any{nil}, []any{nil}))
	assert.False(t, sameElements([]any{nil}, []any{1}))
}
