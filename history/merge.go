package history

import "reflect"

// Value classification for merge rules. Simple scalars are the element
// types that sequence merging is willing to compare: text and numbers.
// Booleans and aggregates are deliberately excluded.

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isSequence(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.IsValid() && rv.Kind() == reflect.Slice
}

func isNumeric(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func isSimpleScalar(v any) bool {
	return isString(v) || isNumeric(v)
}

// oneEditApart reports whether v2 can be produced from v1 by at most one
// single-character insertion, deletion, or substitution at one position.
// Computed with a common-prefix scan followed by a suffix comparison.
func oneEditApart(s1, s2 string) bool {
	v1 := []rune(s1)
	v2 := []rune(s2)
	n1, n2 := len(v1), len(v2)

	d := n1 - n2
	if d < -1 || d > 1 {
		return false
	}

	n := min(n1, n2)
	i := 0
	for i < n && v1[i] == v2[i] {
		i++
	}

	// Skip the edited position on whichever side is at least as long.
	j1, j2 := i, i
	if n2 <= n1 {
		j1++
	}
	if n2 >= n1 {
		j2++
	}
	if j1 > n1 {
		j1 = n1
	}
	if j2 > n2 {
		j2 = n2
	}
	return string(v1[j1:]) == string(v2[j2:])
}

// oneElementApart reports whether candidate is a sequence of the same
// length as baseline differing from it in exactly one position, with every
// compared element a simple scalar of matching type. Zero differences also
// refuse the merge: an identical sequence is not a coalescible edit.
func oneElementApart(baseline, candidate any) bool {
	b := reflect.ValueOf(baseline)
	c := reflect.ValueOf(candidate)
	if !b.IsValid() || !c.IsValid() || b.Kind() != reflect.Slice || c.Kind() != reflect.Slice {
		return false
	}
	if b.Len() != c.Len() {
		return false
	}

	diffs := 0
	for i := 0; i < b.Len(); i++ {
		e1 := b.Index(i).Interface()
		e2 := c.Index(i).Interface()
		if !isSimpleScalar(e1) || reflect.TypeOf(e1) != reflect.TypeOf(e2) || e1 != e2 {
			diffs++
			if diffs >= 2 {
				return false
			}
		}
	}
	return diffs == 1
}

// sameElement compares two sequence elements for splice deduplication.
// Values of differing or uncomparable types are never the same.
func sameElement(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// sameElements compares two runs element-wise.
func sameElements(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameElement(a[i], b[i]) {
			return false
		}
	}
	return true
}
