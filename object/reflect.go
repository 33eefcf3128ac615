package object

import (
	"fmt"
	"reflect"
)

// Reflected adapts a pointer-to-struct into an Accessor using reflection.
// Only exported fields are reachable. Slice-valued fields support
// SpliceField; items are converted to the slice's element type where
// possible.
type Reflected struct {
	target reflect.Value // struct value, addressable
}

// Reflect wraps target, which must be a non-nil pointer to a struct.
func Reflect(target any) (*Reflected, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, fmt.Errorf("reflect accessor: need non-nil struct pointer, got %T", target)
	}
	elem := v.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("reflect accessor: need struct pointer, got %T", target)
	}
	return &Reflected{target: elem}, nil
}

// field resolves an exported, settable struct field by name.
func (r *Reflected) field(name string) (reflect.Value, error) {
	f := r.target.FieldByName(name)
	if !f.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %s.%s", ErrNoField, r.target.Type().Name(), name)
	}
	if !f.CanSet() {
		return reflect.Value{}, fmt.Errorf("%w: %s.%s is unexported", ErrNoField, r.target.Type().Name(), name)
	}
	return f, nil
}

// Field returns the current value of the named field.
func (r *Reflected) Field(name string) (any, error) {
	f, err := r.field(name)
	if err != nil {
		return nil, err
	}
	return f.Interface(), nil
}

// SetField assigns value to the named field, converting it to the field's
// type when the conversion is lossless by Go assignability rules.
func (r *Reflected) SetField(name string, value any) error {
	f, err := r.field(name)
	if err != nil {
		return err
	}
	v, err := convert(reflect.ValueOf(value), f.Type())
	if err != nil {
		return fmt.Errorf("set %s.%s: %w", r.target.Type().Name(), name, err)
	}
	f.Set(v)
	return nil
}

// SpliceField replaces [start, start+count) of a slice-valued field with
// items and returns the removed elements.
func (r *Reflected) SpliceField(name string, start, count int, items []any) ([]any, error) {
	f, err := r.field(name)
	if err != nil {
		return nil, err
	}
	if f.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %s.%s holds %s", ErrNotSequence, r.target.Type().Name(), name, f.Type())
	}
	if start < 0 || count < 0 || start+count > f.Len() {
		return nil, fmt.Errorf("%w: [%d:%d) of %d", ErrBadRange, start, start+count, f.Len())
	}

	elem := f.Type().Elem()
	converted := make([]reflect.Value, len(items))
	for i, item := range items {
		v, err := convert(reflect.ValueOf(item), elem)
		if err != nil {
			return nil, fmt.Errorf("splice %s.%s[%d]: %w", r.target.Type().Name(), name, i, err)
		}
		converted[i] = v
	}

	removed := make([]any, count)
	for i := 0; i < count; i++ {
		removed[i] = f.Index(start + i).Interface()
	}

	next := reflect.MakeSlice(f.Type(), 0, f.Len()-count+len(items))
	next = reflect.AppendSlice(next, f.Slice(0, start))
	next = reflect.Append(next, converted...)
	next = reflect.AppendSlice(next, f.Slice(start+count, f.Len()))
	f.Set(next)

	return removed, nil
}

// convert coerces v to typ, allowing only direct assignability and the
// identity case for untyped nil into nilable kinds.
func convert(v reflect.Value, typ reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
			return reflect.Zero(typ), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot assign nil to %s", typ)
	}
	if v.Type().AssignableTo(typ) {
		return v, nil
	}
	return reflect.Value{}, fmt.Errorf("cannot assign %s to %s", v.Type(), typ)
}
