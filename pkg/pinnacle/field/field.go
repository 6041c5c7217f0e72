// Package field holds the building blocks shared by every record model: a tri-state
// Field for optional and nullable values, and Meta which keeps the raw payload and the
// wire keys a record does not declare.
package field

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

type state uint8

const (
	absent state = iota
	null
	present
)

// Field is a value that can be absent, explicitly null or set.
// The zero value is absent.
type Field[T any] struct {
	value T
	state state
}

// Of returns a Field set to v.
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, state: present}
}

// Null returns a Field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{state: null}
}

// Absent returns an unset Field. It is the same as the zero value.
func Absent[T any]() Field[T] {
	return Field[T]{}
}

// IsPresent reports whether the field was supplied, either with a value or as null.
func (f Field[T]) IsPresent() bool { return f.state != absent }

// IsNull reports whether the field was explicitly set to null.
func (f Field[T]) IsNull() bool { return f.state == null }

// IsSet reports whether the field holds a value.
func (f Field[T]) IsSet() bool { return f.state == present }

// Value returns the held value, or the zero value of T when the field is absent or null.
func (f Field[T]) Value() T { return f.value }

// Get returns the held value and whether it is set.
func (f Field[T]) Get() (T, bool) { return f.value, f.state == present }

// Or returns the held value or def when the field is absent or null.
func (f Field[T]) Or(def T) T {
	if f.state != present {
		return def
	}
	return f.value
}

// Ptr returns a pointer to a copy of the held value, nil when not set.
func (f Field[T]) Ptr() *T {
	if f.state != present {
		return nil
	}
	v := f.value
	return &v
}

// Any returns the held value as an interface, nil when not set.
func (f Field[T]) Any() any {
	if f.state != present {
		return nil
	}
	return f.value
}

// ValueType returns the type of the value the field can hold.
func (f Field[T]) ValueType() reflect.Type {
	return reflect.TypeFor[T]()
}

// SetAny assigns v (which must be assignable to T) or null when v is nil.
func (f *Field[T]) SetAny(v any) error {
	if v == nil {
		*f = Null[T]()
		return nil
	}
	t, ok := v.(T)
	if !ok {
		return fmt.Errorf("cannot assign %T to field of type %v", v, reflect.TypeFor[T]())
	}
	*f = Of(t)
	return nil
}

// String implements fmt.Stringer.
func (f Field[T]) String() string {
	switch f.state {
	case absent:
		return "<absent>"
	case null:
		return "<null>"
	default:
		return fmt.Sprint(f.value)
	}
}

// MarshalJSON encodes the held value, or null for both absent and null fields.
// Records drop absent fields before getting here.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != present {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON decodes a JSON value. The literal null yields the null state.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Of(v)
	return nil
}
