// Package option implements a value that may or may not be present.
//
// It is used by the persistent containers to report lookups that have no
// result, such as the head of an empty list, without resorting to panics or
// sentinel values.
package option

import (
	"encoding/json"
	"fmt"
)

// Option holds either one value of type T or nothing. The zero value holds
// nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{v, true}
}

// None returns an Option holding nothing.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present. When the value is absent,
// the first return value is the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether o holds nothing.
func (o Option[T]) IsNone() bool { return !o.ok }

// OrElse returns the value held by o, or def if o holds nothing.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// String returns "Some(v)" or "None".
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the value held by o. It returns None if o holds nothing.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap applies f to the value held by o and returns its result. It returns
// None if o holds nothing.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// MarshalJSON encodes the value held by o, or null if o holds nothing.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// MarshalYAML encodes the value held by o, or null if o holds nothing. It
// implements the Marshaler interface of gopkg.in/yaml.v3.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}
	return o.value, nil
}
