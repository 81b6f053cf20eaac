// Package list implements persistent list.
//
// A List is an immutable singly-linked sequence. Operations never modify an
// existing list; instead they return a new list, sharing as much of the
// original as possible. Lists are safe for concurrent use by multiple
// goroutines without synchronization.
//
// None of the operations recurse on the length of the list, so they work on
// arbitrarily long lists.
package list

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/elves/conslist/pkg/persistent/option"
)

// List is a persistent list. The zero value is an empty list.
type List[T any] struct {
	n *node[T]
}

type node[T any] struct {
	head T
	tail List[T]
}

// Empty returns an empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list with head in front of tail. The tail is shared, not
// copied.
func Cons[T any](head T, tail List[T]) List[T] {
	return List[T]{&node[T]{head, tail}}
}

// Of returns a list of the given values, in the same order.
func Of[T any](items ...T) List[T] {
	return FromSlice(items)
}

// FromSlice returns a list of the elements of s, in the same order.
func FromSlice[T any](s []T) List[T] {
	var l List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}
	return l
}

// FromSeq returns a list of the values yielded by seq, in the same order.
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	var rev List[T]
	for v := range seq {
		rev = Cons(v, rev)
	}
	return rev.Reverse()
}

// Prepend returns a new list with v in front of l.
func (l List[T]) Prepend(v T) List[T] {
	return Cons(v, l)
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.n == nil
}

// Uncons splits a non-empty list into its first element and the rest. The
// last return value is false if the list is empty.
func (l List[T]) Uncons() (head T, tail List[T], ok bool) {
	if l.n == nil {
		return head, tail, false
	}
	return l.n.head, l.n.tail, true
}

// Head returns the first element of the list, or None if the list is empty.
func (l List[T]) Head() option.Option[T] {
	if l.n == nil {
		return option.None[T]()
	}
	return option.Some(l.n.head)
}

// Tail returns the list without its first element. The tail of an empty list
// is an empty list.
func (l List[T]) Tail() List[T] {
	if l.n == nil {
		return l
	}
	return l.n.tail
}

// Get returns the i-th element of the list, counting from 0, or None if the
// index is out of range.
func (l List[T]) Get(i int) option.Option[T] {
	if i < 0 {
		return option.None[T]()
	}
	return l.Drop(i).Head()
}

// Len returns the number of elements in the list. It takes time proportional
// to the length of the list.
func (l List[T]) Len() int {
	return FoldLeft(l, 0, func(n int, _ T) int { return n + 1 })
}

// ContainsFunc reports whether any element of the list satisfies pred.
func (l List[T]) ContainsFunc(pred func(T) bool) bool {
	for v := range l.All() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Contains reports whether v is an element of l. Elements are compared with
// ==, which panics for interface values holding uncomparable types; use
// ContainsFunc for such lists.
func Contains[T comparable](l List[T], v T) bool {
	return l.ContainsFunc(func(x T) bool { return x == v })
}

// Equal reports whether two lists have the same elements in the same order.
// Like Contains, it compares elements with ==; use EqualFunc for interface
// element types that may hold uncomparable values.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[T, U any](a List[T], b List[U], eq func(T, U) bool) bool {
	for a.n != nil && b.n != nil {
		if !eq(a.n.head, b.n.head) {
			return false
		}
		a, b = a.n.tail, b.n.tail
	}
	return a.n == nil && b.n == nil
}

// All returns an iterator over the elements of the list, from first to last.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.n; n != nil; n = n.tail.n {
			if !yield(n.head) {
				return
			}
		}
	}
}

// Slice returns the elements of the list in a newly allocated slice. It
// returns nil for an empty list.
func (l List[T]) Slice() []T {
	var s []T
	for v := range l.All() {
		s = append(s, v)
	}
	return s
}

// String returns the elements of the list separated by spaces and surrounded
// by brackets, like "[1 2 3]".
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.n; n != nil; n = n.tail.n {
		if n != l.n {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.head)
	}
	sb.WriteByte(']')
	return sb.String()
}

// MarshalJSON encodes the list as a JSON array.
func (l List[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for n := l.n; n != nil; n = n.tail.n {
		if n != l.n {
			buf.WriteByte(',')
		}
		elemBytes, err := json.Marshal(n.head)
		if err != nil {
			return nil, err
		}
		buf.Write(elemBytes)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the list as a YAML sequence. It implements the
// Marshaler interface of gopkg.in/yaml.v3.
func (l List[T]) MarshalYAML() (any, error) {
	s := make([]T, 0)
	for v := range l.All() {
		s = append(s, v)
	}
	return s, nil
}
