package list

import "fmt"

// FoldLeft combines the elements of the list from first to last, starting
// from seed: combine(...combine(combine(seed, e0), e1)..., eN).
func FoldLeft[T, A any](l List[T], seed A, combine func(A, T) A) A {
	acc := seed
	for n := l.n; n != nil; n = n.tail.n {
		acc = combine(acc, n.head)
	}
	return acc
}

// FoldRight combines the elements of the list from last to first, starting
// from seed: combine(e0, combine(e1, ...combine(eN, seed)...)).
//
// It is implemented by folding the reversed list from the left, so it does not
// grow the stack.
func FoldRight[T, A any](l List[T], seed A, combine func(T, A) A) A {
	return FoldLeft(l.Reverse(), seed, func(acc A, v T) A { return combine(v, acc) })
}

// foldRightRecursive is the textbook definition of FoldRight. It uses stack
// space proportional to the length of the list and is only used to check
// FoldRight in tests.
func foldRightRecursive[T, A any](l List[T], seed A, combine func(T, A) A) A {
	if l.n == nil {
		return seed
	}
	return combine(l.n.head, foldRightRecursive(l.n.tail, seed, combine))
}

// Reverse returns a list with the elements of l in reverse order.
func (l List[T]) Reverse() List[T] {
	return FoldLeft(l, Empty[T](), func(acc List[T], v T) List[T] {
		return Cons(v, acc)
	})
}

// Concat returns a list with the elements of l followed by those of other.
// The result shares other; only l is copied.
func (l List[T]) Concat(other List[T]) List[T] {
	if l.n == nil {
		return other
	}
	return FoldRight(l, other, Cons[T])
}

// Filter returns a list of the elements of l that satisfy pred, in the
// original order.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	return FoldLeft(l, Empty[T](), func(acc List[T], v T) List[T] {
		if pred(v) {
			return Cons(v, acc)
		}
		return acc
	}).Reverse()
}

// Take returns the first n elements of l. If l has fewer than n elements, it
// returns all of them; if n <= 0, it returns an empty list.
func (l List[T]) Take(n int) List[T] {
	var rev List[T]
	for ; n > 0 && l.n != nil; n-- {
		rev = Cons(l.n.head, rev)
		l = l.n.tail
	}
	return rev.Reverse()
}

// Drop returns l without its first n elements. If l has fewer than n
// elements, it returns an empty list; if n <= 0, it returns l itself.
func (l List[T]) Drop(n int) List[T] {
	for ; n > 0 && l.n != nil; n-- {
		l = l.n.tail
	}
	return l
}

// Map returns a list of the results of applying f to each element of l. The
// function is called on the elements in order.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	return FoldLeft(l, Empty[U](), func(acc List[U], v T) List[U] {
		return Cons(f(v), acc)
	}).Reverse()
}

// FlatMap applies f to each element of l and concatenates the resulting lists
// in order.
func FlatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	// Concatenating from the right keeps the total cost linear: each part is
	// copied once and the accumulated suffix is shared.
	return FoldRight(Map(l, f), Empty[U](), func(part, acc List[U]) List[U] {
		return part.Concat(acc)
	})
}

// ZipWith returns a list of combine(a[i], b[i]) for each index present in both
// lists. The result is as long as the shorter of a and b.
func ZipWith[A, B, C any](a List[A], b List[B], combine func(A, B) C) List[C] {
	var rev List[C]
	for a.n != nil && b.n != nil {
		rev = Cons(combine(a.n.head, b.n.head), rev)
		a, b = a.n.tail, b.n.tail
	}
	return rev.Reverse()
}

// Pair is a pair of values.
type Pair[A, B any] struct {
	First  A `json:"first" yaml:"first"`
	Second B `json:"second" yaml:"second"`
}

// MakePair returns a Pair of a and b.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{a, b}
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Zip pairs up the elements of a and b. The result is as long as the shorter
// of the two.
func Zip[A, B any](a List[A], b List[B]) List[Pair[A, B]] {
	return ZipWith(a, b, MakePair[A, B])
}
