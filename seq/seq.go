// Package seq derives the usual sequence operations (bounds-checked access,
// slicing, iteration, membership, random choice) from two primitives: a
// length and an unchecked positional read.
package seq

import "iter"

// Sequence is the minimal contract. At is only called with 0 <= i < Len().
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Rand is the randomness a caller supplies to Choice. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Get returns the element at i. Negative i counts from the end, so -1 is the last element.
func Get[T any](s Sequence[T], i int) (T, error) {
	n := s.Len()
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		var zero T
		return zero, &OutOfRangeError{Index: i, Len: n}
	}
	return s.At(j), nil
}

// All yields every element front to back. Each call starts a new traversal.
func All[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, n := 0, s.Len(); i < n; i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func Backward[T any](s Sequence[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := s.Len() - 1; i >= 0; i-- {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Index returns the position of the first element equal to v, or -1.
func Index[T comparable](s Sequence[T], v T) int {
	for i, n := 0, s.Len(); i < n; i++ {
		if s.At(i) == v {
			return i
		}
	}
	return -1
}

func Contains[T comparable](s Sequence[T], v T) bool {
	return Index(s, v) >= 0
}

// Choice picks one element uniformly without removing it.
func Choice[T any](s Sequence[T], rng Rand) (T, error) {
	n := s.Len()
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.At(rng.Intn(n)), nil
}

func Collect[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.Len())
	for v := range All(s) {
		out = append(out, v)
	}
	return out
}

// Of adapts a plain slice. The slice is used as is, not copied.
func Of[T any](items []T) Sequence[T] {
	return sliceSeq[T](items)
}

type sliceSeq[T any] []T

func (s sliceSeq[T]) Len() int { return len(s) }
func (s sliceSeq[T]) At(i int) T { return s[i] }
