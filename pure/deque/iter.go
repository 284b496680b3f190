package deque

import "iter"

// All yields the elements from left to right.
//
// It walks a local copy of the deque, so the receiver is never touched and
// ranging over the same sequence twice yields the same elements twice.
func (d Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := d; !cur.IsEmpty(); {
			var v T
			v, cur, _ = cur.PopLeft()
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields the elements from right to left.
func (d Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := d; !cur.IsEmpty(); {
			var v T
			v, cur, _ = cur.PopRight()
			if !yield(v) {
				return
			}
		}
	}
}

// Collect enqueues every value of seq on the right of an empty deque.
func Collect[T any](seq iter.Seq[T]) Deque[T] {
	d := Empty[T]()
	for v := range seq {
		d = d.EnqueueRight(v)
	}
	return d
}
