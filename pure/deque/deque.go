package deque

import (
	"errors"
	"fmt"
	"slices"

	"github.com/on-the-ground/pure_deque/shared/helper"
)

// ErrEmptyDeque is returned when peeking at or removing from an empty deque.
var ErrEmptyDeque = errors.New("deque is empty")

// Deque is a persistent double-ended queue.
//
// Every update returns a new Deque and leaves the receiver untouched, so any
// version can be kept, reused and shared between goroutines without locking.
// The zero value is an empty deque.
type Deque[T any] struct {
	node node[T]
}

// node is one of nil (empty), *single[T] or *many[T].
type node[T any] interface {
	sealedNode()
}

type single[T any] struct {
	value T
}

func (*single[T]) sealedNode() {}

// many holds two or more elements: front, then every buffer stored in
// middle from left to right, then back.
//
// middle is a deque of Buffer[T] values. It is typed Deque[any] because a
// Deque[T] cannot contain a Deque[Buffer[T]]: the type would expand forever.
type many[T any] struct {
	front  Buffer[T]
	middle Deque[any]
	back   Buffer[T]
	size   int
}

func (*many[T]) sealedNode() {}

// Empty returns the empty deque.
func Empty[T any]() Deque[T] {
	return Deque[T]{}
}

// Of returns a deque holding values from left to right.
func Of[T any](values ...T) Deque[T] {
	d := Empty[T]()
	for _, v := range values {
		d = d.EnqueueRight(v)
	}
	return d
}

func newSingle[T any](x T) Deque[T] {
	return Deque[T]{node: &single[T]{value: x}}
}

func newMany[T any](front Buffer[T], middle Deque[any], back Buffer[T], size int) Deque[T] {
	return Deque[T]{node: &many[T]{front: front, middle: middle, back: back, size: size}}
}

func (d Deque[T]) IsEmpty() bool {
	return d.node == nil
}

// Len returns the number of elements in O(1).
func (d Deque[T]) Len() int {
	switch n := d.node.(type) {
	case nil:
		return 0
	case *single[T]:
		return 1
	case *many[T]:
		return n.size
	default:
		panic("exhaustive match")
	}
}

func (d Deque[T]) PeekLeft() (T, error) {
	switch n := d.node.(type) {
	case nil:
		var zero T
		return zero, fmt.Errorf("%w: peek left", ErrEmptyDeque)
	case *single[T]:
		return n.value, nil
	case *many[T]:
		return n.front.PeekLeft(), nil
	default:
		panic("exhaustive match")
	}
}

func (d Deque[T]) PeekRight() (T, error) {
	switch n := d.node.(type) {
	case nil:
		var zero T
		return zero, fmt.Errorf("%w: peek right", ErrEmptyDeque)
	case *single[T]:
		return n.value, nil
	case *many[T]:
		return n.back.PeekRight(), nil
	default:
		panic("exhaustive match")
	}
}

// EnqueueLeft returns a deque with x added at the left end.
//
// When the front buffer is full, x and the old leftmost element form the new
// front and the remaining three elements move into middle as one buffer.
func (d Deque[T]) EnqueueLeft(x T) Deque[T] {
	switch n := d.node.(type) {
	case nil:
		return newSingle(x)
	case *single[T]:
		return newMany(NewBuffer(x), Empty[any](), NewBuffer(n.value), 2)
	case *many[T]:
		if !n.front.IsFull() {
			return newMany(n.front.EnqueueLeft(x), n.middle, n.back, n.size+1)
		}
		kept, displaced := n.front.PeekLeft(), n.front.DequeueLeft()
		return newMany(NewBuffer(x, kept), n.middle.EnqueueLeft(displaced), n.back, n.size+1)
	default:
		panic("exhaustive match")
	}
}

// EnqueueRight returns a deque with x added at the right end.
func (d Deque[T]) EnqueueRight(x T) Deque[T] {
	switch n := d.node.(type) {
	case nil:
		return newSingle(x)
	case *single[T]:
		return newMany(NewBuffer(n.value), Empty[any](), NewBuffer(x), 2)
	case *many[T]:
		if !n.back.IsFull() {
			return newMany(n.front, n.middle, n.back.EnqueueRight(x), n.size+1)
		}
		kept, displaced := n.back.PeekRight(), n.back.DequeueRight()
		return newMany(n.front, n.middle.EnqueueRight(displaced), NewBuffer(kept, x), n.size+1)
	default:
		panic("exhaustive match")
	}
}

// DequeueLeft returns a deque without its leftmost element.
// On an empty deque it returns the receiver and an ErrEmptyDeque.
func (d Deque[T]) DequeueLeft() (Deque[T], error) {
	switch n := d.node.(type) {
	case nil:
		return d, fmt.Errorf("%w: dequeue left", ErrEmptyDeque)
	case *single[T]:
		return Empty[T](), nil
	case *many[T]:
		switch {
		case n.front.Size() > 1:
			return newMany(n.front.DequeueLeft(), n.middle, n.back, n.size-1), nil
		case !n.middle.IsEmpty():
			raw, middle, err := n.middle.PopLeft()
			front := helper.MustGetTypedValue[Buffer[T]](func() (any, error) { return raw, err })
			return newMany(front, middle, n.back, n.size-1), nil
		case n.back.Size() > 1:
			return newMany(NewBuffer(n.back.PeekLeft()), n.middle, n.back.DequeueLeft(), n.size-1), nil
		default:
			return newSingle(n.back.PeekLeft()), nil
		}
	default:
		panic("exhaustive match")
	}
}

// DequeueRight returns a deque without its rightmost element.
// On an empty deque it returns the receiver and an ErrEmptyDeque.
func (d Deque[T]) DequeueRight() (Deque[T], error) {
	switch n := d.node.(type) {
	case nil:
		return d, fmt.Errorf("%w: dequeue right", ErrEmptyDeque)
	case *single[T]:
		return Empty[T](), nil
	case *many[T]:
		switch {
		case n.back.Size() > 1:
			return newMany(n.front, n.middle, n.back.DequeueRight(), n.size-1), nil
		case !n.middle.IsEmpty():
			raw, middle, err := n.middle.PopRight()
			back := helper.MustGetTypedValue[Buffer[T]](func() (any, error) { return raw, err })
			return newMany(n.front, middle, back, n.size-1), nil
		case n.front.Size() > 1:
			return newMany(n.front.DequeueRight(), n.middle, NewBuffer(n.front.PeekRight()), n.size-1), nil
		default:
			return newSingle(n.front.PeekRight()), nil
		}
	default:
		panic("exhaustive match")
	}
}

// PopLeft returns the leftmost element together with the deque without it.
func (d Deque[T]) PopLeft() (T, Deque[T], error) {
	if d.IsEmpty() {
		var zero T
		return zero, d, fmt.Errorf("%w: pop left", ErrEmptyDeque)
	}
	v, _ := d.PeekLeft()
	rest, _ := d.DequeueLeft()
	return v, rest, nil
}

// PopRight returns the rightmost element together with the deque without it.
func (d Deque[T]) PopRight() (T, Deque[T], error) {
	if d.IsEmpty() {
		var zero T
		return zero, d, fmt.Errorf("%w: pop right", ErrEmptyDeque)
	}
	v, _ := d.PeekRight()
	rest, _ := d.DequeueRight()
	return v, rest, nil
}

func (d Deque[T]) String() string {
	return fmt.Sprint(slices.Collect(d.All()))
}
