package deque

import "fmt"

// Buffer is a persistent double-ended container holding 1 to 4 elements.
// It is the storage unit at every level of a Deque.
//
// Enqueueing onto a full buffer or dequeueing from a buffer of size 1
// panics: the Deque never does either, so reaching one is a bug.
type Buffer[T any] interface {
	PeekLeft() T
	PeekRight() T
	Size() int
	IsFull() bool
	EnqueueLeft(x T) Buffer[T]
	EnqueueRight(x T) Buffer[T]
	DequeueLeft() Buffer[T]
	DequeueRight() Buffer[T]

	sealedBuffer()
}

var (
	_ Buffer[int] = one[int]{}
	_ Buffer[int] = two[int]{}
	_ Buffer[int] = three[int]{}
	_ Buffer[int] = four[int]{}
)

// NewBuffer builds a buffer holding values from left to right.
// It panics unless 1 to 4 values are given.
func NewBuffer[T any](values ...T) Buffer[T] {
	switch len(values) {
	case 1:
		return one[T]{values[0]}
	case 2:
		return two[T]{values[0], values[1]}
	case 3:
		return three[T]{values[0], values[1], values[2]}
	case 4:
		return four[T]{values[0], values[1], values[2], values[3]}
	default:
		panic(fmt.Sprintf("buffer holds 1 to 4 values, got %d", len(values)))
	}
}

type one[T any] struct{ a T }

func (b one[T]) PeekLeft() T                { return b.a }
func (b one[T]) PeekRight() T               { return b.a }
func (b one[T]) Size() int                  { return 1 }
func (b one[T]) IsFull() bool               { return false }
func (b one[T]) EnqueueLeft(x T) Buffer[T]  { return two[T]{x, b.a} }
func (b one[T]) EnqueueRight(x T) Buffer[T] { return two[T]{b.a, x} }
func (b one[T]) DequeueLeft() Buffer[T]     { panic("dequeue on a buffer of size 1") }
func (b one[T]) DequeueRight() Buffer[T]    { panic("dequeue on a buffer of size 1") }
func (one[T]) sealedBuffer()                {}

type two[T any] struct{ a, b T }

func (b two[T]) PeekLeft() T                { return b.a }
func (b two[T]) PeekRight() T               { return b.b }
func (b two[T]) Size() int                  { return 2 }
func (b two[T]) IsFull() bool               { return false }
func (b two[T]) EnqueueLeft(x T) Buffer[T]  { return three[T]{x, b.a, b.b} }
func (b two[T]) EnqueueRight(x T) Buffer[T] { return three[T]{b.a, b.b, x} }
func (b two[T]) DequeueLeft() Buffer[T]     { return one[T]{b.b} }
func (b two[T]) DequeueRight() Buffer[T]    { return one[T]{b.a} }
func (two[T]) sealedBuffer()                {}

type three[T any] struct{ a, b, c T }

func (b three[T]) PeekLeft() T                { return b.a }
func (b three[T]) PeekRight() T               { return b.c }
func (b three[T]) Size() int                  { return 3 }
func (b three[T]) IsFull() bool               { return false }
func (b three[T]) EnqueueLeft(x T) Buffer[T]  { return four[T]{x, b.a, b.b, b.c} }
func (b three[T]) EnqueueRight(x T) Buffer[T] { return four[T]{b.a, b.b, b.c, x} }
func (b three[T]) DequeueLeft() Buffer[T]     { return two[T]{b.b, b.c} }
func (b three[T]) DequeueRight() Buffer[T]    { return two[T]{b.a, b.b} }
func (three[T]) sealedBuffer()                {}

type four[T any] struct{ a, b, c, d T }

func (b four[T]) PeekLeft() T                { return b.a }
func (b four[T]) PeekRight() T               { return b.d }
func (b four[T]) Size() int                  { return 4 }
func (b four[T]) IsFull() bool               { return true }
func (b four[T]) EnqueueLeft(x T) Buffer[T]  { panic("enqueue on a full buffer") }
func (b four[T]) EnqueueRight(x T) Buffer[T] { panic("enqueue on a full buffer") }
func (b four[T]) DequeueLeft() Buffer[T]     { return three[T]{b.b, b.c, b.d} }
func (b four[T]) DequeueRight() Buffer[T]    { return three[T]{b.a, b.b, b.c} }
func (four[T]) sealedBuffer()                {}
