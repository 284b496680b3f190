// Package queue provides a persistent FIFO queue made of two stacks.
//
// Enqueue pushes onto the back stack. Dequeue pops the front stack and, once
// the front runs out, reverses the back stack into it. Operations are amortized
// O(1) as long as each version is dequeued at most once; dequeuing the same old
// version repeatedly may repeat its reversal. The zero value is an empty queue.
package queue

import (
	"errors"
	"fmt"
	"iter"

	"github.com/on-the-ground/pure_deque/pure/stack"
)

var ErrEmptyQueue = errors.New("queue is empty")

// Queue keeps front non-empty whenever the queue holds any element.
type Queue[T any] struct {
	front stack.Stack[T]
	back  stack.Stack[T]
}

func Empty[T any]() Queue[T] {
	return Queue[T]{}
}

func (q Queue[T]) IsEmpty() bool {
	return q.front.IsEmpty()
}

func (q Queue[T]) Len() int {
	return q.front.Len() + q.back.Len()
}

func (q Queue[T]) Enqueue(x T) Queue[T] {
	if q.front.IsEmpty() {
		return Queue[T]{front: q.front.Push(x)}
	}
	return Queue[T]{front: q.front, back: q.back.Push(x)}
}

func (q Queue[T]) Peek() (T, error) {
	v, err := q.front.Peek()
	if err != nil {
		return v, fmt.Errorf("%w: peek", ErrEmptyQueue)
	}
	return v, nil
}

func (q Queue[T]) Dequeue() (Queue[T], error) {
	front, err := q.front.Pop()
	if err != nil {
		return q, fmt.Errorf("%w: dequeue", ErrEmptyQueue)
	}
	if front.IsEmpty() {
		return Queue[T]{front: q.back.Reverse()}, nil
	}
	return Queue[T]{front: front, back: q.back}, nil
}

// All yields the elements from oldest to newest.
func (q Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := q; !cur.IsEmpty(); {
			v, _ := cur.Peek()
			if !yield(v) {
				return
			}
			cur, _ = cur.Dequeue()
		}
	}
}
