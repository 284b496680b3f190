// Package stack provides a persistent single-linked LIFO stack.
//
// Push and Pop return new stacks that share their tails with the receiver,
// so every version stays valid. The zero value is an empty stack.
package stack

import (
	"errors"
	"fmt"
	"iter"
)

var ErrEmptyStack = errors.New("stack is empty")

type Stack[T any] struct {
	top *cell[T]
}

type cell[T any] struct {
	value T
	next  *cell[T]
	size  int
}

func Empty[T any]() Stack[T] {
	return Stack[T]{}
}

func (s Stack[T]) IsEmpty() bool {
	return s.top == nil
}

func (s Stack[T]) Len() int {
	if s.top == nil {
		return 0
	}
	return s.top.size
}

func (s Stack[T]) Push(x T) Stack[T] {
	return Stack[T]{top: &cell[T]{value: x, next: s.top, size: s.Len() + 1}}
}

func (s Stack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, fmt.Errorf("%w: peek", ErrEmptyStack)
	}
	return s.top.value, nil
}

func (s Stack[T]) Pop() (Stack[T], error) {
	if s.top == nil {
		return s, fmt.Errorf("%w: pop", ErrEmptyStack)
	}
	return Stack[T]{top: s.top.next}, nil
}

// Reverse returns a stack with the same elements in the opposite order.
// It costs O(n) and shares nothing with the receiver.
func (s Stack[T]) Reverse() Stack[T] {
	var out Stack[T]
	for v := range s.All() {
		out = out.Push(v)
	}
	return out
}

// All yields the elements from top to bottom.
func (s Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := s.top; c != nil; c = c.next {
			if !yield(c.value) {
				return
			}
		}
	}
}
