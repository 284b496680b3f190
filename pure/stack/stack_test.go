package stack_test

import (
	"slices"
	"testing"

	"github.com/on-the-ground/pure_deque/pure/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_LIFO(t *testing.T) {
	s := stack.Empty[string]().Push("a").Push("b").Push("c")
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(s.All()))

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "c", top)

	s, err = s.Pop()
	require.NoError(t, err)
	top, _ = s.Peek()
	assert.Equal(t, "b", top)
	assert.Equal(t, 2, s.Len())
}

func TestStack_Empty(t *testing.T) {
	var s stack.Stack[int]
	assert.True(t, s.IsEmpty())

	_, err := s.Peek()
	assert.ErrorIs(t, err, stack.ErrEmptyStack)
	same, err := s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmptyStack)
	assert.True(t, same.IsEmpty())
}

func TestStack_SharesTails(t *testing.T) {
	base := stack.Empty[int]().Push(1).Push(2)
	left := base.Push(3)
	right := base.Push(4)

	assert.Equal(t, []int{2, 1}, slices.Collect(base.All()))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(left.All()))
	assert.Equal(t, []int{4, 2, 1}, slices.Collect(right.All()))
}

func TestStack_Reverse(t *testing.T) {
	s := stack.Empty[int]().Push(1).Push(2).Push(3)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(s.Reverse().All()))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(s.All()))
	assert.True(t, stack.Empty[int]().Reverse().IsEmpty())
}
