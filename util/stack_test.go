package util

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := Stack[int]{}
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(1, 2, 3)
	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len())

	popped, _ := s.Pop()
	assert.Equal(t, 3, popped)
	assert.Equal(t, []int{1, 2}, s.PopAll())
	assert.Zero(t, s.Len())
}

func TestStackTruncate(t *testing.T) {
	s := Stack[string]{}
	s.Push("a", "b", "c", "d")

	assert.Nil(t, s.Truncate(4))
	assert.Equal(t, []string{"c", "d"}, s.Truncate(2))
	assert.Equal(t, 2, s.Len())

	var all []string
	for _, item := range s.All() {
		all = append(all, item)
	}
	assert.Equal(t, []string{"a", "b"}, all)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(Reverse([]int{1, 2, 3})))
	assert.Empty(t, slices.Collect(Reverse([]int(nil))))
}
