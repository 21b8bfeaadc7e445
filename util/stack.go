package util

import "iter"

// Stack is a LIFO sequence. The zero value is an empty stack.
type Stack[A any] struct {
	items []A
}

func (s *Stack[A]) Push(v ...A) {
	s.items = append(s.items, v...)
}

func (s *Stack[A]) Pop() (ret A, ok bool) {
	if len(s.items) <= 0 {
		return ret, false
	}
	lastIndex := len(s.items) - 1
	ret = s.items[lastIndex]
	var zero A
	s.items[lastIndex] = zero
	s.items = s.items[:lastIndex]
	return ret, true
}

func (s *Stack[A]) Peek() (ret A, ok bool) {
	if len(s.items) <= 0 {
		return ret, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[A]) Len() int {
	return len(s.items)
}

// PopAll empties the stack, returning its items from bottom to top.
func (s *Stack[A]) PopAll() []A {
	defer func() {
		s.items = make([]A, 0)
	}()
	return s.items
}

// Truncate pops every item above height n, returning them from bottom to top.
func (s *Stack[A]) Truncate(n int) []A {
	if n >= len(s.items) {
		return nil
	}
	if n < 0 {
		n = 0
	}
	popped := append([]A(nil), s.items[n:]...)
	s.items = s.items[:n]
	return popped
}

// All iterates from the bottom of the stack to the top.
func (s *Stack[A]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for i, item := range s.items {
			if !yield(i, item) {
				return
			}
		}
	}
}
