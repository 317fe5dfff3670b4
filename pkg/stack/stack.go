package stack

// Stack is a LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(val T) {
	s.items = append(s.items, val)
}

// Pop removes and returns the top element. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (val T, ok bool) {
	if len(s.items) == 0 {
		return val, false
	}
	last := len(s.items) - 1
	val = s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return val, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (val T, ok bool) {
	if len(s.items) == 0 {
		return val, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}
