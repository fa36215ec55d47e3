package ui

// Stack is a fixed-capacity LIFO. Its backing array is allocated once;
// pushing past capacity or popping an empty stack is fatal.
type Stack[T any] struct {
	name  string
	items []T
	idx   int
}

// NewStack returns a stack holding at most n items. name appears in
// overflow/underflow panics.
func NewStack[T any](name string, n int) Stack[T] {
	return Stack[T]{name: name, items: make([]T, n)}
}

func (s *Stack[T]) Push(v T) {
	expect(s.idx < len(s.items), ErrStackOverflow, "push", s.name)
	s.items[s.idx] = v
	s.idx++
}

func (s *Stack[T]) Pop() T {
	expect(s.idx > 0, ErrStackUnderflow, "pop", s.name)
	s.idx--
	return s.items[s.idx]
}

// Top returns the most recently pushed item.
func (s *Stack[T]) Top() T {
	expect(s.idx > 0, ErrStackUnderflow, "top", s.name)
	return s.items[s.idx-1]
}

// Peek returns a pointer to the top item so it can be mutated in place.
func (s *Stack[T]) Peek() *T {
	expect(s.idx > 0, ErrStackUnderflow, "peek", s.name)
	return &s.items[s.idx-1]
}

// At returns the i'th item counted from the bottom.
func (s *Stack[T]) At(i int) T { return s.items[i] }

// Items returns the live portion of the stack. The slice aliases the
// backing array.
func (s *Stack[T]) Items() []T { return s.items[:s.idx] }

func (s *Stack[T]) Len() int    { return s.idx }
func (s *Stack[T]) Cap() int    { return len(s.items) }
func (s *Stack[T]) Empty() bool { return s.idx == 0 }
func (s *Stack[T]) Reset()      { s.idx = 0 }
