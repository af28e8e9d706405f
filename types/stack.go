// SPDX-License-Identifier: MIT
package types

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

type (
	// Stack is a LIFO of fixed capacity.
	//
	// The backing storage is allocated once by NewStack & never grows.
	Stack[T any] struct {
		items []T
		top   int
	}
)

// Stack errors.
var (
	ErrInvalidCapacity = errors.New("invalid stack capacity")
	ErrFull            = errors.New("stack is full")
	ErrEmpty           = errors.New("stack is empty")
	ErrDestroyed       = errors.New("stack is destroyed")
)

// NewStack allocates a Stack holding at most capacity elements.
func NewStack[T any](capacity int) (s *Stack[T], err error) {
	if capacity < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
		return
	}

	s = &Stack[T]{items: make([]T, capacity)}

	return
}

// Destroy releases the backing storage.
func (s *Stack[T]) Destroy() {
	s.items = nil
	s.top = 0
}

// Push copies value onto the top of the Stack.
func (s *Stack[T]) Push(value T) (err error) {
	switch {
	case s.items == nil:
		err = ErrDestroyed
	case s.top == len(s.items):
		err = fmt.Errorf("%w: capacity %d", ErrFull, len(s.items))
	default:
		s.items[s.top] = value
		s.top++
	}

	return
}

// Peek obtains the top element without removing it.
func (s *Stack[T]) Peek() (value T, err error) {
	if err = s.check(); err != nil {
		return
	}
	value = s.items[s.top-1]

	return
}

// Pop removes the top element, returning it.
func (s *Stack[T]) Pop() (value T, err error) {
	if value, err = s.Peek(); err != nil {
		return
	}

	var zero T
	s.top--
	s.items[s.top] = zero

	return
}

// Size is the current element count.
func (s *Stack[T]) Size() int { return s.top }

// Cap is the maximum element count.
func (s *Stack[T]) Cap() int { return len(s.items) }

// Values copies the stack content, bottom first.
func (s *Stack[T]) Values() []T { return slices.Clone(s.items[:s.top]) }

func (s *Stack[T]) check() error {
	if s.items == nil {
		return ErrDestroyed
	}
	if s.top == 0 {
		return ErrEmpty
	}

	return nil
}
