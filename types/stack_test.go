// SPDX-License-Identifier: MIT
package types

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewStack(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  error
	}{
		{name: "valid", capacity: 4},
		{name: "single element", capacity: 1},
		{name: "zero capacity", capacity: 0, wantErr: ErrInvalidCapacity},
		{name: "negative capacity", capacity: -3, wantErr: ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStack[float64](tt.capacity)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewStack() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				if got != nil {
					t.Errorf("NewStack() = %v, want nil", got)
				}
				return
			}
			if got.Cap() != tt.capacity || got.Size() != 0 {
				t.Errorf("NewStack() cap = %d size = %d, want cap %d size 0", got.Cap(), got.Size(), tt.capacity)
			}
		})
	}
}

func TestStack_PushPopPeek(t *testing.T) {
	s, err := NewStack[int](3)
	if err != nil {
		t.Fatalf("NewStack() error = %v", err)
	}

	for _, v := range []int{1, 2, 3} {
		if err = s.Push(v); err != nil {
			t.Fatalf("Stack.Push(%d) error = %v", v, err)
		}
	}
	if err = s.Push(4); !errors.Is(err, ErrFull) {
		t.Errorf("Stack.Push() on full stack error = %v, want %v", err, ErrFull)
	}
	if got := s.Values(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Stack.Values() = %v, want [1 2 3]", got)
	}

	top, err := s.Peek()
	if err != nil || top != 3 {
		t.Errorf("Stack.Peek() = %d, %v, want 3, nil", top, err)
	}
	if s.Size() != 3 {
		t.Errorf("Stack.Size() after Peek = %d, want 3", s.Size())
	}

	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		if err != nil || got != want {
			t.Errorf("Stack.Pop() = %d, %v, want %d, nil", got, err, want)
		}
	}

	if _, err = s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Stack.Pop() on empty stack error = %v, want %v", err, ErrEmpty)
	}
	if _, err = s.Peek(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Stack.Peek() on empty stack error = %v, want %v", err, ErrEmpty)
	}
}

func TestStack_Destroy(t *testing.T) {
	s, err := NewStack[string](2)
	if err != nil {
		t.Fatalf("NewStack() error = %v", err)
	}
	_ = s.Push("a")
	s.Destroy()

	if s.Size() != 0 || s.Cap() != 0 {
		t.Errorf("destroyed Stack size = %d cap = %d, want 0 0", s.Size(), s.Cap())
	}
	if err = s.Push("b"); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Stack.Push() after Destroy error = %v, want %v", err, ErrDestroyed)
	}
	if _, err = s.Peek(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Stack.Peek() after Destroy error = %v, want %v", err, ErrDestroyed)
	}
}

func BenchmarkStack_PushPop(b *testing.B) {
	s, _ := NewStack[float64](1024)

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_ = s.Push(float64(n))
		_, _ = s.Pop()
	}
}
