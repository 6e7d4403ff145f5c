// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package stack provides a LIFO stack backed by a growable buffer.
package stack

import (
	"dsa/internal/pkg/buffer"
	"dsa/internal/pkg/null"
)

type Stack[T any] struct {
	buf *buffer.Buffer[T]
	top int // -1 when empty
}

// New returns an empty stack that holds capacity elements before it grows.
// Storage doubles when full.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		buf: buffer.New[T](capacity),
		top: -1,
	}
}

// Push puts v on top of the stack. It always succeeds.
func (s *Stack[T]) Push(v T) bool {
	s.buf.EnsureCapacity(s.top + 2)

	s.top++
	s.buf.Set(s.top, v)

	return true
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() null.Null[T] {
	if s.top == -1 {
		return null.Null[T]{}
	}

	v := s.buf.Get(s.top)
	s.buf.Clear(s.top)
	s.top--

	return v
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() null.Null[T] {
	if s.top == -1 {
		return null.Null[T]{}
	}

	return s.buf.Get(s.top)
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top == -1
}

func (s *Stack[T]) Len() int {
	return s.top + 1
}

func (s *Stack[T]) Cap() int {
	return s.buf.Cap()
}
