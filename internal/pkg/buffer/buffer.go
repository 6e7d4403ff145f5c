// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package buffer provides a growable array of optional slots.
//
// A Buffer only knows its capacity. Logical length belongs to the caller
// (heap, stack, queue), which decides which slots are live.
package buffer

import (
	"dsa/internal/pkg/null"
)

// Buffer is a contiguous sequence of optional slots.
// Capacity is monotonic: it grows on demand and never shrinks.
type Buffer[T any] struct {
	slots []null.Null[T]
	step  int // 0 means doubling
}

// New returns a buffer with the given capacity that doubles when it grows.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{
		slots: make([]null.Null[T], max(capacity, 0)),
	}
}

// NewStep returns a buffer with the given capacity that grows by a fixed step.
// A step < 1 falls back to doubling.
func NewStep[T any](capacity, step int) *Buffer[T] {
	b := New[T](capacity)
	b.step = max(step, 0)

	return b
}

// Cap returns the number of usable slots.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// EnsureCapacity guarantees at least n usable slots.
// Existing slots keep their index and value.
func (b *Buffer[T]) EnsureCapacity(n int) {
	c := len(b.slots)
	if n <= c {
		return
	}

	for c < n {
		if b.step > 0 {
			c += b.step
		} else {
			c = max(c*2, 1)
		}
	}

	slots := make([]null.Null[T], c)
	copy(slots, b.slots)
	b.slots = slots
}

// Get returns slot i. Reads outside [0, Cap()) are empty.
func (b *Buffer[T]) Get(i int) null.Null[T] {
	if i < 0 || i >= len(b.slots) {
		return null.Null[T]{}
	}

	return b.slots[i]
}

// Occupied reports whether slot i holds a value.
func (b *Buffer[T]) Occupied(i int) bool {
	return b.Get(i).Set
}

// Set stores v in slot i. i must be inside [0, Cap()).
func (b *Buffer[T]) Set(i int, v T) {
	b.slots[i] = null.New(v)
}

// Clear empties slot i. i must be inside [0, Cap()).
func (b *Buffer[T]) Clear(i int) {
	b.slots[i] = null.Null[T]{}
}

func (b *Buffer[T]) Swap(i, j int) {
	b.slots[i], b.slots[j] = b.slots[j], b.slots[i]
}

// Slide moves slots [from, to) to the front of the buffer and empties
// every slot after them. Capacity is unchanged.
func (b *Buffer[T]) Slide(from, to int) {
	n := copy(b.slots, b.slots[from:to])
	clear(b.slots[n:])
}
