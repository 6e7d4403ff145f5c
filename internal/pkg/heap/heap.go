// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package heap provides an implementation of a binary max-heap.
// A binary max-heap is a complete tree with the property that each node
// is the maximum-valued node in its subtree.
//
// Nodes are stored 1-indexed: slot 0 is never used, the root is at 1 and
// the children of i are at 2i and 2i+1. Any node, not only the root,
// can be deleted by index.
package heap

import (
	"golang.org/x/exp/constraints"

	"dsa/internal/pkg/assert"
	"dsa/internal/pkg/buffer"
	"dsa/internal/pkg/null"
)

// DefaultCapacity is the initial capacity used when a capacity < 1 is given.
const DefaultCapacity = 100

type Lesser[T any] interface {
	Less(b T) bool
}

// Heap implements a binary max-heap.
type Heap[T any] struct {
	buf  *buffer.Buffer[T]
	less func(a, b T) bool
	last int
}

// New returns a new heap ordered by the natural ordering of T.
func New[T constraints.Ordered](capacity int) *Heap[T] {
	return NewFunc(capacity, func(a, b T) bool {
		return a < b
	})
}

// NewLesser returns a new heap ordered by T's Less method.
func NewLesser[T Lesser[T]](capacity int) *Heap[T] {
	return NewFunc(capacity, func(a, b T) bool {
		return a.Less(b)
	})
}

// NewFunc returns a new heap ordered by less.
// The heap can hold capacity values before it grows, and grows by capacity
// slots each time.
func NewFunc[T any](capacity int, less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic("missing less function")
	}

	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Heap[T]{
		buf:  buffer.NewStep[T](capacity+1, capacity),
		less: less,
	}
}

func parent(i int) int { return i / 2 }
func left(i int) int   { return i * 2 }
func right(i int) int  { return left(i) + 1 }

// Insert pushes the given element onto the heap.
func (h *Heap[T]) Insert(x T) {
	h.buf.EnsureCapacity(h.last + 2)

	h.last++
	h.buf.Set(h.last, x)

	h.up(h.last)
}

// Peek returns the maximum element without removing it.
func (h *Heap[T]) Peek() null.Null[T] {
	if h.last == 0 {
		return null.Null[T]{}
	}

	return h.buf.Get(1)
}

// DeleteRoot removes and returns the maximum element.
func (h *Heap[T]) DeleteRoot() null.Null[T] {
	x := h.Peek()
	if x.Set {
		h.Delete(1)
	}

	return x
}

// Delete removes the element at index, 1 <= index <= Len().
// It reports false and leaves the heap untouched for any other index.
func (h *Heap[T]) Delete(index int) bool {
	if index < 1 || index > h.last {
		return false
	}

	if index == h.last {
		h.buf.Clear(h.last)
		h.last--
		return true
	}

	h.buf.Set(index, h.at(h.last))
	h.buf.Clear(h.last)
	h.last--

	// the moved value can only be out of order in one direction.
	if index > 1 && h.less(h.at(parent(index)), h.at(index)) {
		h.up(index)
	} else {
		h.down(index)
	}

	return true
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return h.last
}

// Cap returns how many elements fit before the heap grows.
func (h *Heap[T]) Cap() int {
	return h.buf.Cap() - 1
}

// At returns the raw slot at index. Slot 0 and slots past Len() are empty.
func (h *Heap[T]) At(index int) null.Null[T] {
	return h.buf.Get(index)
}

// Values returns the elements in level order.
func (h *Heap[T]) Values() []T {
	s := make([]T, 0, h.last)
	for i := 1; i <= h.last; i++ {
		s = append(s, h.at(i))
	}

	return s
}

// Valid reports whether every parent is >= its children, slots [1, Len()]
// are all set, and every other slot is empty.
func (h *Heap[T]) Valid() bool {
	for i := 0; i < h.buf.Cap(); i++ {
		live := i >= 1 && i <= h.last
		if h.buf.Occupied(i) != live {
			return false
		}
	}

	for i := 2; i <= h.last; i++ {
		if h.less(h.at(parent(i)), h.at(i)) {
			return false
		}
	}

	return true
}

func (h *Heap[T]) at(i int) T {
	v := h.buf.Get(i)
	assert.True(v.Set, "heap: read from empty slot")

	return v.Value
}

func (h *Heap[T]) up(i int) {
	for i > 1 {
		p := parent(i)
		if !h.less(h.at(p), h.at(i)) {
			break
		}

		h.buf.Swap(i, p)
		i = p
	}
}

func (h *Heap[T]) down(i int) {
	for {
		l := left(i)
		if l > h.last || l < 0 { // `l < 0` in case of overflow
			break
		}

		// find the largest of i and its children, left wins ties.
		j := i
		if h.less(h.at(j), h.at(l)) {
			j = l
		}

		if r := right(i); r <= h.last && h.less(h.at(j), h.at(r)) {
			j = r
		}

		if j == i {
			break
		}

		h.buf.Swap(i, j)
		i = j
	}
}
