// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package queue provides a FIFO queue backed by a growable buffer.
//
// Values live in [front, back). Space behind front is reclaimed: the
// cursors reset when the queue drains, and live values slide back to
// slot 0 before the buffer grows if at least half of it is dead.
package queue

import (
	"dsa/internal/pkg/buffer"
	"dsa/internal/pkg/null"
)

// DefaultCapacity is the initial capacity used when a capacity < 1 is given.
const DefaultCapacity = 10

// Queue is a FIFO queue. Use New to create one.
type Queue[T any] struct {
	buf   *buffer.Buffer[T]
	front int
	back  int
}

// New returns an empty queue that holds capacity values before it grows.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Queue[T]{buf: buffer.New[T](capacity)}
}

// Enqueue appends v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	if q.back == q.buf.Cap() {
		if q.front > 0 && q.front*2 >= q.buf.Cap() {
			q.buf.Slide(q.front, q.back)
			q.back -= q.front
			q.front = 0
		} else {
			q.buf.EnsureCapacity(q.back + 1)
		}
	}

	q.buf.Set(q.back, v)
	q.back++
}

// Dequeue removes and returns the front value.
func (q *Queue[T]) Dequeue() null.Null[T] {
	if q.front == q.back {
		return null.Null[T]{}
	}

	v := q.buf.Get(q.front)
	q.buf.Clear(q.front)
	q.front++

	if q.front == q.back {
		q.front, q.back = 0, 0
	}

	return v
}

// Peek returns the front value without removing it.
func (q *Queue[T]) Peek() null.Null[T] {
	if q.front == q.back {
		return null.Null[T]{}
	}

	return q.buf.Get(q.front)
}

func (q *Queue[T]) IsEmpty() bool {
	return q.front == q.back
}

func (q *Queue[T]) Len() int {
	return q.back - q.front
}

func (q *Queue[T]) Cap() int {
	return q.buf.Cap()
}
