// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package queue_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"dsa/internal/pkg/null"
	"dsa/internal/pkg/queue"
)

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()

	q := queue.New[int](0)
	values := lo.RangeFrom(1, 11)

	for _, v := range values {
		q.Enqueue(v)
	}

	require.Equal(t, 11, q.Len())
	require.Equal(t, 20, q.Cap())

	for _, v := range values {
		require.Equal(t, null.New(v), q.Dequeue())
	}

	require.False(t, q.Dequeue().Set)
	require.True(t, q.IsEmpty())
}

func TestQueue_Empty(t *testing.T) {
	t.Parallel()

	q := queue.New[string](1)

	require.False(t, q.Peek().Set)
	require.False(t, q.Dequeue().Set)
	require.Equal(t, 0, q.Len())
}

func TestQueue_Peek(t *testing.T) {
	t.Parallel()

	q := queue.New[int](2)
	q.Enqueue(0)
	q.Enqueue(1)

	require.Equal(t, null.New(0), q.Peek())
	require.Equal(t, null.New(0), q.Peek())
	require.Equal(t, 2, q.Len())
}

func TestQueue_ReusesDrainedSpace(t *testing.T) {
	t.Parallel()

	q := queue.New[int](4)

	for round := range 100 {
		for i := range 4 {
			q.Enqueue(round*4 + i)
		}

		for i := range 4 {
			require.Equal(t, round*4+i, q.Dequeue().Value)
		}
	}

	require.Equal(t, 4, q.Cap())
}

func TestQueue_SlidesInsteadOfGrowing(t *testing.T) {
	t.Parallel()

	q := queue.New[int](4)
	for i := range 4 {
		q.Enqueue(i)
	}

	q.Dequeue()
	q.Dequeue()

	// back is at capacity but half of the buffer is behind front.
	q.Enqueue(4)
	q.Enqueue(5)

	require.Equal(t, 4, q.Cap())
	require.Equal(t, 4, q.Len())

	for _, v := range []int{2, 3, 4, 5} {
		require.Equal(t, v, q.Dequeue().Value)
	}
}

func TestQueue_GrowsWhenMostlyLive(t *testing.T) {
	t.Parallel()

	q := queue.New[int](4)
	for i := range 4 {
		q.Enqueue(i)
	}

	q.Dequeue()
	q.Enqueue(4)

	require.Equal(t, 8, q.Cap())

	for _, v := range []int{1, 2, 3, 4} {
		require.Equal(t, v, q.Dequeue().Value)
	}
}

func TestQueue_Interleaved(t *testing.T) {
	t.Parallel()

	q := queue.New[int](3)
	next, want := 0, 0

	for i := range 1000 {
		q.Enqueue(next)
		next++

		if i%3 != 0 {
			require.Equal(t, want, q.Dequeue().Value)
			want++
		}
	}

	require.Equal(t, next-want, q.Len())

	for !q.IsEmpty() {
		require.Equal(t, want, q.Dequeue().Value)
		want++
	}

	require.Equal(t, next, want)
}
