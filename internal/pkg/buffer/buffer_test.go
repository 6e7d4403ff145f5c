// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dsa/internal/pkg/buffer"
	"dsa/internal/pkg/null"
)

func TestBuffer_EnsureCapacityDoubles(t *testing.T) {
	t.Parallel()

	b := buffer.New[int](4)
	require.Equal(t, 4, b.Cap())

	for i := range 4 {
		b.Set(i, i*10)
	}

	b.EnsureCapacity(5)
	require.Equal(t, 8, b.Cap())

	for i := range 4 {
		require.Equal(t, null.New(i*10), b.Get(i))
	}

	require.False(t, b.Occupied(4))
	require.False(t, b.Occupied(7))
}

func TestBuffer_EnsureCapacityStep(t *testing.T) {
	t.Parallel()

	b := buffer.NewStep[string](3, 3)
	b.Set(2, "x")

	b.EnsureCapacity(7)
	require.Equal(t, 9, b.Cap())
	require.Equal(t, "x", b.Get(2).Value)
}

func TestBuffer_NeverShrinks(t *testing.T) {
	t.Parallel()

	b := buffer.New[int](16)
	b.EnsureCapacity(2)
	require.Equal(t, 16, b.Cap())
}

func TestBuffer_GrowFromZero(t *testing.T) {
	t.Parallel()

	b := buffer.New[int](0)
	require.Equal(t, 0, b.Cap())

	b.EnsureCapacity(3)
	require.Equal(t, 4, b.Cap())
}

func TestBuffer_OutOfRangeGetIsEmpty(t *testing.T) {
	t.Parallel()

	b := buffer.New[int](2)
	require.False(t, b.Get(-1).Set)
	require.False(t, b.Get(2).Set)
	require.Panics(t, func() { b.Set(2, 1) })
}

func TestBuffer_ZeroValueIsOccupied(t *testing.T) {
	t.Parallel()

	b := buffer.New[int](2)
	b.Set(0, 0)
	require.True(t, b.Occupied(0))

	b.Clear(0)
	require.False(t, b.Occupied(0))
}

func TestBuffer_Swap(t *testing.T) {
	t.Parallel()

	b := buffer.New[int](2)
	b.Set(0, 1)
	b.Swap(0, 1)

	require.False(t, b.Occupied(0))
	require.Equal(t, null.New(1), b.Get(1))
}

func TestBuffer_Slide(t *testing.T) {
	t.Parallel()

	b := buffer.New[int](6)
	for i := range 6 {
		b.Set(i, i)
	}

	b.Slide(3, 5)

	require.Equal(t, 6, b.Cap())
	require.Equal(t, 3, b.Get(0).Value)
	require.Equal(t, 4, b.Get(1).Value)

	for i := 2; i < 6; i++ {
		require.False(t, b.Occupied(i), "slot %d", i)
	}
}
