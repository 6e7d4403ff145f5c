// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package dfs implements an iterative depth-first traversal driven by
// [stack.Stack].
//
// Neighbours are pushed in the order they are listed, so the last listed
// neighbour is explored first.
package dfs

import (
	"dsa/internal/pkg/stack"
)

// DefaultCapacity is the initial stack capacity.
const DefaultCapacity = 30

// Graph is an adjacency list. Order of neighbours is significant.
type Graph[K comparable] map[K][]K

type options struct {
	capacity int
}

type Option func(*options)

// WithCapacity sets the initial capacity of the traversal stack.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Order returns vertices reachable from start in visiting order.
// The result is empty if start is not a vertex of g.
func Order[K comparable](g Graph[K], start K, opts ...Option) []K {
	var order []K

	Walk(g, start, func(v K) bool {
		order = append(order, v)
		return true
	}, opts...)

	return order
}

// Walk calls visit for each vertex reachable from start, each at most once.
// Traversal stops when visit returns false.
func Walk[K comparable](g Graph[K], start K, visit func(K) bool, opts ...Option) {
	if _, ok := g[start]; !ok {
		return
	}

	o := options{capacity: DefaultCapacity}
	for _, fn := range opts {
		fn(&o)
	}

	visited := make(map[K]struct{}, len(g))

	s := stack.New[K](o.capacity)
	s.Push(start)

	for {
		v, ok := s.Pop().Get()
		if !ok {
			return
		}

		if _, seen := visited[v]; seen {
			continue
		}

		visited[v] = struct{}{}
		if !visit(v) {
			return
		}

		for _, n := range g[v] {
			if _, seen := visited[n]; !seen {
				s.Push(n)
			}
		}
	}
}
