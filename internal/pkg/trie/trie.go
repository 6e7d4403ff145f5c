// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package trie implements a prefix tree over any comparable token type.
//
// A word is a sequence of tokens. Only nodes reached by a word that was
// inserted as a whole are entries, so a prefix of an inserted word is not
// itself a match unless it was inserted too.
package trie

import (
	"slices"

	"dsa/internal/pkg/queue"
)

// Node is one token position in a trie.
type Node[K comparable] struct {
	// IsEntry is true iff the path from the root to this node spells an inserted word.
	IsEntry  bool
	Children map[K]*Node[K]
}

// NewNode returns a node with an empty child map.
func NewNode[K comparable](isEntry bool) *Node[K] {
	return &Node[K]{
		IsEntry:  isEntry,
		Children: make(map[K]*Node[K]),
	}
}

// Trie owns a single root node. The zero value is usable: the root is
// created on first insert.
type Trie[K comparable] struct {
	Root *Node[K]
}

// New returns an empty trie.
func New[K comparable]() *Trie[K] {
	return NewWithRoot[K](nil)
}

// NewWithRoot returns a trie using root. A nil root is replaced by a new,
// non-entry node.
func NewWithRoot[K comparable](root *Node[K]) *Trie[K] {
	if root == nil {
		root = NewNode[K](false)
	}

	return &Trie[K]{Root: root}
}

// Insert adds word as an entry, creating missing nodes along its path.
// Inserting the empty word marks the root.
func (t *Trie[K]) Insert(word []K) {
	if t.Root == nil {
		t.Root = NewNode[K](false)
	}

	current := t.Root
	for _, k := range word {
		child, ok := current.Children[k]
		if !ok {
			if current.Children == nil {
				current.Children = make(map[K]*Node[K])
			}

			child = NewNode[K](false)
			current.Children[k] = child
		}

		current = child
	}

	current.IsEntry = true
}

// Search reports whether word was inserted into t as a complete entry.
// A nil trie or a trie without root contains nothing.
func Search[K comparable](t *Trie[K], word []K) bool {
	if t == nil {
		return false
	}

	n := t.find(word)

	return n != nil && n.IsEntry
}

// Contains is the method form of [Search].
func (t *Trie[K]) Contains(word []K) bool {
	return Search(t, word)
}

// HasPrefix reports whether any path in the trie starts with prefix,
// whether or not that path ends at an entry.
func (t *Trie[K]) HasPrefix(prefix []K) bool {
	if t == nil {
		return false
	}

	return t.find(prefix) != nil
}

// Walk calls fn for every entry that starts with prefix, shortest first.
// The order of entries of equal length is unspecified.
// Walking stops early when fn returns false.
func (t *Trie[K]) Walk(prefix []K, fn func(word []K) bool) {
	if t == nil {
		return
	}

	start := t.find(prefix)
	if start == nil {
		return
	}

	type pending struct {
		node *Node[K]
		word []K
	}

	q := queue.New[pending](len(start.Children) + 1)
	q.Enqueue(pending{node: start, word: slices.Clone(prefix)})

	for {
		item, ok := q.Dequeue().Get()
		if !ok {
			return
		}

		if item.node.IsEntry && !fn(item.word) {
			return
		}

		for k, child := range item.node.Children {
			q.Enqueue(pending{node: child, word: slices.Concat(item.word, []K{k})})
		}
	}
}

// Len returns the number of entries.
func (t *Trie[K]) Len() int {
	var n int

	t.Walk(nil, func([]K) bool {
		n++
		return true
	})

	return n
}

func (t *Trie[K]) find(word []K) *Node[K] {
	current := t.Root
	if current == nil {
		return nil
	}

	for _, k := range word {
		child, ok := current.Children[k]
		if !ok {
			return nil
		}

		current = child
	}

	return current
}
