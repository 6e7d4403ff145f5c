// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package trie

import (
	"cmp"
	"slices"
)

// Words is a trie of strings, one token per rune.
type Words struct {
	t Trie[rune]
}

func NewWords(words ...string) *Words {
	w := &Words{t: Trie[rune]{Root: NewNode[rune](false)}}
	for _, word := range words {
		w.Add(word)
	}

	return w
}

func (w *Words) Add(word string) {
	w.t.Insert([]rune(word))
}

// Has reports whether word was added. Case-sensitive, a nil *Words is empty.
func (w *Words) Has(word string) bool {
	if w == nil {
		return false
	}

	return Search(&w.t, []rune(word))
}

// IsPrefix reports whether some added word starts with prefix.
func (w *Words) IsPrefix(prefix string) bool {
	if w == nil {
		return false
	}

	return w.t.HasPrefix([]rune(prefix))
}

// Complete returns every added word starting with prefix,
// sorted by length and then lexically.
func (w *Words) Complete(prefix string) []string {
	if w == nil {
		return nil
	}

	var s []string

	w.t.Walk([]rune(prefix), func(word []rune) bool {
		s = append(s, string(word))
		return true
	})

	slices.SortFunc(s, func(a, b string) int {
		if c := cmp.Compare(len([]rune(a)), len([]rune(b))); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	return s
}

func (w *Words) Len() int {
	if w == nil {
		return 0
	}

	return w.t.Len()
}

// Trie exposes the underlying rune trie.
func (w *Words) Trie() *Trie[rune] {
	if w == nil {
		return nil
	}

	return &w.t
}
