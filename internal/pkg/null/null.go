// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package null

import (
	"encoding/json"
)

var _ json.Marshaler = Null[any]{}

// Null is a nullable type.
// The zero value is empty, so a stored zero is still distinguishable from "nothing".
type Null[T any] struct {
	Value T
	Set   bool
}

func New[T any](t T) Null[T] {
	return Null[T]{
		Value: t,
		Set:   true,
	}
}

// Get returns the value and whether it is set, in comma-ok form.
func (t Null[T]) Get() (T, bool) {
	return t.Value, t.Set
}

var nullBytes = []byte("null")

// MarshalJSON encodes an empty value as `null`.
func (t Null[T]) MarshalJSON() ([]byte, error) {
	if !t.Set {
		return nullBytes, nil
	}

	return json.Marshal(t.Value)
}
