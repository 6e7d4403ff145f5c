// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package null_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"dsa/internal/pkg/null"
)

func TestNull_Zero(t *testing.T) {
	t.Parallel()

	var n null.Null[int]
	require.False(t, n.Set)

	n = null.New(0)
	require.True(t, n.Set)
	require.Equal(t, 0, n.Value)
}

func TestNull_Get(t *testing.T) {
	t.Parallel()

	v, ok := null.New(-1).Get()
	require.True(t, ok)
	require.Equal(t, -1, v)

	_, ok = null.Null[int]{}.Get()
	require.False(t, ok)
}

func TestNull_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal([]null.Null[string]{null.New("a"), {}})
	require.NoError(t, err)
	require.Equal(t, `["a",null]`, string(b))

	b, err = json.Marshal(null.New(0))
	require.NoError(t, err)
	require.Equal(t, `0`, string(b))
}
