// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeChunks(t *testing.T) {
	require := require.New(t)
	key := EncodeChunks([]byte("track"), 10)
	require.Len(key, len("track")+2)

	chunks, ok := MaxChunks(key)
	require.True(ok)
	require.Equal(uint16(10), chunks)

	_, ok = MaxChunks([]byte{1})
	require.False(ok)
	require.False(Valid("a"))
	require.True(Valid(string(key)))
}

func TestNumChunks(t *testing.T) {
	tests := []struct {
		size     int
		expected uint16
	}{
		{0, 0},
		{1, 1},
		{64, 1},
		{65, 2},
		{590, 10},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, ChunksFor(tt.size))
	}
}

func TestVerifyValue(t *testing.T) {
	require := require.New(t)
	key := EncodeChunks([]byte("k"), 1)
	require.True(VerifyValue(key, make([]byte, 64)))
	require.False(VerifyValue(key, make([]byte, 65)))
	require.False(VerifyValue([]byte{1}, nil))
}
