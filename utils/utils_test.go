// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSubDirectory(t *testing.T) {
	require := require.New(t)

	p, err := InitSubDirectory(t.TempDir(), "db")
	require.NoError(err)
	require.Equal("db", filepath.Base(p))
	info, err := os.Stat(p)
	require.NoError(err)
	require.True(info.IsDir())
}

func TestToID(t *testing.T) {
	require := require.New(t)

	require.Equal(ToID([]byte("genesis")), ToID([]byte("genesis")))
	require.NotEqual(ToID([]byte("genesis")), ToID(nil))
}

func TestFormatBalance(t *testing.T) {
	require := require.New(t)

	testCases := []struct {
		input    uint64
		decimals uint8
		expected string
	}{
		{1, 0, "1"},
		{0, 0, "0"},
		{1000000000, 9, "1.000000000"},
		{123456789, 9, "0.123456789"},
		{1234567890, 9, "1.234567890"},
		{25, 2, "0.25"},
	}
	for _, tc := range testCases {
		require.Equal(tc.expected, FormatBalance(tc.input, tc.decimals))
	}
}

func TestUnixRMilli(t *testing.T) {
	require := require.New(t)

	require.Equal(int64(61_000), UnixRMilli(1_999, 60_000))
	require.Equal(int64(2_000), UnixRMilli(2_000, 0))
	require.Zero(UnixRMilli(-1, 0) % 1_000)
}
