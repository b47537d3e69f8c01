// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/musicvm/consts"
)

func TestPackerID(t *testing.T) {
	require := require.New(t)
	wp := NewWriter(consts.IDLen, consts.IDLen)
	id := ids.GenerateTestID()
	wp.PackID(id)
	require.NoError(wp.Err())

	rp := NewReader(wp.Bytes(), consts.IDLen)
	var unpacked ids.ID
	rp.UnpackID(true, &unpacked)
	require.NoError(rp.Err())
	require.Equal(id, unpacked)
	require.True(rp.Empty())

	// Empty ID is rejected when required
	rp = NewReader(make([]byte, consts.IDLen), consts.IDLen)
	rp.UnpackID(true, &unpacked)
	require.ErrorIs(rp.Err(), ErrFieldNotPopulated)
}

func TestPackerAddress(t *testing.T) {
	require := require.New(t)
	wp := NewWriter(AddressLen, AddressLen)
	addr := CreateAddress(1, []byte("track"))
	wp.PackAddress(addr)
	require.NoError(wp.Err())

	rp := NewReader(wp.Bytes(), AddressLen)
	var unpacked Address
	rp.UnpackAddress(true, &unpacked)
	require.NoError(rp.Err())
	require.Equal(addr, unpacked)

	rp = NewReader(make([]byte, AddressLen), AddressLen)
	rp.UnpackAddress(true, &unpacked)
	require.ErrorIs(rp.Err(), ErrFieldNotPopulated)
}

func TestPackerUnpackBytes(t *testing.T) {
	require := require.New(t)
	wp := NewWriter(64, consts.NetworkSizeLimit)
	wp.PackBytes([]byte("song a"))
	wp.PackString("artist1")
	require.NoError(wp.Err())

	rp := NewReader(wp.Bytes(), consts.NetworkSizeLimit)
	var b []byte
	rp.UnpackBytes(10, true, &b)
	require.Equal([]byte("song a"), b)
	require.Equal("artist1", rp.UnpackString(10, true))
	require.NoError(rp.Err())
	require.True(rp.Empty())
}

func TestPackerUnpackBytesOverLimit(t *testing.T) {
	require := require.New(t)
	wp := NewWriter(64, consts.NetworkSizeLimit)
	wp.PackString("this title is too long")

	rp := NewReader(wp.Bytes(), consts.NetworkSizeLimit)
	_ = rp.UnpackString(4, true)
	require.Error(rp.Err())
}

func TestPackerRequiredUnpack(t *testing.T) {
	require := require.New(t)
	wp := NewWriter(consts.Uint64Len, consts.Uint64Len)
	wp.PackUint64(0)

	rp := NewReader(wp.Bytes(), consts.Uint64Len)
	require.Zero(rp.UnpackUint64(true))
	require.ErrorIs(rp.Err(), ErrFieldNotPopulated)
}

func TestPackerLimit(t *testing.T) {
	require := require.New(t)
	wp := NewWriter(consts.Uint64Len, consts.Uint64Len)
	wp.PackUint64(1)
	require.NoError(wp.Err())
	wp.PackByte(1)
	require.Error(wp.Err())
}
