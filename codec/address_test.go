// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	require := require.New(t)
	addrID := ids.GenerateTestID()

	addr := CreateAddress(0, addrID[:])
	addrStr, err := addr.MarshalText()
	require.NoError(err)

	var parsedAddr Address
	require.NoError(parsedAddr.UnmarshalText(addrStr))
	require.Equal(addr, parsedAddr)
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)
	addrID := ids.GenerateTestID()

	addr := CreateAddress(0, addrID[:])

	addrJSONBytes, err := json.Marshal(addr)
	require.NoError(err)

	var parsedAddr Address
	require.NoError(json.Unmarshal(addrJSONBytes, &parsedAddr))
	require.Equal(addr, parsedAddr)
}

func TestCreateAddressDistinctTypes(t *testing.T) {
	require := require.New(t)
	addrID := ids.GenerateTestID()

	require.NotEqual(CreateAddress(0, addrID[:]), CreateAddress(1, addrID[:]))
	require.Equal(CreateAddress(1, addrID[:]), CreateAddress(1, addrID[:]))
}

func TestParseAddress(t *testing.T) {
	require := require.New(t)

	// The system program is the all-zero key.
	addr, err := ParseAddress("11111111111111111111111111111111")
	require.NoError(err)
	require.Equal(EmptyAddress, addr)
	require.Equal("11111111111111111111111111111111", EmptyAddress.String())

	_, err = ParseAddress("1111")
	require.ErrorIs(err, ErrInvalidAddress)

	_, err = ParseAddress("0OIl")
	require.Error(err)
}

func TestToAddress(t *testing.T) {
	require := require.New(t)

	_, err := ToAddress(make([]byte, AddressLen-1))
	require.ErrorIs(err, ErrInvalidAddress)

	b := make([]byte, AddressLen)
	b[0] = 7
	addr, err := ToAddress(b)
	require.NoError(err)
	require.Equal(byte(7), addr[0])
}
