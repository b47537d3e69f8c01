// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/consts"
	"github.com/ava-labs/musicvm/keys"
)

var (
	TrackChunks   = keys.ChunksFor(MaxTrackSize)
	MintChunks    = keys.ChunksFor(mintRecordSize)
	HoldingChunks = keys.ChunksFor(holdingRecordSize)
)

// TrackAddress derives the address of the Track bound to [tokenID] from the
// seeds ("music-nft", tokenID) under the program ID. The returned bump is the
// first value that pushes the address off the ed25519 curve.
func TrackAddress(tokenID codec.Address) (codec.Address, uint8, error) {
	addr, bump, err := common.FindProgramAddress(
		[][]byte{[]byte(consts.TrackSeed), tokenID[:]},
		consts.ProgramID,
	)
	if err != nil {
		return codec.EmptyAddress, 0, fmt.Errorf("%w: %w", ErrInvalidDerivation, err)
	}
	return codec.Address(addr), bump, nil
}

// VerifyTrackAddress re-derives the Track address from [tokenID] and the
// stored [bump] and checks that it equals [addr].
func VerifyTrackAddress(addr codec.Address, tokenID codec.Address, bump uint8) error {
	derived, err := common.CreateProgramAddress(
		[][]byte{[]byte(consts.TrackSeed), tokenID[:], {bump}},
		consts.ProgramID,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDerivation, err)
	}
	if codec.Address(derived) != addr {
		return fmt.Errorf("%w: bump %d does not derive %s", ErrInvalidDerivation, bump, addr)
	}
	return nil
}

// HoldingAddress derives the associated token account of [owner] for
// [mint].
func HoldingAddress(owner codec.Address, mint codec.Address) (codec.Address, error) {
	addr, _, err := common.FindAssociatedTokenAddress(
		common.PublicKeyFromBytes(owner[:]),
		common.PublicKeyFromBytes(mint[:]),
	)
	if err != nil {
		return codec.EmptyAddress, fmt.Errorf("%w: %w", ErrInvalidDerivation, err)
	}
	return codec.Address(addr), nil
}

// [trackPrefix] + [track address] + [chunks]
func TrackKey(addr codec.Address) []byte {
	return prefixedKey(trackPrefix, addr, TrackChunks)
}

// [mintPrefix] + [token id] + [chunks]
func MintKey(mint codec.Address) []byte {
	return prefixedKey(mintPrefix, mint, MintChunks)
}

// [holdingPrefix] + [holding address] + [chunks]
func HoldingKey(holding codec.Address) []byte {
	return prefixedKey(holdingPrefix, holding, HoldingChunks)
}

func prefixedKey(prefix byte, addr codec.Address, chunks uint16) []byte {
	k := make([]byte, 1+codec.AddressLen, 1+codec.AddressLen+consts.Uint16Len)
	k[0] = prefix
	copy(k[1:], addr[:])
	return keys.EncodeChunks(k, chunks)
}
