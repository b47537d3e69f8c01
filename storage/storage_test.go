// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/keys"
	"github.com/ava-labs/musicvm/state"
)

var (
	tokenID = codec.CreateAddress(0, []byte("token"))
	artist  = codec.CreateAddress(1, []byte("artist"))
	buyer   = codec.CreateAddress(1, []byte("buyer"))
)

func TestTrackAddress(t *testing.T) {
	require := require.New(t)

	addr, bump, err := TrackAddress(tokenID)
	require.NoError(err)
	require.NotEqual(codec.EmptyAddress, addr)
	require.NoError(VerifyTrackAddress(addr, tokenID, bump))

	// Derivation is deterministic and bound to the token id.
	again, againBump, err := TrackAddress(tokenID)
	require.NoError(err)
	require.Equal(addr, again)
	require.Equal(bump, againBump)

	other, _, err := TrackAddress(codec.CreateAddress(0, []byte("other")))
	require.NoError(err)
	require.NotEqual(addr, other)
	require.ErrorIs(VerifyTrackAddress(other, tokenID, bump), ErrInvalidDerivation)
}

func TestHoldingAddress(t *testing.T) {
	require := require.New(t)

	a, err := HoldingAddress(artist, tokenID)
	require.NoError(err)
	b, err := HoldingAddress(buyer, tokenID)
	require.NoError(err)
	require.NotEqual(a, b)
}

func TestKeysCarryChunks(t *testing.T) {
	require := require.New(t)

	require.True(keys.VerifyValue(TrackKey(tokenID), make([]byte, MaxTrackSize)))
	require.True(keys.VerifyValue(MintKey(tokenID), make([]byte, mintRecordSize)))
	require.True(keys.VerifyValue(HoldingKey(tokenID), make([]byte, holdingRecordSize)))
	require.NotEqual(TrackKey(tokenID), MintKey(tokenID))
}

func TestTrackRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := state.MutableStorage{}

	addr, bump, err := TrackAddress(tokenID)
	require.NoError(err)
	track := &Track{
		Title:             "Song A",
		Artist:            "Artist1",
		Description:       "first single",
		MetadataURI:       "ipfs://cid",
		TokenID:           tokenID,
		Owner:             artist,
		RoyaltyPercentage: 10,
		Bump:              bump,
	}
	require.NoError(SetTrack(ctx, mu, addr, track))

	got, exists, err := GetTrack(ctx, mu, addr)
	require.NoError(err)
	require.True(exists)
	require.Equal(track, got)

	_, exists, err = GetTrack(ctx, mu, tokenID)
	require.NoError(err)
	require.False(exists)
}

func TestTrackEncoding(t *testing.T) {
	require := require.New(t)

	track := &Track{
		Title:             strings.Repeat("t", MaxTitleLen),
		Artist:            strings.Repeat("a", MaxArtistLen),
		Description:       strings.Repeat("d", MaxDescriptionLen),
		MetadataURI:       strings.Repeat("u", MaxMetadataURILen),
		RoyaltyPercentage: MaxRoyaltyPercentage,
	}
	v, err := MarshalTrack(track)
	require.NoError(err)
	require.Len(v, MaxTrackSize)
	require.Equal(590, MaxTrackSize)
	require.Equal(TrackDiscriminator, v[:DiscriminatorLen])
	// Strings are little-endian u32 length prefixed.
	require.Equal([]byte{MaxTitleLen, 0, 0, 0}, v[DiscriminatorLen:DiscriminatorLen+4])

	track.Title += "x"
	_, err = MarshalTrack(track)
	require.ErrorIs(err, ErrRecordTooLarge)
}

func TestUnmarshalTrackInvalid(t *testing.T) {
	require := require.New(t)

	_, err := UnmarshalTrack([]byte{1, 2})
	require.ErrorIs(err, ErrInvalidRecord)

	v, err := MarshalTrack(&Track{Title: "x"})
	require.NoError(err)
	v[0] ^= 0xff
	_, err = UnmarshalTrack(v)
	require.ErrorIs(err, ErrInvalidRecord)
}

func TestMintAndHolding(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := state.MutableStorage{}

	_, exists, err := GetMint(ctx, mu, tokenID)
	require.NoError(err)
	require.False(exists)

	m := &Mint{Authority: artist, Supply: 1}
	require.NoError(SetMint(ctx, mu, tokenID, m))
	got, exists, err := GetMint(ctx, mu, tokenID)
	require.NoError(err)
	require.True(exists)
	require.Equal(m, got)

	balance, err := GetBalance(ctx, mu, artist, tokenID)
	require.NoError(err)
	require.Zero(balance)

	require.NoError(SetHolding(ctx, mu, &Holding{Mint: tokenID, Owner: artist, Amount: 1}))
	balance, err = GetBalance(ctx, mu, artist, tokenID)
	require.NoError(err)
	require.Equal(uint64(1), balance)

	balance, err = GetBalance(ctx, mu, buyer, tokenID)
	require.NoError(err)
	require.Zero(balance)
}

func TestTransactionReceipt(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()
	txID := ids.GenerateTestID()

	exists, _, err := GetTransaction(ctx, db, txID)
	require.NoError(err)
	require.False(exists)

	r := &Receipt{Timestamp: 1_000, Success: false, Error: "not owner"}
	require.NoError(StoreTransaction(ctx, db, txID, r))
	exists, got, err := GetTransaction(ctx, db, txID)
	require.NoError(err)
	require.True(exists)
	require.Equal(r, got)

	okID := ids.GenerateTestID()
	ok := &Receipt{Timestamp: 2_000, Success: true, Outputs: [][]byte{tokenID[:], artist[:]}}
	require.NoError(StoreTransaction(ctx, db, okID, ok))
	_, got, err = GetTransaction(ctx, db, okID)
	require.NoError(err)
	require.Equal(ok, got)

	has, err := HasTransaction(db, txID)
	require.NoError(err)
	require.True(has)
}
