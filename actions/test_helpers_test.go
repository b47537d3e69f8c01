// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/musicvm/chain/chaintest"
	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/consts"
	"github.com/ava-labs/musicvm/state"
	"github.com/ava-labs/musicvm/storage"
	"github.com/ava-labs/musicvm/token"
)

var (
	artist  = codec.CreateAddress(0, []byte("Artist1"))
	buyer   = codec.CreateAddress(0, []byte("Buyer1"))
	tokenID = codec.CreateAddress(0, []byte("M"))

	songA = TrackFields{
		Title:             "Song A",
		Artist:            "Artist1",
		Description:       "debut single",
		MetadataURI:       "ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		RoyaltyPercentage: 10,
	}
)

func trackAddress(t testing.TB, id codec.Address) codec.Address {
	addr, _, err := storage.TrackAddress(id)
	require.NoError(t, err)
	return addr
}

// issuedState returns a store where [owner] was issued the Track for [id].
func issuedState(t testing.TB, owner codec.Address, id codec.Address) *chaintest.InMemoryStore {
	store := chaintest.NewInMemoryStore()
	_, err := chaintest.Execute(
		context.Background(),
		&IssueTrack{TrackFields: songA, TokenID: id},
		chaintest.NewRules(),
		store,
		0,
		owner,
		ids.GenerateTestID(),
	)
	require.NoError(t, err)
	return store
}

// mintedState returns a store where [owner] holds the single unit of [id]
// and no Track is bound to it yet.
func mintedState(t testing.TB, owner codec.Address, id codec.Address) *chaintest.InMemoryStore {
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	program := token.NewStateProgram()
	require.NoError(t, program.InitializeMint(ctx, store, id, owner, consts.TrackDecimals))
	require.NoError(t, program.MintTo(ctx, store, id, owner, owner, consts.TrackSupply))
	return store
}

func requireNoTrack(ctx context.Context, t *testing.T, im state.Immutable, id codec.Address) {
	_, exists, err := storage.GetTrack(ctx, im, trackAddress(t, id))
	require.NoError(t, err)
	require.False(t, exists)
}

func requireBalance(ctx context.Context, t *testing.T, im state.Immutable, owner codec.Address, id codec.Address, expected uint64) {
	balance, err := storage.GetBalance(ctx, im, owner, id)
	require.NoError(t, err)
	require.Equal(t, expected, balance)
}

func requireOwner(ctx context.Context, t *testing.T, im state.Immutable, id codec.Address, owner codec.Address) *storage.Track {
	track, exists, err := storage.GetTrack(ctx, im, trackAddress(t, id))
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, owner, track.Owner)
	return track
}
