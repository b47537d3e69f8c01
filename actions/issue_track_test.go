// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/musicvm/chain/chaintest"
	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/consts"
	"github.com/ava-labs/musicvm/state"
	"github.com/ava-labs/musicvm/storage"
	"github.com/ava-labs/musicvm/token"
)

func TestIssueTrackAction(t *testing.T) {
	addr := trackAddress(t, tokenID)
	actionID := ids.GenerateTestID()
	derivedID := codec.CreateAddress(consts.IssueTrackID, actionID[:])
	derivedAddr := trackAddress(t, derivedID)

	// A mint that exists without a Track.
	mintOnly := chaintest.NewInMemoryStore()
	require.NoError(t, storage.SetMint(context.Background(), mintOnly, tokenID, &storage.Mint{Authority: buyer}))

	tests := []chaintest.ActionTest{
		{
			Name:   "RoyaltyAboveHundred",
			Actor:  artist,
			Action: &IssueTrack{TrackFields: withFields(func(f *TrackFields) { f.RoyaltyPercentage = 200 }), TokenID: tokenID},
			State:  chaintest.NewInMemoryStore(),
			Rules:  chaintest.NewRules(),

			ExpectedErr: ErrInvalidRoyaltyPercentage,
			Assertion: func(ctx context.Context, t *testing.T, store state.Mutable) {
				requireNoTrack(ctx, t, store, tokenID)
				_, exists, err := storage.GetMint(ctx, store, tokenID)
				require.NoError(t, err)
				require.False(t, exists)
				requireBalance(ctx, t, store, artist, tokenID, 0)
			},
		},
		{
			Name:   "DescriptionTooLong",
			Actor:  artist,
			Action: &IssueTrack{TrackFields: withFields(func(f *TrackFields) { f.Description = strings.Repeat("d", storage.MaxDescriptionLen+1) }), TokenID: tokenID},
			State:  chaintest.NewInMemoryStore(),
			Rules:  chaintest.NewRules(),

			ExpectedErr: ErrFieldTooLong,
			Assertion: func(ctx context.Context, t *testing.T, store state.Mutable) {
				requireNoTrack(ctx, t, store, tokenID)
				_, exists, err := storage.GetMint(ctx, store, tokenID)
				require.NoError(t, err)
				require.False(t, exists)
				requireBalance(ctx, t, store, artist, tokenID, 0)
			},
		},
		{
			Name:   "AlreadyIssued",
			Actor:  buyer,
			Action: &IssueTrack{TrackFields: songA, TokenID: tokenID},
			State:  issuedState(t, artist, tokenID),
			Rules:  chaintest.NewRules(),

			ExpectedErr: ErrTrackAlreadyExists,
			Assertion: func(ctx context.Context, t *testing.T, store state.Mutable) {
				requireOwner(ctx, t, store, tokenID, artist)
				requireBalance(ctx, t, store, artist, tokenID, 1)
				requireBalance(ctx, t, store, buyer, tokenID, 0)
			},
		},
		{
			Name:   "MintAlreadyExists",
			Actor:  artist,
			Action: &IssueTrack{TrackFields: songA, TokenID: tokenID},
			State:  mintOnly,
			Rules:  chaintest.NewRules(),

			ExpectedErr: token.ErrMintAlreadyExists,
			Assertion: func(ctx context.Context, t *testing.T, store state.Mutable) {
				// The Track written before the mint failed is rolled back.
				requireNoTrack(ctx, t, store, tokenID)
				requireBalance(ctx, t, store, artist, tokenID, 0)
			},
		},
		{
			Name:   "Issue",
			Actor:  artist,
			Action: &IssueTrack{TrackFields: songA, TokenID: tokenID},
			State:  chaintest.NewInMemoryStore(),
			Rules:  chaintest.NewRules(),

			ExpectedOutputs: [][]byte{tokenID[:], addr[:]},
			Assertion: func(ctx context.Context, t *testing.T, store state.Mutable) {
				require := require.New(t)
				requireOwner(ctx, t, store, tokenID, artist)
				requireBalance(ctx, t, store, artist, tokenID, 1)

				mint, exists, err := storage.GetMint(ctx, store, tokenID)
				require.NoError(err)
				require.True(exists)
				require.Equal(&storage.Mint{Authority: artist, Supply: 1, Decimals: 0}, mint)
			},
		},
		{
			Name:     "IssueGeneratesTokenID",
			Actor:    artist,
			ActionID: actionID,
			Action:   &IssueTrack{TrackFields: songA},
			State:    chaintest.NewInMemoryStore(),
			Rules:    chaintest.NewRules(),

			ExpectedOutputs: [][]byte{derivedID[:], derivedAddr[:]},
			Assertion: func(ctx context.Context, t *testing.T, store state.Mutable) {
				requireOwner(ctx, t, store, derivedID, artist)
				requireBalance(ctx, t, store, artist, derivedID, 1)
			},
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}

func TestIssueTrackMintFailureRollsBack(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	errMint := errors.New("mint failed")
	program := token.NewMockProgram(ctrl)
	program.EXPECT().InitializeMint(gomock.Any(), gomock.Any(), tokenID, artist, consts.TrackDecimals).Return(nil)
	program.EXPECT().MintTo(gomock.Any(), gomock.Any(), tokenID, artist, artist, consts.TrackSupply).Return(errMint)

	rules := chaintest.NewRules()
	rules.Program = program
	store := chaintest.NewInMemoryStore()

	_, err := chaintest.Execute(ctx, &IssueTrack{TrackFields: songA, TokenID: tokenID}, rules, store, 0, artist, ids.GenerateTestID())
	require.ErrorIs(err, errMint)
	require.Empty(store.Storage)
}

func TestIssueTrackStateKeys(t *testing.T) {
	require := require.New(t)

	issue := &IssueTrack{TrackFields: songA, TokenID: tokenID}
	stateKeys := issue.StateKeys(artist, ids.Empty)
	require.Len(stateKeys, 3)
	require.Equal(state.All, stateKeys[string(storage.TrackKey(trackAddress(t, tokenID)))])
	require.Equal(state.All, stateKeys[string(storage.MintKey(tokenID))])
}

func TestIssueTrackMarshal(t *testing.T) {
	require := require.New(t)

	for _, issue := range []*IssueTrack{
		{TrackFields: songA, TokenID: tokenID},
		{TrackFields: songA},
	} {
		p := codec.NewWriter(issue.Size(), consts.NetworkSizeLimit)
		issue.Marshal(p)
		require.NoError(p.Err())

		parsed, err := UnmarshalIssueTrack(codec.NewReader(p.Bytes(), consts.NetworkSizeLimit))
		require.NoError(err)
		require.Equal(issue, parsed)
	}
}
