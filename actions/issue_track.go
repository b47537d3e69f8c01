// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/musicvm/chain"
	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/consts"
	"github.com/ava-labs/musicvm/state"
	"github.com/ava-labs/musicvm/token"
)

var _ chain.Action = (*IssueTrack)(nil)

// IssueTrack records a Track, creates its mint with the actor as authority
// and mints the single unit to the actor.
type IssueTrack struct {
	TrackFields

	// TokenID is the mint to create. If empty, it is derived from the action
	// ID.
	TokenID codec.Address `json:"tokenID"`
}

func (*IssueTrack) GetTypeID() uint8 {
	return consts.IssueTrackID
}

// ResolveTokenID returns the mint created when the action runs as
// [actionID].
func (i *IssueTrack) ResolveTokenID(actionID ids.ID) codec.Address {
	if i.TokenID != codec.EmptyAddress {
		return i.TokenID
	}
	return codec.CreateAddress(consts.IssueTrackID, actionID[:])
}

func (i *IssueTrack) StateKeys(actor codec.Address, actionID ids.ID) state.Keys {
	tokenID := i.ResolveTokenID(actionID)
	stateKeys := trackStateKeys(tokenID, state.All)
	tokenKeys, err := token.StateKeys(tokenID, actor)
	if err != nil {
		return stateKeys
	}
	for k, v := range tokenKeys {
		stateKeys.Add(k, v)
	}
	return stateKeys
}

func (i *IssueTrack) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	actionID ids.ID,
) ([][]byte, error) {
	tokenID := i.ResolveTokenID(actionID)
	addr, err := createTrack(ctx, mu, &i.TrackFields, tokenID, actor)
	if err != nil {
		return nil, err
	}
	program := r.TokenProgram()
	if err := program.InitializeMint(ctx, mu, tokenID, actor, consts.TrackDecimals); err != nil {
		return nil, err
	}
	if err := program.MintTo(ctx, mu, tokenID, actor, actor, consts.TrackSupply); err != nil {
		return nil, err
	}
	return [][]byte{tokenID[:], addr[:]}, nil
}

func (i *IssueTrack) Size() int {
	return i.TrackFields.size() + codec.AddressLen
}

func (i *IssueTrack) Marshal(p *codec.Packer) {
	i.TrackFields.marshal(p)
	p.PackAddress(i.TokenID)
}

func UnmarshalIssueTrack(p *codec.Packer) (chain.Action, error) {
	var issue IssueTrack
	issue.TrackFields.unmarshal(p)
	p.UnpackAddress(false, &issue.TokenID)
	return &issue, p.Err()
}
