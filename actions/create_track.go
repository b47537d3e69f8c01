// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/musicvm/chain"
	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/consts"
	"github.com/ava-labs/musicvm/state"
	"github.com/ava-labs/musicvm/token"
)

var _ chain.Action = (*CreateTrack)(nil)

// CreateTrack records a Track for a token that was minted elsewhere. The
// actor must hold the whole supply of exactly one unit and becomes the owner.
// No token unit is minted.
type CreateTrack struct {
	TrackFields

	// TokenID is the mint the Track is bound to.
	TokenID codec.Address `json:"tokenID"`
}

func (*CreateTrack) GetTypeID() uint8 {
	return consts.CreateTrackID
}

func (c *CreateTrack) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	stateKeys := trackStateKeys(c.TokenID, state.All)
	tokenKeys, err := token.StateKeys(c.TokenID, actor)
	if err != nil {
		return stateKeys
	}
	for k := range tokenKeys {
		stateKeys.Add(k, state.Read)
	}
	return stateKeys
}

func (c *CreateTrack) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if err := c.TrackFields.validate(); err != nil {
		return nil, err
	}
	if c.TokenID == codec.EmptyAddress {
		return nil, ErrMissingTokenID
	}
	program := r.TokenProgram()
	supply, err := program.Supply(ctx, mu, c.TokenID)
	if err != nil {
		return nil, err
	}
	balance, err := program.Balance(ctx, mu, c.TokenID, actor)
	if err != nil {
		return nil, err
	}
	if supply != consts.TrackSupply || balance != supply {
		return nil, fmt.Errorf("%w: %s holds %d of %d", ErrNotTokenHolder, actor, balance, supply)
	}
	addr, err := createTrack(ctx, mu, &c.TrackFields, c.TokenID, actor)
	if err != nil {
		return nil, err
	}
	return [][]byte{c.TokenID[:], addr[:]}, nil
}

func (c *CreateTrack) Size() int {
	return c.TrackFields.size() + codec.AddressLen
}

func (c *CreateTrack) Marshal(p *codec.Packer) {
	c.TrackFields.marshal(p)
	p.PackAddress(c.TokenID)
}

func UnmarshalCreateTrack(p *codec.Packer) (chain.Action, error) {
	var create CreateTrack
	create.TrackFields.unmarshal(p)
	p.UnpackAddress(true, &create.TokenID)
	return &create, p.Err()
}
