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
	"github.com/ava-labs/musicvm/storage"
	"github.com/ava-labs/musicvm/token"
)

var _ chain.Action = (*TransferTrack)(nil)

// TransferTrack moves the unit of a track token from the actor, who must own
// the Track, to [To] and records [To] as the new owner.
type TransferTrack struct {
	TokenID codec.Address `json:"tokenID"`

	// To is the new owner.
	To codec.Address `json:"to"`

	// Amount must be 1. It is kept on the wire for compatibility with
	// fungible transfers.
	Amount uint64 `json:"amount"`
}

func (*TransferTrack) GetTypeID() uint8 {
	return consts.TransferTrackID
}

func (t *TransferTrack) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	stateKeys := trackStateKeys(t.TokenID, state.Read|state.Write)
	tokenKeys, err := token.StateKeys(t.TokenID, actor, t.To)
	if err != nil {
		return stateKeys
	}
	for k, v := range tokenKeys {
		stateKeys.Add(k, v)
	}
	return stateKeys
}

func (t *TransferTrack) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if t.Amount != consts.TrackSupply {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, t.Amount)
	}
	addr, _, err := storage.TrackAddress(t.TokenID)
	if err != nil {
		return nil, err
	}
	track, exists, err := storage.GetTrack(ctx, mu, addr)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: token %s", ErrTrackNotFound, t.TokenID)
	}
	if err := storage.VerifyTrackAddress(addr, track.TokenID, track.Bump); err != nil {
		return nil, err
	}
	if track.Owner != actor {
		return nil, fmt.Errorf("%w: %s", ErrNotOwner, actor)
	}
	if t.To == track.Owner {
		return nil, ErrSelfTransfer
	}
	if err := r.TokenProgram().Transfer(ctx, mu, t.TokenID, actor, t.To, actor, t.Amount); err != nil {
		return nil, err
	}
	track.Owner = t.To
	if err := storage.SetTrack(ctx, mu, addr, track); err != nil {
		return nil, err
	}
	return [][]byte{addr[:], t.To[:]}, nil
}

func (*TransferTrack) Size() int {
	return codec.AddressLen*2 + consts.Uint64Len
}

func (t *TransferTrack) Marshal(p *codec.Packer) {
	p.PackAddress(t.TokenID)
	p.PackAddress(t.To)
	p.PackUint64(t.Amount)
}

func UnmarshalTransferTrack(p *codec.Packer) (chain.Action, error) {
	var transfer TransferTrack
	p.UnpackAddress(true, &transfer.TokenID)
	p.UnpackAddress(true, &transfer.To)
	transfer.Amount = p.UnpackUint64(false)
	return &transfer, p.Err()
}
