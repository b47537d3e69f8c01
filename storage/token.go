// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/consts"
	"github.com/ava-labs/musicvm/state"
)

const (
	mintRecordSize    = codec.AddressLen + consts.Uint64Len + consts.Uint8Len
	holdingRecordSize = codec.AddressLen + codec.AddressLen + consts.Uint64Len
)

// Mint describes a token: who may mint it, how much exists and how it is
// denominated.
type Mint struct {
	Authority codec.Address `json:"authority"`
	Supply    uint64        `json:"supply"`
	Decimals  uint8         `json:"decimals"`
}

// Holding is the account that holds units of [Mint] for [Owner].
type Holding struct {
	Mint   codec.Address `json:"mint"`
	Owner  codec.Address `json:"owner"`
	Amount uint64        `json:"amount"`
}

func GetMint(
	ctx context.Context,
	im state.Immutable,
	mint codec.Address,
) (*Mint, bool, error) {
	v, err := im.GetValue(ctx, MintKey(mint))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(v) != mintRecordSize {
		return nil, false, ErrInvalidRecord
	}
	p := codec.NewReader(v, mintRecordSize)
	m := &Mint{}
	p.UnpackAddress(false, &m.Authority)
	m.Supply = p.UnpackUint64(false)
	m.Decimals = p.UnpackByte()
	if err := p.Err(); err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func SetMint(
	ctx context.Context,
	mu state.Mutable,
	mint codec.Address,
	m *Mint,
) error {
	p := codec.NewWriter(mintRecordSize, mintRecordSize)
	p.PackAddress(m.Authority)
	p.PackUint64(m.Supply)
	p.PackByte(m.Decimals)
	if err := p.Err(); err != nil {
		return err
	}
	return mu.Insert(ctx, MintKey(mint), p.Bytes())
}

// GetHolding returns the holding account of [owner] for [mint].
func GetHolding(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
	mint codec.Address,
) (*Holding, bool, error) {
	addr, err := HoldingAddress(owner, mint)
	if err != nil {
		return nil, false, err
	}
	v, err := im.GetValue(ctx, HoldingKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(v) != holdingRecordSize {
		return nil, false, ErrInvalidRecord
	}
	p := codec.NewReader(v, holdingRecordSize)
	h := &Holding{}
	p.UnpackAddress(false, &h.Mint)
	p.UnpackAddress(false, &h.Owner)
	h.Amount = p.UnpackUint64(false)
	if err := p.Err(); err != nil {
		return nil, false, err
	}
	if h.Mint != mint || h.Owner != owner {
		return nil, false, ErrInvalidRecord
	}
	return h, true, nil
}

func SetHolding(
	ctx context.Context,
	mu state.Mutable,
	h *Holding,
) error {
	addr, err := HoldingAddress(h.Owner, h.Mint)
	if err != nil {
		return err
	}
	p := codec.NewWriter(holdingRecordSize, holdingRecordSize)
	p.PackAddress(h.Mint)
	p.PackAddress(h.Owner)
	p.PackUint64(h.Amount)
	if err := p.Err(); err != nil {
		return err
	}
	return mu.Insert(ctx, HoldingKey(addr), p.Bytes())
}

// GetBalance returns the units of [mint] held by [owner]. A missing holding
// account has a zero balance.
func GetBalance(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
	mint codec.Address,
) (uint64, error) {
	h, exists, err := GetHolding(ctx, im, owner, mint)
	if err != nil || !exists {
		return 0, err
	}
	return h.Amount, nil
}

// GetBalanceFromState reads the committed balance from [db].
func GetBalanceFromState(
	ctx context.Context,
	db database.KeyValueReader,
	owner codec.Address,
	mint codec.Address,
) (uint64, error) {
	return GetBalance(ctx, state.NewDatabase(db), owner, mint)
}

// GetMintFromState reads the committed mint record from [db].
func GetMintFromState(
	ctx context.Context,
	db database.KeyValueReader,
	mint codec.Address,
) (*Mint, bool, error) {
	return GetMint(ctx, state.NewDatabase(db), mint)
}
