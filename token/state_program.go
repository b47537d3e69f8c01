// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"context"
	"fmt"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/state"
	"github.com/ava-labs/musicvm/storage"
)

var _ Program = (*StateProgram)(nil)

// StateProgram keeps mints and holding accounts in the same state as the
// records that reference them.
type StateProgram struct{}

func NewStateProgram() *StateProgram {
	return &StateProgram{}
}

// StateKeys returns the keys touched when [owner] receives or sends units of
// [mint].
func StateKeys(mint codec.Address, owners ...codec.Address) (state.Keys, error) {
	stateKeys := state.Keys{
		string(storage.MintKey(mint)): state.All,
	}
	for _, owner := range owners {
		holding, err := storage.HoldingAddress(owner, mint)
		if err != nil {
			return nil, err
		}
		stateKeys.Add(string(storage.HoldingKey(holding)), state.All)
	}
	return stateKeys, nil
}

func (*StateProgram) InitializeMint(
	ctx context.Context,
	mu state.Mutable,
	mint codec.Address,
	authority codec.Address,
	decimals uint8,
) error {
	_, exists, err := storage.GetMint(ctx, mu, mint)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrMintAlreadyExists, mint)
	}
	return storage.SetMint(ctx, mu, mint, &storage.Mint{
		Authority: authority,
		Decimals:  decimals,
	})
}

func (*StateProgram) MintTo(
	ctx context.Context,
	mu state.Mutable,
	mint codec.Address,
	owner codec.Address,
	authority codec.Address,
	amount uint64,
) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	m, exists, err := storage.GetMint(ctx, mu, mint)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrMintNotFound, mint)
	}
	if m.Authority != authority {
		return fmt.Errorf("%w: %s is not the mint authority", ErrInvalidAuthority, authority)
	}
	supply, err := smath.Add(m.Supply, amount)
	if err != nil {
		return fmt.Errorf("%w: supply", ErrOverflow)
	}
	h, err := getOrCreateHolding(ctx, mu, mint, owner)
	if err != nil {
		return err
	}
	balance, err := smath.Add(h.Amount, amount)
	if err != nil {
		return fmt.Errorf("%w: balance", ErrOverflow)
	}
	m.Supply = supply
	h.Amount = balance
	if err := storage.SetMint(ctx, mu, mint, m); err != nil {
		return err
	}
	return storage.SetHolding(ctx, mu, h)
}

func (*StateProgram) Transfer(
	ctx context.Context,
	mu state.Mutable,
	mint codec.Address,
	from codec.Address,
	to codec.Address,
	authority codec.Address,
	amount uint64,
) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	_, exists, err := storage.GetMint(ctx, mu, mint)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrMintNotFound, mint)
	}
	src, exists, err := storage.GetHolding(ctx, mu, from, mint)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, from)
	}
	if src.Owner != authority {
		return fmt.Errorf("%w: %s does not own the source account", ErrInvalidAuthority, authority)
	}
	if src.Amount < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, src.Amount, amount)
	}
	if from == to {
		return nil
	}
	dst, err := getOrCreateHolding(ctx, mu, mint, to)
	if err != nil {
		return err
	}
	balance, err := smath.Add(dst.Amount, amount)
	if err != nil {
		return fmt.Errorf("%w: balance", ErrOverflow)
	}
	src.Amount -= amount
	dst.Amount = balance
	if err := storage.SetHolding(ctx, mu, src); err != nil {
		return err
	}
	return storage.SetHolding(ctx, mu, dst)
}

func (*StateProgram) Balance(
	ctx context.Context,
	im state.Immutable,
	mint codec.Address,
	owner codec.Address,
) (uint64, error) {
	return storage.GetBalance(ctx, im, owner, mint)
}

func (*StateProgram) Supply(
	ctx context.Context,
	im state.Immutable,
	mint codec.Address,
) (uint64, error) {
	m, exists, err := storage.GetMint(ctx, im, mint)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%w: %s", ErrMintNotFound, mint)
	}
	return m.Supply, nil
}

func getOrCreateHolding(
	ctx context.Context,
	im state.Immutable,
	mint codec.Address,
	owner codec.Address,
) (*storage.Holding, error) {
	h, exists, err := storage.GetHolding(ctx, im, owner, mint)
	if err != nil {
		return nil, err
	}
	if !exists {
		h = &storage.Holding{Mint: mint, Owner: owner}
	}
	return h, nil
}
