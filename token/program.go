// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"context"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/state"
)

//go:generate mockgen -package=token -destination=mock_program.go . Program

// Program is the token program a record store calls into to issue and move
// the unit that represents a track.
type Program interface {
	// InitializeMint creates [mint] with [authority] as the only account
	// allowed to mint it.
	InitializeMint(ctx context.Context, mu state.Mutable, mint codec.Address, authority codec.Address, decimals uint8) error

	// MintTo credits [amount] units of [mint] to the holding account of
	// [owner]. [authority] must be the mint authority.
	MintTo(ctx context.Context, mu state.Mutable, mint codec.Address, owner codec.Address, authority codec.Address, amount uint64) error

	// Transfer moves [amount] units of [mint] from the holding account of
	// [from] to the holding account of [to]. [authority] must own the source
	// holding account.
	Transfer(ctx context.Context, mu state.Mutable, mint codec.Address, from codec.Address, to codec.Address, authority codec.Address, amount uint64) error

	Balance(ctx context.Context, im state.Immutable, mint codec.Address, owner codec.Address) (uint64, error)
	Supply(ctx context.Context, im state.Immutable, mint codec.Address) (uint64, error)
}
