// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/state"
	"github.com/ava-labs/musicvm/token"
)

type Rules interface {
	NetworkID() uint32
	ChainID() ids.ID

	// GetValidityWindow is how far in the future (ms) a transaction timestamp
	// may be.
	GetValidityWindow() int64

	// TokenProgram is the token program actions call into.
	TokenProgram() token.Program
}

type Action interface {
	codec.Typed

	// StateKeys is a full enumeration of all database keys that could be touched during execution
	// of an [Action]. This is used to prefetch state and will be used to lock keys.
	//
	// If any key is removed and then re-created, this will count as a creation instead of a modification.
	StateKeys(actor codec.Address, actionID ids.ID) state.Keys

	// Execute actually runs the [Action]. Any state changes that the [Action] performs should
	// be done here.
	//
	// If any keys are touched during [Execute] that are not specified in [StateKeys], the transaction
	// will revert.
	//
	// An error should only be returned if execution failed. All state changes made before the
	// error are discarded by the caller.
	Execute(
		ctx context.Context,
		r Rules,
		mu state.Mutable,
		timestamp int64,
		actor codec.Address,
		actionID ids.ID,
	) (outputs [][]byte, err error)

	// Size is the number of bytes it takes to represent this [Action]. This is used to preallocate
	// memory during encoding.
	Size() int

	// Marshal encodes an [Action] as bytes.
	Marshal(p *codec.Packer)
}

type Auth interface {
	codec.Typed

	// Verify checks that the signature covers [msg].
	Verify(ctx context.Context, msg []byte) error

	// Actor is the identity that authorized the transaction. Actions run on
	// its behalf.
	Actor() codec.Address

	// Size is the number of bytes it takes to represent this [Auth]. This is used to preallocate
	// memory during encoding.
	Size() int

	// Marshal encodes an [Auth] as bytes.
	Marshal(p *codec.Packer)
}

type AuthFactory interface {
	// Sign is used by helpers, auth object should store internally to be ready for marshaling
	Sign(msg []byte) (Auth, error)
	Address() codec.Address
}
