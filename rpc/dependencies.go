// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/musicvm/chain"
	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/storage"
)

type VM interface {
	Rules() chain.Rules
	Logger() logging.Logger
	Tracer() trace.Tracer

	SubmitBytes(ctx context.Context, b []byte) (ids.ID, *storage.Receipt, error)
	Track(ctx context.Context, tokenID codec.Address) (codec.Address, *storage.Track, bool, error)
	Mint(ctx context.Context, mint codec.Address) (*storage.Mint, bool, error)
	Balance(ctx context.Context, owner codec.Address, mint codec.Address) (uint64, error)
	Transaction(ctx context.Context, txID ids.ID) (bool, *storage.Receipt, error)
}
