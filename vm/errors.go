// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"

	"github.com/ava-labs/musicvm/chain"
)

var (
	ErrDuplicateTx = errors.New("duplicate transaction")
	ErrClosed      = errors.New("vm closed")

	ErrInvalidChainID    = chain.ErrInvalidChainID
	ErrTimestampTooLate  = chain.ErrTimestampTooLate
	ErrTimestampTooEarly = chain.ErrTimestampTooEarly
)
