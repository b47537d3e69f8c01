// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var (
	ErrTrackNotFound = errors.New("track not found")
	ErrMintNotFound  = errors.New("mint not found")
	ErrTxNotFound    = errors.New("transaction not found")
	ErrTxFailed      = errors.New("transaction failed")
)
