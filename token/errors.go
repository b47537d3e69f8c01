// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import "errors"

var (
	ErrMintAlreadyExists   = errors.New("mint already exists")
	ErrMintNotFound        = errors.New("mint not found")
	ErrInvalidAuthority    = errors.New("invalid authority")
	ErrOverflow            = errors.New("overflow")
	ErrZeroAmount          = errors.New("zero amount")
	ErrAccountNotFound     = errors.New("holding account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
