// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrRecordTooLarge    = errors.New("record too large")
	ErrInvalidRecord     = errors.New("invalid record")
	ErrInvalidDerivation = errors.New("invalid address derivation")
)
