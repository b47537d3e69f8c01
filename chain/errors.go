// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrInvalidObject      = errors.New("invalid object")
	ErrInvalidKeyValue    = errors.New("invalid key or value")
	ErrMisalignedTime     = errors.New("misaligned time")
	ErrTimestampTooLate   = errors.New("timestamp too late")
	ErrTimestampTooEarly  = errors.New("timestamp too early")
	ErrInvalidChainID     = errors.New("invalid chain ID")
	ErrMissingAction      = errors.New("missing action")
	ErrMissingAuth        = errors.New("missing auth")
	ErrUnexpectedTrailing = errors.New("unexpected trailing bytes")
)
