// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrInvalidRoyaltyPercentage = errors.New("invalid royalty percentage")
	ErrTrackAlreadyExists       = errors.New("track already exists")
	ErrFieldTooLong             = errors.New("field too long")
	ErrTrackNotFound            = errors.New("track not found")
	ErrNotOwner                 = errors.New("not track owner")
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrSelfTransfer             = errors.New("cannot transfer to current owner")
	ErrMissingTokenID           = errors.New("missing token id")
	ErrNotTokenHolder           = errors.New("actor does not hold the token unit")
)
