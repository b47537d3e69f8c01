// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
	"github.com/blocto/solana-go-sdk/common"
)

const (
	Name   = "musicvm"
	Symbol = "TRACK"

	// ProgramAddress is the deployed program identity. Track addresses are
	// derived under it, so changing it re-keys every record.
	ProgramAddress = "Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkgmt5yqE6PqL"

	// TrackSeed is the namespace tag mixed into every Track address.
	TrackSeed = "music-nft"
	// MintSeed is the namespace tag mixed into every mint address.
	MintSeed = "music-mint"

	// TrackDecimals is the number of decimals of every track mint. A track
	// is represented by exactly one indivisible unit.
	TrackDecimals uint8 = 0
	TrackSupply   uint64 = 1
)

// Action TypeIDs
//
// Note: Registry will error during initialization if a duplicate ID is
// assigned. We explicitly assign IDs to avoid accidental remapping.
const (
	CreateTrackID   uint8 = 0
	IssueTrackID    uint8 = 1
	TransferTrackID uint8 = 2
)

// Auth TypeIDs
const (
	ED25519ID uint8 = 0
)

var (
	ProgramID = common.PublicKeyFromString(ProgramAddress)

	// ChainID is the default chain the host accepts transactions for.
	ChainID ids.ID
)

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	chainID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ChainID = chainID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 1,
	Patch: 0,
}
