// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/musicvm/chain"
	"github.com/ava-labs/musicvm/token"
)

var _ chain.Rules = (*Rules)(nil)

type Rules struct {
	*Genesis

	networkID uint32
	chainID   ids.ID
	program   token.Program
}

func New(g *Genesis, networkID uint32, chainID ids.ID, program token.Program) *Rules {
	return &Rules{g, networkID, chainID, program}
}

func (r *Rules) NetworkID() uint32 {
	return r.networkID
}

func (r *Rules) ChainID() ids.ID {
	return r.chainID
}

func (r *Rules) GetValidityWindow() int64 {
	return r.ValidityWindow
}

func (r *Rules) TokenProgram() token.Program {
	return r.program
}
