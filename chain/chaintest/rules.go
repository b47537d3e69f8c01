// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/musicvm/chain"
	"github.com/ava-labs/musicvm/token"
)

var _ chain.Rules = (*Rules)(nil)

// Rules is a fixed [chain.Rules] for tests.
type Rules struct {
	Network        uint32
	Chain          ids.ID
	ValidityWindow int64
	Program        token.Program
}

// NewRules returns [Rules] backed by the state token program.
func NewRules() *Rules {
	return &Rules{
		Network:        1,
		Chain:          ids.GenerateTestID(),
		ValidityWindow: 60_000,
		Program:        token.NewStateProgram(),
	}
}

func (r *Rules) NetworkID() uint32 { return r.Network }

func (r *Rules) ChainID() ids.ID { return r.Chain }

func (r *Rules) GetValidityWindow() int64 { return r.ValidityWindow }

func (r *Rules) TokenProgram() token.Program { return r.Program }
