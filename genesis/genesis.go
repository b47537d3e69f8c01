// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/musicvm/consts"
)

var ErrInvalidValidityWindow = errors.New("invalid validity window")

// Genesis holds the parameters a host is started with. They never change for
// the lifetime of the chain.
type Genesis struct {
	// ValidityWindow is how far in the future (ms) a transaction timestamp may
	// be. Receipts are the replay protection, so the window only bounds how
	// long a signed transaction stays usable.
	ValidityWindow int64 `json:"validityWindow"`
}

func Default() *Genesis {
	return &Genesis{
		ValidityWindow: 60 * consts.MillisecondsPerSecond,
	}
}

// Load parses [b] over the defaults. Empty input yields the defaults.
func Load(b []byte) (*Genesis, error) {
	g := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("%w: unable to parse genesis", err)
		}
	}
	if err := g.Verify(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Genesis) Verify() error {
	if g.ValidityWindow <= 0 || g.ValidityWindow%consts.MillisecondsPerSecond != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidValidityWindow, g.ValidityWindow)
	}
	return nil
}
