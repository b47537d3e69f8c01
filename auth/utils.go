// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"github.com/ava-labs/musicvm/chain"
	"github.com/ava-labs/musicvm/crypto/ed25519"
)

// GetFactory returns the [chain.AuthFactory] for a given private key.
func GetFactory(pk ed25519.PrivateKey) chain.AuthFactory {
	return NewED25519Factory(pk)
}
