// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package authtest

import (
	"context"

	"github.com/ava-labs/musicvm/chain"
	"github.com/ava-labs/musicvm/codec"
)

// NoAuthID does not collide with any production auth type.
const NoAuthID uint8 = 0xff

var (
	_ chain.Auth        = (*NoAuth)(nil)
	_ chain.AuthFactory = (*NoAuthFactory)(nil)
)

// NoAuthFactory signs for [Actor] without a key.
type NoAuthFactory struct {
	Actor codec.Address
}

func (f NoAuthFactory) Sign([]byte) (chain.Auth, error) {
	return &NoAuth{Addr: f.Actor}, nil
}

func (f NoAuthFactory) Address() codec.Address {
	return f.Actor
}

// NoAuth accepts every message.
type NoAuth struct {
	Addr codec.Address
}

func (*NoAuth) GetTypeID() uint8 {
	return NoAuthID
}

func (n *NoAuth) Marshal(p *codec.Packer) {
	p.PackAddress(n.Addr)
}

func (*NoAuth) Size() int { return codec.AddressLen }

func (*NoAuth) Verify(context.Context, []byte) error {
	return nil
}

func (n *NoAuth) Actor() codec.Address {
	return n.Addr
}

func UnmarshalNoAuth(p *codec.Packer) (chain.Auth, error) {
	var n NoAuth
	p.UnpackAddress(false, &n.Addr)
	return &n, p.Err()
}
