// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/musicvm/codec"

type Registry interface {
	ActionRegistry() *codec.TypeParser[Action]
	AuthRegistry() *codec.TypeParser[Auth]
}

type registry struct {
	actionRegistry *codec.TypeParser[Action]
	authRegistry   *codec.TypeParser[Auth]
}

func NewRegistry(action *codec.TypeParser[Action], auth *codec.TypeParser[Auth]) Registry {
	return &registry{
		actionRegistry: action,
		authRegistry:   auth,
	}
}

func (r *registry) ActionRegistry() *codec.TypeParser[Action] {
	return r.actionRegistry
}

func (r *registry) AuthRegistry() *codec.TypeParser[Auth] {
	return r.authRegistry
}
