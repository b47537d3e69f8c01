// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/crypto"
	"github.com/ava-labs/musicvm/crypto/ed25519"
)

func TestED25519SignVerify(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	factory := NewED25519Factory(priv)
	require.Equal(priv.Address(), factory.Address())

	msg := []byte("track")
	a, err := factory.Sign(msg)
	require.NoError(err)
	require.Equal(priv.Address(), a.Actor())
	require.NoError(a.Verify(ctx, msg))
	require.ErrorIs(a.Verify(ctx, []byte("other")), crypto.ErrInvalidSignature)
}

func TestED25519Marshal(t *testing.T) {
	require := require.New(t)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	a, err := NewED25519Factory(priv).Sign([]byte("track"))
	require.NoError(err)

	p := codec.NewWriter(a.Size(), a.Size())
	a.Marshal(p)
	require.NoError(p.Err())
	require.Len(p.Bytes(), ED25519Size)

	parsed, err := UnmarshalED25519(codec.NewReader(p.Bytes(), a.Size()))
	require.NoError(err)
	require.Equal(a, parsed)

	_, err = UnmarshalED25519(codec.NewReader(p.Bytes()[:10], a.Size()))
	require.Error(err)
}
