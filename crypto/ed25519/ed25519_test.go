// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	oed25519 "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/crypto"
)

var (
	TestPrivateKey = PrivateKey(
		[PrivateKeyLen]byte{
			32, 241, 118, 222, 210, 13, 164, 128, 3, 18,
			109, 215, 176, 215, 168, 171, 194, 181, 4, 11,
			253, 199, 173, 240, 107, 148, 127, 190, 48, 164,
			12, 48, 115, 50, 124, 153, 59, 53, 196, 150, 168,
			143, 151, 235, 222, 128, 136, 161, 9, 40, 139, 85,
			182, 153, 68, 135, 62, 166, 45, 235, 251, 246, 69, 7,
		},
	)
	TestPublicKey = []byte{
		115, 50, 124, 153, 59, 53, 196, 150, 168, 143, 151, 235,
		222, 128, 136, 161, 9, 40, 139, 85, 182, 153, 68, 135,
		62, 166, 45, 235, 251, 246, 69, 7,
	}
	oed25519options = &oed25519.Options{
		Verify: oed25519.VerifyOptionsZIP_215,
	}
)

func TestGeneratePrivateKeyDifferent(t *testing.T) {
	require := require.New(t)
	const numKeysToGenerate int = 10
	m := make(map[PrivateKey]bool)
	for i := 0; i < numKeysToGenerate; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		require.NotEqual(EmptyPrivateKey, priv)
		require.False(m[priv], "Duplicate PrivateKey generated")
		m[priv] = true
	}
}

func TestPublicKeyValid(t *testing.T) {
	require := require.New(t)
	var expectedPubKey PublicKey
	copy(expectedPubKey[:], TestPublicKey)
	require.Equal(expectedPubKey, TestPrivateKey.PublicKey())
	require.Equal(codec.Address(expectedPubKey), TestPrivateKey.Address())
}

func TestSignSignatureValid(t *testing.T) {
	require := require.New(t)

	msg := []byte("msg")
	ed25519Sign := ed25519.Sign(TestPrivateKey[:], msg)
	var expectedSig Signature
	copy(expectedSig[:], ed25519Sign)
	require.Equal(expectedSig, Sign(msg, TestPrivateKey))
}

func TestVerify(t *testing.T) {
	require := require.New(t)
	msg := []byte("msg")
	sig := Sign(msg, TestPrivateKey)
	require.True(Verify(msg, TestPrivateKey.PublicKey(), sig))
	require.False(Verify([]byte("diff msg"), TestPrivateKey.PublicKey(), sig))

	sig[0]++
	require.False(Verify(msg, TestPrivateKey.PublicKey(), sig))
}

func TestVerifyMatchesOasis(t *testing.T) {
	require := require.New(t)
	for i := 0; i < 16; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		msg := make([]byte, 128)
		_, err = rand.Read(msg)
		require.NoError(err)
		sig := Sign(msg, priv)
		pub := priv.PublicKey()

		require.True(Verify(msg, pub, sig))
		require.True(oed25519.VerifyWithOptions(pub[:], msg, sig[:], oed25519options))
	}
}

func TestHexToKey(t *testing.T) {
	require := require.New(t)
	priv, err := HexToKey(TestPrivateKey.ToHex())
	require.NoError(err)
	require.Equal(TestPrivateKey, priv)

	priv, err = HexToKey("0x" + TestPrivateKey.ToHex())
	require.NoError(err)
	require.Equal(TestPrivateKey, priv)

	_, err = HexToKey("abcd")
	require.ErrorIs(err, crypto.ErrInvalidPrivateKey)
}

func TestSaveLoadKey(t *testing.T) {
	require := require.New(t)
	filename := filepath.Join(t.TempDir(), "key.pk")
	require.NoError(TestPrivateKey.Save(filename))

	priv, err := LoadKey(filename)
	require.NoError(err)
	require.Equal(TestPrivateKey, priv)

	_, err = LoadKey(filepath.Join(t.TempDir(), "missing.pk"))
	require.Error(err)
}

func BenchmarkConsensusVerifySingle(b *testing.B) {
	require := require.New(b)
	b.StopTimer()
	msg := make([]byte, 128)
	_, err := rand.Read(msg)
	require.NoError(err)
	priv, err := GeneratePrivateKey()
	require.NoError(err)
	sig := Sign(msg, priv)
	pub := priv.PublicKey()
	b.StartTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		require.True(Verify(msg, pub, sig), "invalid signature")
	}
}
