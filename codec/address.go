// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"crypto/sha256"

	"github.com/mr-tron/base58"
)

// AddressLen is the size of an ed25519 public key. Every identity, mint and
// derived account on the ledger shares this width.
const AddressLen = 32

// Address is the 32 byte address of a ledger account.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// ToAddress copies [b] into an [Address]. [b] must be exactly [AddressLen]
// bytes.
func ToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, ErrInvalidAddress
	}
	copy(a[:], b)
	return a, nil
}

// CreateAddress returns the [Address] made from hashing [typeID] with [id].
// It is used to generate fresh identifiers from an action ID.
func CreateAddress(typeID uint8, id []byte) Address {
	h := sha256.New()
	h.Write([]byte{typeID})
	h.Write(id)
	var a Address
	copy(a[:], h.Sum(nil))
	return a
}

// ParseAddress decodes the base58 form of an address.
func ParseAddress(s string) (Address, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return EmptyAddress, err
	}
	return ToAddress(b)
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText returns the base58 representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a base58-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
