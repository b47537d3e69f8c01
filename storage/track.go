// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/near/borsh-go"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/consts"
	"github.com/ava-labs/musicvm/state"
)

// Field caps of a Track, in bytes.
const (
	MaxTitleLen       = 50
	MaxArtistLen      = 50
	MaxDescriptionLen = 200
	MaxMetadataURILen = 200

	MaxRoyaltyPercentage = 100

	DiscriminatorLen = 8

	// MaxTrackSize is the largest encoded Track: the discriminator, four
	// length-prefixed strings at their caps, the token id, the owner, the
	// royalty and the bump.
	MaxTrackSize = DiscriminatorLen +
		consts.Uint32Len + MaxTitleLen +
		consts.Uint32Len + MaxArtistLen +
		consts.Uint32Len + MaxDescriptionLen +
		consts.Uint32Len + MaxMetadataURILen +
		codec.AddressLen + codec.AddressLen +
		consts.Uint8Len + consts.Uint8Len
)

// TrackDiscriminator prefixes every stored Track so that arbitrary bytes are
// never decoded as one.
var TrackDiscriminator = discriminator("account:MusicNFT")

func discriminator(name string) []byte {
	h := sha256.Sum256([]byte(name))
	return h[:DiscriminatorLen]
}

// Track is the record stored for every music NFT. Field order is the
// encoding order.
type Track struct {
	Title             string        `json:"title"`
	Artist            string        `json:"artist"`
	Description       string        `json:"description"`
	MetadataURI       string        `json:"metadataURI"`
	TokenID           codec.Address `json:"tokenID"`
	Owner             codec.Address `json:"owner"`
	RoyaltyPercentage uint8         `json:"royaltyPercentage"`
	Bump              uint8         `json:"bump"`
}

// MarshalTrack encodes [t] behind [TrackDiscriminator] and rejects encodings
// larger than [MaxTrackSize].
func MarshalTrack(t *Track) ([]byte, error) {
	body, err := borsh.Serialize(*t)
	if err != nil {
		return nil, err
	}
	size := DiscriminatorLen + len(body)
	if size > MaxTrackSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrRecordTooLarge, size, MaxTrackSize)
	}
	v := make([]byte, 0, size)
	v = append(v, TrackDiscriminator...)
	return append(v, body...), nil
}

func UnmarshalTrack(v []byte) (*Track, error) {
	if len(v) < DiscriminatorLen || len(v) > MaxTrackSize {
		return nil, fmt.Errorf("%w: unexpected track size %d", ErrInvalidRecord, len(v))
	}
	if !bytes.Equal(v[:DiscriminatorLen], TrackDiscriminator) {
		return nil, fmt.Errorf("%w: discriminator mismatch", ErrInvalidRecord)
	}
	var t Track
	if err := borsh.Deserialize(&t, v[DiscriminatorLen:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return &t, nil
}

// GetTrack returns the Track stored at [addr], if any.
func GetTrack(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (*Track, bool, error) {
	v, err := im.GetValue(ctx, TrackKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	t, err := UnmarshalTrack(v)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

// GetTrackFromState is like [GetTrack] but reads committed values directly
// from a database.
func GetTrackFromState(
	ctx context.Context,
	db database.KeyValueReader,
	addr codec.Address,
) (*Track, bool, error) {
	return GetTrack(ctx, state.NewDatabase(db), addr)
}

func SetTrack(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	t *Track,
) error {
	v, err := MarshalTrack(t)
	if err != nil {
		return err
	}
	return mu.Insert(ctx, TrackKey(addr), v)
}
