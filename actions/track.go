// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/consts"
	"github.com/ava-labs/musicvm/state"
	"github.com/ava-labs/musicvm/storage"
)

// TrackFields are the descriptive fields shared by [CreateTrack] and
// [IssueTrack].
type TrackFields struct {
	Title             string `json:"title"`
	Artist            string `json:"artist"`
	Description       string `json:"description"`
	MetadataURI       string `json:"metadataURI"`
	RoyaltyPercentage uint8  `json:"royaltyPercentage"`
}

func (f *TrackFields) validate() error {
	if f.RoyaltyPercentage > storage.MaxRoyaltyPercentage {
		return fmt.Errorf("%w: %d > %d", ErrInvalidRoyaltyPercentage, f.RoyaltyPercentage, storage.MaxRoyaltyPercentage)
	}
	for _, field := range []struct {
		name  string
		value string
		limit int
	}{
		{"title", f.Title, storage.MaxTitleLen},
		{"artist", f.Artist, storage.MaxArtistLen},
		{"description", f.Description, storage.MaxDescriptionLen},
		{"metadataURI", f.MetadataURI, storage.MaxMetadataURILen},
	} {
		if len(field.value) > field.limit {
			return fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFieldTooLong, field.name, len(field.value), field.limit)
		}
	}
	return nil
}

func (f *TrackFields) size() int {
	return codec.StringLen(f.Title) +
		codec.StringLen(f.Artist) +
		codec.StringLen(f.Description) +
		codec.StringLen(f.MetadataURI) +
		consts.Uint8Len
}

func (f *TrackFields) marshal(p *codec.Packer) {
	p.PackString(f.Title)
	p.PackString(f.Artist)
	p.PackString(f.Description)
	p.PackString(f.MetadataURI)
	p.PackByte(f.RoyaltyPercentage)
}

func (f *TrackFields) unmarshal(p *codec.Packer) {
	f.Title = p.UnpackString(maxFieldLen, false)
	f.Artist = p.UnpackString(maxFieldLen, false)
	f.Description = p.UnpackString(maxFieldLen, false)
	f.MetadataURI = p.UnpackString(maxFieldLen, false)
	f.RoyaltyPercentage = p.UnpackByte()
}

// trackStateKeys declares the Track bound to [tokenID]. A token id that
// cannot be derived declares nothing, so execution fails on first access.
func trackStateKeys(tokenID codec.Address, perm state.Permissions) state.Keys {
	addr, _, err := storage.TrackAddress(tokenID)
	if err != nil {
		return state.Keys{}
	}
	return state.Keys{string(storage.TrackKey(addr)): perm}
}

// createTrack validates [f] and stores a new Track bound to [tokenID] and
// owned by [owner]. It returns the Track address.
func createTrack(
	ctx context.Context,
	mu state.Mutable,
	f *TrackFields,
	tokenID codec.Address,
	owner codec.Address,
) (codec.Address, error) {
	if err := f.validate(); err != nil {
		return codec.EmptyAddress, err
	}
	if tokenID == codec.EmptyAddress {
		return codec.EmptyAddress, ErrMissingTokenID
	}
	addr, bump, err := storage.TrackAddress(tokenID)
	if err != nil {
		return codec.EmptyAddress, err
	}
	_, exists, err := storage.GetTrack(ctx, mu, addr)
	if err != nil {
		return codec.EmptyAddress, err
	}
	if exists {
		return codec.EmptyAddress, fmt.Errorf("%w: token %s", ErrTrackAlreadyExists, tokenID)
	}
	if err := storage.SetTrack(ctx, mu, addr, &storage.Track{
		Title:             f.Title,
		Artist:            f.Artist,
		Description:       f.Description,
		MetadataURI:       f.MetadataURI,
		TokenID:           tokenID,
		Owner:             owner,
		RoyaltyPercentage: f.RoyaltyPercentage,
		Bump:              bump,
	}); err != nil {
		return codec.EmptyAddress, err
	}
	return addr, nil
}
