// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
)

var _ Immutable = (*Database)(nil)

// Database exposes committed values of a [database.KeyValueReader] as
// [Immutable] state.
type Database struct {
	db database.KeyValueReader
}

func NewDatabase(db database.KeyValueReader) *Database {
	return &Database{db: db}
}

func (d *Database) GetValue(_ context.Context, key []byte) ([]byte, error) {
	return d.db.Get(key)
}

// ReadKeys fetches the values of [keys] that exist in the database. Missing keys
// are omitted from the result.
func ReadKeys(ctx context.Context, im Immutable, keys Keys) (map[string][]byte, error) {
	storage := make(map[string][]byte, len(keys))
	for k := range keys {
		v, err := im.GetValue(ctx, []byte(k))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		storage[k] = v
	}
	return storage, nil
}
