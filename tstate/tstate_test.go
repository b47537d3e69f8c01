// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tstate

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/maybe"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/musicvm/keys"
	"github.com/ava-labs/musicvm/state"
)

var (
	testKey = keys.EncodeChunks([]byte("key"), 1)
	testVal = []byte("value")

	key1    = keys.EncodeChunks([]byte("key1"), 1)
	key1str = string(key1)
	key2    = keys.EncodeChunks([]byte("key2"), 2)
	key2str = string(key2)
)

func TestScope(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	// No Scope
	tsv := ts.NewView(state.Keys{}, map[string][]byte{})
	val, err := tsv.GetValue(ctx, testKey)
	require.ErrorIs(err, ErrInvalidKeyOrPermission)
	require.Nil(val)
	require.ErrorIs(tsv.Insert(ctx, testKey, testVal), ErrInvalidKeyOrPermission)
	require.ErrorIs(tsv.Remove(ctx, testKey), ErrInvalidKeyOrPermission)
}

func TestPermissions(t *testing.T) {
	tests := []struct {
		name        string
		perm        state.Permissions
		exists      bool
		expectedErr error
	}{
		{
			name:        "read cannot write existing key",
			perm:        state.Read,
			exists:      true,
			expectedErr: ErrInvalidKeyOrPermission,
		},
		{
			name:   "write can update existing key",
			perm:   state.Write,
			exists: true,
		},
		{
			name:        "write cannot create key",
			perm:        state.Write,
			expectedErr: ErrInvalidKeyOrPermission,
		},
		{
			name:        "allocate alone cannot create key",
			perm:        state.Allocate,
			expectedErr: ErrInvalidKeyOrPermission,
		},
		{
			name: "all can create key",
			perm: state.All,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctx := context.TODO()
			storage := map[string][]byte{}
			if tt.exists {
				storage[string(testKey)] = testVal
			}
			tsv := New(1).NewView(state.Keys{string(testKey): tt.perm}, storage)
			require.ErrorIs(tsv.Insert(ctx, testKey, []byte("new")), tt.expectedErr)
		})
	}
}

func TestGetValue(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{string(testKey): state.Read}, map[string][]byte{string(testKey): testVal})
	val, err := tsv.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(testVal, val)
}

func TestGetValueNoStorage(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{string(testKey): state.Read | state.Write}, map[string][]byte{})
	_, err := tsv.GetValue(ctx, testKey)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestDeleteCommitGet(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{string(testKey): state.Read | state.Write}, map[string][]byte{string(testKey): testVal})
	require.NoError(tsv.Remove(ctx, testKey))
	tsv.Commit()

	// Storage still holds the old value but the committed delete wins.
	tsv = ts.NewView(state.Keys{string(testKey): state.Read | state.Write}, map[string][]byte{string(testKey): testVal})
	val, err := tsv.GetValue(ctx, testKey)
	require.ErrorIs(err, database.ErrNotFound)
	require.Nil(val)
}

func TestInsertNew(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{string(testKey): state.All}, map[string][]byte{})
	require.NoError(tsv.Insert(ctx, testKey, testVal))
	val, err := tsv.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(1, tsv.OpIndex())
	require.Equal(testVal, val)

	require.Equal(0, ts.OpIndex())
	tsv.Commit()
	require.Equal(1, ts.OpIndex())
	require.Equal(1, ts.PendingChanges())
}

func TestInsertInvalid(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	key := binary.BigEndian.AppendUint16([]byte("hello"), 0)
	tsv := ts.NewView(state.Keys{string(key): state.All}, map[string][]byte{})
	require.ErrorIs(tsv.Insert(ctx, key, []byte("cool")), ErrInvalidKeyValue)

	_, err := tsv.GetValue(ctx, key)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestInsertUpdate(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{string(testKey): state.Read | state.Write}, map[string][]byte{string(testKey): testVal})
	newVal := []byte("newVal")
	require.NoError(tsv.Insert(ctx, testKey, newVal))
	val, err := tsv.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(newVal, val)
	require.Equal(testVal, tsv.ops[0].pastV)
	require.True(tsv.ops[0].pastExists)
	require.False(tsv.ops[0].pastChanged)

	tsv.Commit()
	tsv = ts.NewView(state.Keys{string(testKey): state.Read}, map[string][]byte{string(testKey): testVal})
	val, err = tsv.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(newVal, val)
}

func TestInsertRemoveRollback(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{key2str: state.All}, map[string][]byte{})

	require.NoError(tsv.Insert(ctx, key2, testVal))
	require.Equal(maybe.Some(testVal), tsv.pendingChangedKeys[key2str])

	require.NoError(tsv.Remove(ctx, key2))
	require.Equal(maybe.Nothing[[]byte](), tsv.pendingChangedKeys[key2str])

	testVal2 := []byte("blah")
	require.NoError(tsv.Insert(ctx, key2, testVal2))
	require.Equal(3, tsv.OpIndex())

	// Undo second insert
	tsv.Rollback(ctx, 2)
	require.Equal(maybe.Nothing[[]byte](), tsv.pendingChangedKeys[key2str])

	// Undo remove
	tsv.Rollback(ctx, 1)
	require.Equal(maybe.Some(testVal), tsv.pendingChangedKeys[key2str])

	// Undo first insert
	tsv.Rollback(ctx, 0)
	require.NotContains(tsv.pendingChangedKeys, key2str)
	require.Equal(0, tsv.OpIndex())

	// Remove of a missing key does nothing
	require.NoError(tsv.Remove(ctx, key2))
	require.Equal(0, tsv.OpIndex())
}

func TestRollbackRestoresStorage(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	scope := state.Keys{key1str: state.All, key2str: state.All}
	tsv := ts.NewView(scope, map[string][]byte{key1str: testVal})

	require.NoError(tsv.Insert(ctx, key1, []byte("a")))
	require.NoError(tsv.Insert(ctx, key2, []byte("b")))
	require.NoError(tsv.Remove(ctx, key1))
	tsv.Rollback(ctx, 0)

	val, err := tsv.GetValue(ctx, key1)
	require.NoError(err)
	require.Equal(testVal, val)
	_, err = tsv.GetValue(ctx, key2)
	require.ErrorIs(err, database.ErrNotFound)
	require.Zero(tsv.PendingChanges())

	tsv.Commit()
	require.Zero(ts.PendingChanges())
}

func TestExists(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{key1str: state.All, key2str: state.All}, map[string][]byte{key1str: testVal})
	changed, exists, err := tsv.Exists(ctx, key1)
	require.NoError(err)
	require.False(changed)
	require.True(exists)

	require.NoError(tsv.Insert(ctx, key2, testVal))
	changed, exists, err = tsv.Exists(ctx, key2)
	require.NoError(err)
	require.True(changed)
	require.True(exists)
}

func TestWriteChanges(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)
	db := memdb.New()
	require.NoError(db.Put(key1, testVal))

	tsv := ts.NewView(state.Keys{key1str: state.All, key2str: state.All}, map[string][]byte{key1str: testVal})
	require.NoError(tsv.Remove(ctx, key1))
	require.NoError(tsv.Insert(ctx, key2, []byte("two")))
	tsv.Commit()
	require.Equal([]string{key1str, key2str}, ts.ChangedKeys())

	batch := db.NewBatch()
	n, err := ts.WriteChanges(ctx, batch)
	require.NoError(err)
	require.Equal(2, n)
	require.NoError(batch.Write())

	has, err := db.Has(key1)
	require.NoError(err)
	require.False(has)
	v, err := db.Get(key2)
	require.NoError(err)
	require.Equal([]byte("two"), v)
}
