// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"crypto/rand"
	"fmt"
	"os"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

const batchSize = 10_000

func randBytes() []byte {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

func BenchmarkBatchInsertion(b *testing.B) {
	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%t", sync), func(b *testing.B) {
			// Setup DB
			b.StopTimer()
			tdir := b.TempDir()
			cfg := NewDefaultConfig()
			cfg.Sync = sync
			db, _, err := New(tdir, cfg)
			if err != nil {
				b.Fatal(err)
			}

			// Setup keys
			keys := make([][]byte, batchSize)
			for i := 0; i < batchSize; i++ {
				keys[i] = randBytes()
			}

			b.StartTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				batch := db.NewBatch()
				for j := 0; j < batchSize; j++ {
					if err := batch.Put(keys[j], randBytes()); err != nil {
						b.Fatal(err)
					}
				}
				if err := batch.Write(); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			if err := db.Close(); err != nil {
				b.Fatal(err)
			}
			if err := os.RemoveAll(tdir); err != nil {
				b.Fatal(err)
			}
		})
	}
}

func newTestDB(t *testing.T) *Database {
	cfg := NewDefaultConfig()
	cfg.Sync = false
	db, registry, err := New(t.TempDir(), cfg)
	require.NoError(t, err)
	require.NotNil(t, registry)
	return db
}

func TestPutGetDelete(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)

	_, err := db.Get([]byte("missing"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Put([]byte("k"), []byte("v")))
	v, err := db.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)
	has, err := db.Has([]byte("k"))
	require.NoError(err)
	require.True(has)

	require.NoError(db.Delete([]byte("k")))
	has, err = db.Has([]byte("k"))
	require.NoError(err)
	require.False(has)

	require.NoError(db.Close())
	_, err = db.Get([]byte("k"))
	require.ErrorIs(err, database.ErrClosed)
	require.ErrorIs(db.Close(), database.ErrClosed)
}

func TestBatchReplay(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	defer db.Close()

	require.NoError(db.Put([]byte("old"), []byte{0}))
	batch := db.NewBatch()
	require.NoError(batch.Put([]byte("a"), []byte{1}))
	require.NoError(batch.Delete([]byte("old")))
	require.Equal(len("a")+1+len("old"), batch.Size())
	require.NoError(batch.Write())

	has, err := db.Has([]byte("old"))
	require.NoError(err)
	require.False(has)

	mem := memdb.New()
	require.NoError(mem.Put([]byte("old"), []byte{0}))
	require.NoError(batch.Replay(mem))
	v, err := mem.Get([]byte("a"))
	require.NoError(err)
	require.Equal([]byte{1}, v)
	has, err = mem.Has([]byte("old"))
	require.NoError(err)
	require.False(has)

	batch.Reset()
	require.Zero(batch.Size())
}

func TestIteratorPrefix(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	defer db.Close()

	for _, k := range []string{"a1", "a2", "a3", "b1"} {
		require.NoError(db.Put([]byte(k), []byte(k)))
	}

	it := db.NewIteratorWithStartAndPrefix([]byte("a2"), []byte("a"))
	defer it.Release()
	found := []string{}
	for it.Next() {
		found = append(found, string(it.Key()))
		require.Equal(it.Key(), it.Value())
	}
	require.NoError(it.Error())
	require.Equal([]string{"a2", "a3"}, found)
}

func TestPrefixToUpperBound(t *testing.T) {
	require := require.New(t)
	require.Equal([]byte{0x01, 0x03}, prefixToUpperBound([]byte{0x01, 0x02}))
	require.Equal([]byte{0x02}, prefixToUpperBound([]byte{0x01, 0xFF}))
	require.Nil(prefixToUpperBound([]byte{0xFF, 0xFF}))
	require.Nil(prefixToUpperBound(nil))
}

func TestBatchMetrics(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)

	// A transfer writes the Track, two holding accounts and the receipt.
	batch := db.NewBatch()
	for i := 0; i < 4; i++ {
		require.NoError(batch.Put(randBytes(), randBytes()))
	}
	require.NoError(batch.Write())

	require.Equal(float64(1), testutil.ToFloat64(db.metrics.batchWrites))
	require.Equal(1, testutil.CollectAndCount(db.metrics.batchOps))
}
