// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
	"golang.org/x/exp/slices"
)

var _ database.Iterator = (*iter)(nil)

type iter struct {
	db   *Database
	iter *pebble.Iterator

	initialized bool
	closed      bool
	err         error

	hasNext bool
	nextKey []byte
	nextVal []byte
}

func (it *iter) Next() bool {
	it.db.lock.RLock()
	defer it.db.lock.RUnlock()

	switch {
	case it.closed:
		it.hasNext = false
	case it.db.closed:
		it.hasNext = false
		it.err = database.ErrClosed
	case !it.initialized:
		it.hasNext = it.iter.First()
		it.initialized = true
	default:
		it.hasNext = it.iter.Next()
	}

	if !it.hasNext {
		it.nextKey = nil
		it.nextVal = nil
		return false
	}
	it.nextKey = slices.Clone(it.iter.Key())
	it.nextVal = slices.Clone(it.iter.Value())
	return true
}

func (it *iter) Error() error {
	if it.err != nil {
		return it.err
	}
	if it.closed {
		return nil
	}
	return updateError(it.iter.Error())
}

func (it *iter) Key() []byte {
	if !it.hasNext {
		return nil
	}
	return it.nextKey
}

func (it *iter) Value() []byte {
	if !it.hasNext {
		return nil
	}
	return it.nextVal
}

func (it *iter) Release() {
	it.db.lock.RLock()
	defer it.db.lock.RUnlock()

	if it.closed {
		return
	}
	it.closed = true
	if err := it.iter.Close(); err != nil && it.err == nil {
		it.err = updateError(err)
	}
}
