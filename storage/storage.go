// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/consts"
)

// Metadata
// 0x0/ (tx)
//   -> [txID] => timestamp|success|error|outputs
//
// State
// 0x0/ (tracks)
//   -> [track address] => discriminator|borsh(track)
// 0x1/ (mints)
//   -> [token id] => authority|supply|decimals
// 0x2/ (holdings)
//   -> [holding address] => mint|owner|amount

const (
	// metaDB
	txPrefix = 0x0

	// stateDB
	trackPrefix   = 0x0
	mintPrefix    = 0x1
	holdingPrefix = 0x2

	// Both namespaces share one database, so metadata keys carry an extra
	// leading byte.
	metaPrefix = 0xff
)

var (
	failureByte = byte(0x0)
	successByte = byte(0x1)
)

// Receipt is the stored outcome of a submitted transaction.
type Receipt struct {
	Timestamp int64    `json:"timestamp"`
	Success   bool     `json:"success"`
	Error     string   `json:"error,omitempty"`
	Outputs   [][]byte `json:"outputs,omitempty"`
}

// [metaPrefix] + [txPrefix] + [txID]
func TxKey(id ids.ID) (k []byte) {
	k = make([]byte, 2+consts.IDLen)
	k[0] = metaPrefix
	k[1] = txPrefix
	copy(k[2:], id[:])
	return
}

func StoreTransaction(
	_ context.Context,
	db database.KeyValueWriter,
	id ids.ID,
	r *Receipt,
) error {
	p := codec.NewWriter(consts.Int64Len+consts.BoolLen, consts.NetworkSizeLimit)
	p.PackInt64(r.Timestamp)
	if r.Success {
		p.PackByte(successByte)
	} else {
		p.PackByte(failureByte)
	}
	p.PackString(r.Error)
	p.PackInt(len(r.Outputs))
	for _, output := range r.Outputs {
		p.PackBytes(output)
	}
	if err := p.Err(); err != nil {
		return err
	}
	return db.Put(TxKey(id), p.Bytes())
}

func GetTransaction(
	_ context.Context,
	db database.KeyValueReader,
	id ids.ID,
) (bool, *Receipt, error) {
	v, err := db.Get(TxKey(id))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	p := codec.NewReader(v, consts.NetworkSizeLimit)
	r := &Receipt{
		Timestamp: p.UnpackInt64(false),
		Success:   p.UnpackByte() == successByte,
		Error:     p.UnpackString(consts.NetworkSizeLimit, false),
	}
	numOutputs := p.UnpackInt(false)
	for i := 0; i < numOutputs && p.Err() == nil; i++ {
		var output []byte
		p.UnpackBytes(consts.NetworkSizeLimit, false, &output)
		r.Outputs = append(r.Outputs, output)
	}
	if err := p.Err(); err != nil {
		return false, nil, err
	}
	return true, r, nil
}

// HasTransaction returns whether a receipt exists for [id].
func HasTransaction(db database.KeyValueReader, id ids.ID) (bool, error) {
	return db.Has(TxKey(id))
}
