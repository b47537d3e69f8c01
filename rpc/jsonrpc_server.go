// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"go.uber.org/zap"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/storage"
)

type JSONRPCServer struct {
	vm VM
}

func NewJSONRPCServer(vm VM) *JSONRPCServer {
	return &JSONRPCServer{vm}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (j *JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	j.vm.Logger().Info("ping")
	reply.Success = true
	return nil
}

type NetworkReply struct {
	NetworkID      uint32 `json:"networkId"`
	ChainID        ids.ID `json:"chainId"`
	ValidityWindow int64  `json:"validityWindow"`
}

func (j *JSONRPCServer) Network(_ *http.Request, _ *struct{}, reply *NetworkReply) (err error) {
	rules := j.vm.Rules()
	reply.NetworkID = rules.NetworkID()
	reply.ChainID = rules.ChainID()
	reply.ValidityWindow = rules.GetValidityWindow()
	return nil
}

type SubmitTxArgs struct {
	Tx []byte `json:"tx"`
}

type SubmitTxReply struct {
	TxID    ids.ID           `json:"txId"`
	Receipt *storage.Receipt `json:"receipt"`
}

// SubmitTx returns an error only when the transaction is rejected. A failed
// action is reported in the receipt.
func (j *JSONRPCServer) SubmitTx(
	req *http.Request,
	args *SubmitTxArgs,
	reply *SubmitTxReply,
) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "JSONRPCServer.SubmitTx")
	defer span.End()

	txID, receipt, err := j.vm.SubmitBytes(ctx, args.Tx)
	if receipt == nil {
		return err
	}
	if err != nil {
		j.vm.Logger().Debug("submitted transaction failed",
			zap.Stringer("txID", txID),
			zap.Error(err),
		)
	}
	reply.TxID = txID
	reply.Receipt = receipt
	return nil
}

type TrackArgs struct {
	TokenID codec.Address `json:"tokenId"`
}

type TrackReply struct {
	Address codec.Address  `json:"address"`
	Track   *storage.Track `json:"track"`
}

func (j *JSONRPCServer) Track(req *http.Request, args *TrackArgs, reply *TrackReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "JSONRPCServer.Track")
	defer span.End()

	addr, track, exists, err := j.vm.Track(ctx, args.TokenID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrTrackNotFound, args.TokenID)
	}
	reply.Address = addr
	reply.Track = track
	return nil
}

type MintArgs struct {
	Mint codec.Address `json:"mint"`
}

type MintReply struct {
	Mint *storage.Mint `json:"mint"`
}

func (j *JSONRPCServer) Mint(req *http.Request, args *MintArgs, reply *MintReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "JSONRPCServer.Mint")
	defer span.End()

	mint, exists, err := j.vm.Mint(ctx, args.Mint)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrMintNotFound, args.Mint)
	}
	reply.Mint = mint
	return nil
}

type BalanceArgs struct {
	Owner codec.Address `json:"owner"`
	Mint  codec.Address `json:"mint"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "JSONRPCServer.Balance")
	defer span.End()

	balance, err := j.vm.Balance(ctx, args.Owner, args.Mint)
	if err != nil {
		return err
	}
	reply.Amount = balance
	return nil
}

type TransactionArgs struct {
	TxID ids.ID `json:"txId"`
}

type TransactionReply struct {
	Receipt *storage.Receipt `json:"receipt"`
}

func (j *JSONRPCServer) Transaction(req *http.Request, args *TransactionArgs, reply *TransactionReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "JSONRPCServer.Transaction")
	defer span.End()

	found, receipt, err := j.vm.Transaction(ctx, args.TxID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrTxNotFound, args.TxID)
	}
	reply.Receipt = receipt
	return nil
}
