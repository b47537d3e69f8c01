// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/musicvm/chain"
	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/storage"
	"github.com/ava-labs/musicvm/utils"
)

type JSONRPCClient struct {
	requester *EndpointRequester

	networkID      uint32
	chainID        ids.ID
	validityWindow int64
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	req := NewEndpointRequester(uri, Name)
	return &JSONRPCClient{requester: req}
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.requester.SendRequest(ctx,
		"ping",
		nil,
		resp,
	)
	return resp.Success, err
}

// Network returns the network id, chain id and validity window of the host.
// The reply is cached after the first call.
func (cli *JSONRPCClient) Network(ctx context.Context) (uint32, ids.ID, int64, error) {
	if cli.chainID != ids.Empty {
		return cli.networkID, cli.chainID, cli.validityWindow, nil
	}

	resp := new(NetworkReply)
	err := cli.requester.SendRequest(
		ctx,
		"network",
		nil,
		resp,
	)
	if err != nil {
		return 0, ids.Empty, 0, err
	}
	cli.networkID = resp.NetworkID
	cli.chainID = resp.ChainID
	cli.validityWindow = resp.ValidityWindow
	return resp.NetworkID, resp.ChainID, resp.ValidityWindow, nil
}

// SubmitTx submits signed transaction bytes. An action that failed on the host
// is returned as [ErrTxFailed] together with its receipt.
func (cli *JSONRPCClient) SubmitTx(ctx context.Context, d []byte) (ids.ID, *storage.Receipt, error) {
	resp := new(SubmitTxReply)
	err := cli.requester.SendRequest(
		ctx,
		"submitTx",
		&SubmitTxArgs{Tx: d},
		resp,
	)
	if err != nil {
		return ids.Empty, nil, err
	}
	if !resp.Receipt.Success {
		return resp.TxID, resp.Receipt, fmt.Errorf("%w: %s", ErrTxFailed, resp.Receipt.Error)
	}
	return resp.TxID, resp.Receipt, nil
}

// GenerateTransaction signs [action] with [factory] for the connected host,
// expiring at the end of the validity window.
func (cli *JSONRPCClient) GenerateTransaction(
	ctx context.Context,
	action chain.Action,
	factory chain.AuthFactory,
	registry chain.Registry,
) (*chain.Transaction, error) {
	_, chainID, validityWindow, err := cli.Network(ctx)
	if err != nil {
		return nil, err
	}
	base := &chain.Base{
		Timestamp: utils.UnixRMilli(-1, validityWindow),
		ChainID:   chainID,
	}
	return chain.NewTx(base, action).Sign(factory, registry)
}

func (cli *JSONRPCClient) Track(ctx context.Context, tokenID codec.Address) (codec.Address, *storage.Track, error) {
	resp := new(TrackReply)
	err := cli.requester.SendRequest(
		ctx,
		"track",
		&TrackArgs{TokenID: tokenID},
		resp,
	)
	return resp.Address, resp.Track, err
}

func (cli *JSONRPCClient) Mint(ctx context.Context, mint codec.Address) (*storage.Mint, error) {
	resp := new(MintReply)
	err := cli.requester.SendRequest(
		ctx,
		"mint",
		&MintArgs{Mint: mint},
		resp,
	)
	return resp.Mint, err
}

func (cli *JSONRPCClient) Balance(ctx context.Context, owner codec.Address, mint codec.Address) (uint64, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"balance",
		&BalanceArgs{Owner: owner, Mint: mint},
		resp,
	)
	return resp.Amount, err
}

func (cli *JSONRPCClient) Transaction(ctx context.Context, txID ids.ID) (*storage.Receipt, error) {
	resp := new(TransactionReply)
	err := cli.requester.SendRequest(
		ctx,
		"transaction",
		&TransactionArgs{TxID: txID},
		resp,
	)
	return resp.Receipt, err
}
