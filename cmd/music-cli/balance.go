// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/utils"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the balance of a token held by an address (the configured key by default)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tokenID, err := addressFlag(cmd, "token")
		if err != nil {
			return err
		}
		var owner codec.Address
		if rawOwner, _ := cmd.Flags().GetString("owner"); len(rawOwner) > 0 {
			owner, err = addressFlag(cmd, "owner")
		} else {
			key, kerr := getKey(cmd)
			owner, err = key.Address(), kerr
		}
		if err != nil {
			return err
		}

		client, err := getClient(cmd)
		if err != nil {
			return err
		}
		balance, err := client.Balance(ctx, owner, tokenID)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		var decimals uint8
		if balance > 0 {
			mint, err := client.Mint(ctx, tokenID)
			if err != nil {
				return fmt.Errorf("failed to get mint: %w", err)
			}
			decimals = mint.Decimals
		}
		return printValue(cmd, balanceCmdResponse{
			Owner:   owner.String(),
			Token:   tokenID.String(),
			Balance: utils.FormatBalance(balance, decimals),
		})
	},
}

type balanceCmdResponse struct {
	Owner   string `json:"owner"`
	Token   string `json:"token"`
	Balance string `json:"balance"`
}

func (r balanceCmdResponse) String() string {
	return fmt.Sprintf("%s holds %s of %s", r.Owner, r.Balance, r.Token)
}

func init() {
	balanceCmd.Flags().String("token", "", "Token id")
	balanceCmd.Flags().String("owner", "", "Owner address")
	rootCmd.AddCommand(balanceCmd)
}
