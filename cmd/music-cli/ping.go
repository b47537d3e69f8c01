// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the endpoint is serving and print its network",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := getClient(cmd)
		if err != nil {
			return err
		}
		ok, err := client.Ping(ctx)
		if err != nil {
			return fmt.Errorf("failed to ping: %w", err)
		}
		networkID, chainID, validityWindow, err := client.Network(ctx)
		if err != nil {
			return fmt.Errorf("failed to get network: %w", err)
		}
		return printValue(cmd, pingCmdResponse{
			Success:        ok,
			NetworkID:      networkID,
			ChainID:        chainID.String(),
			ValidityWindow: validityWindow,
		})
	},
}

type pingCmdResponse struct {
	Success        bool   `json:"success"`
	NetworkID      uint32 `json:"networkId"`
	ChainID        string `json:"chainId"`
	ValidityWindow int64  `json:"validityWindow"`
}

func (r pingCmdResponse) String() string {
	return fmt.Sprintf("success=%t networkID=%d chainID=%s validityWindow=%dms", r.Success, r.NetworkID, r.ChainID, r.ValidityWindow)
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
