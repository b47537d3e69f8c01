// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/musicvm/crypto/ed25519"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage keys",
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new key and store it in the config",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return fmt.Errorf("failed to generate key: %w", err)
		}
		if err := setConfigValue("key", key.ToHex()); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		return printValue(cmd, keyCmdResponse{
			Address: key.Address().String(),
		})
	},
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print current key address",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := getKey(cmd)
		if err != nil {
			return err
		}
		return printValue(cmd, keyCmdResponse{
			Address: key.Address().String(),
		})
	},
}

var keyImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a raw private key file into the config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := ed25519.LoadKey(args[0])
		if err != nil {
			return fmt.Errorf("failed to load key: %w", err)
		}
		if err := setConfigValue("key", key.ToHex()); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		return printValue(cmd, keyCmdResponse{
			Address: key.Address().String(),
		})
	},
}

var keyExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the current private key to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := getKey(cmd)
		if err != nil {
			return err
		}
		if err := key.Save(args[0]); err != nil {
			return fmt.Errorf("failed to save key: %w", err)
		}
		return printValue(cmd, keyCmdResponse{
			Address: key.Address().String(),
		})
	},
}

type keyCmdResponse struct {
	Address string `json:"address"`
}

func (r keyCmdResponse) String() string {
	return r.Address
}

func init() {
	keyCmd.AddCommand(keyGenerateCmd, keyShowCmd, keyImportCmd, keyExportCmd)
	rootCmd.AddCommand(keyCmd)
}
