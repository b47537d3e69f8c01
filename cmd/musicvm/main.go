// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/musicvm/consts"
)

var rootCmd = &cobra.Command{
	Use:     "musicvm",
	Short:   "Runs a music record store node",
	RunE:    runFunc,
	Version: consts.Version.String(),
}

func init() {
	rootCmd.Flags().String("config", "", "Path to a JSON or YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
