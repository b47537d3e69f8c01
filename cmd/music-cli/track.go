// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/musicvm/actions"
	"github.com/ava-labs/musicvm/auth"
	"github.com/ava-labs/musicvm/chain"
	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/registry"
	"github.com/ava-labs/musicvm/storage"
	"github.com/ava-labs/musicvm/utils"
)

const requestTimeout = 30 * time.Second

var errTransferAborted = errors.New("transfer aborted")

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Create, issue, transfer and read tracks",
}

var trackCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a Track record for a token the signer already holds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fields, tokenID, err := trackFieldsFromFlags(cmd)
		if err != nil {
			return err
		}
		if tokenID == codec.EmptyAddress {
			return errors.New("token is required")
		}
		return submit(cmd, &actions.CreateTrack{TrackFields: fields, TokenID: tokenID})
	},
}

var trackIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Create a Track record and mint its single token to the signer",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fields, tokenID, err := trackFieldsFromFlags(cmd)
		if err != nil {
			return err
		}
		return submit(cmd, &actions.IssueTrack{TrackFields: fields, TokenID: tokenID})
	},
}

var trackTransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer a track owned by the signer",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tokenID, err := addressFlag(cmd, "token")
		if err != nil {
			return err
		}
		to, err := addressFlag(cmd, "to")
		if err != nil {
			return err
		}
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}
		if !yes {
			utils.Outf("{{yellow}}transferring{{/}} %s {{yellow}}to{{/}} %s\n", tokenID, to)
			cont, err := promptContinue()
			if err != nil {
				return err
			}
			if !cont {
				return errTransferAborted
			}
		}
		return submit(cmd, &actions.TransferTrack{TokenID: tokenID, To: to, Amount: 1})
	},
}

var trackGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the Track bound to a token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tokenID, err := addressFlag(cmd, "token")
		if err != nil {
			return err
		}
		client, err := getClient(cmd)
		if err != nil {
			return err
		}
		addr, track, err := client.Track(ctx, tokenID)
		if err != nil {
			return fmt.Errorf("failed to get track: %w", err)
		}
		return printValue(cmd, trackCmdResponse{
			Address: addr,
			Track:   track,
		})
	},
}

type trackCmdResponse struct {
	Address codec.Address  `json:"address"`
	Track   *storage.Track `json:"track"`
}

func (r trackCmdResponse) String() string {
	return fmt.Sprintf(
		"address=%s title=%q artist=%q owner=%s royalty=%d%% uri=%s",
		r.Address,
		r.Track.Title,
		r.Track.Artist,
		r.Track.Owner,
		r.Track.RoyaltyPercentage,
		r.Track.MetadataURI,
	)
}

type submitCmdResponse struct {
	TxID    string   `json:"txId"`
	Outputs []string `json:"outputs"`
}

func (r submitCmdResponse) String() string {
	return fmt.Sprintf("txID=%s outputs=%v", r.TxID, r.Outputs)
}

// submit signs [action] with the configured key and waits for its receipt.
func submit(cmd *cobra.Command, action chain.Action) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	key, err := getKey(cmd)
	if err != nil {
		return err
	}
	client, err := getClient(cmd)
	if err != nil {
		return err
	}
	tx, err := client.GenerateTransaction(ctx, action, auth.GetFactory(key), registry.New())
	if err != nil {
		return fmt.Errorf("failed to generate transaction: %w", err)
	}
	txID, receipt, err := client.SubmitTx(ctx, tx.Bytes())
	if err != nil {
		return fmt.Errorf("failed to submit transaction: %w", err)
	}
	outputs := make([]string, 0, len(receipt.Outputs))
	for _, output := range receipt.Outputs {
		addr, err := codec.ToAddress(output)
		if err != nil {
			outputs = append(outputs, codec.ToHex(output))
			continue
		}
		outputs = append(outputs, addr.String())
	}
	return printValue(cmd, submitCmdResponse{
		TxID:    txID.String(),
		Outputs: outputs,
	})
}

func addressFlag(cmd *cobra.Command, name string) (codec.Address, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return codec.EmptyAddress, err
	}
	if len(raw) == 0 {
		return codec.EmptyAddress, fmt.Errorf("%s is required", name)
	}
	addr, err := codec.ParseAddress(raw)
	if err != nil {
		return codec.EmptyAddress, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return addr, nil
}

func trackFieldsFromFlags(cmd *cobra.Command) (actions.TrackFields, codec.Address, error) {
	flags := cmd.Flags()
	var (
		fields actions.TrackFields
		err    error
	)
	if fields.Title, err = flags.GetString("title"); err != nil {
		return fields, codec.EmptyAddress, err
	}
	if fields.Artist, err = flags.GetString("artist"); err != nil {
		return fields, codec.EmptyAddress, err
	}
	if fields.Description, err = flags.GetString("description"); err != nil {
		return fields, codec.EmptyAddress, err
	}
	if fields.MetadataURI, err = flags.GetString("uri"); err != nil {
		return fields, codec.EmptyAddress, err
	}
	if fields.RoyaltyPercentage, err = flags.GetUint8("royalty"); err != nil {
		return fields, codec.EmptyAddress, err
	}
	rawToken, err := flags.GetString("token")
	if err != nil {
		return fields, codec.EmptyAddress, err
	}
	if len(rawToken) == 0 {
		return fields, codec.EmptyAddress, nil
	}
	tokenID, err := codec.ParseAddress(rawToken)
	if err != nil {
		return fields, codec.EmptyAddress, fmt.Errorf("failed to parse token: %w", err)
	}
	return fields, tokenID, nil
}

func init() {
	for _, c := range []*cobra.Command{trackCreateCmd, trackIssueCmd} {
		c.Flags().String("title", "", "Track title")
		c.Flags().String("artist", "", "Artist name")
		c.Flags().String("description", "", "Track description")
		c.Flags().String("uri", "", "Metadata URI")
		c.Flags().Uint8("royalty", 0, "Royalty percentage (0-100)")
		c.Flags().String("token", "", "Token id (generated from the transaction when issuing without one)")
	}
	trackTransferCmd.Flags().String("token", "", "Token id")
	trackTransferCmd.Flags().String("to", "", "New owner address")
	trackTransferCmd.Flags().Bool("yes", false, "Skip confirmation")
	trackGetCmd.Flags().String("token", "", "Token id")

	trackCmd.AddCommand(trackCreateCmd, trackIssueCmd, trackTransferCmd, trackGetCmd)
	rootCmd.AddCommand(trackCmd)
}
