// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/bondingcurve/pricing"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the binary encoding of a curve as hex",
	RunE: func(cmd *cobra.Command, _ []string) error {
		curve, err := curveFromFlags(cmd)
		if err != nil {
			return err
		}
		b, err := pricing.Marshal(curve)
		if err != nil {
			return fmt.Errorf("failed to encode curve: %w", err)
		}
		resp := newCurveResponse(curve)
		resp.Hex = hex.EncodeToString(b)
		return printValue(cmd, resp)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Print the parameters of a hex encoded curve",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			return fmt.Errorf("failed to decode hex: %w", err)
		}
		curve, err := pricing.Unmarshal(b)
		if err != nil {
			return err
		}
		return printValue(cmd, newCurveResponse(curve))
	},
}

func init() {
	addCurveFlags(encodeCmd)
	rootCmd.AddCommand(encodeCmd, decodeCmd)
}
