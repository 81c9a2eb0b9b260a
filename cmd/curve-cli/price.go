// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/bondingcurve/fixedpoint"
	"github.com/ava-labs/bondingcurve/pricing"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a single unit at a supply",
	RunE: func(cmd *cobra.Command, _ []string) error {
		curve, err := curveFromFlags(cmd)
		if err != nil {
			return err
		}
		supply, _ := cmd.Flags().GetUint64("supply")
		checked, _ := cmd.Flags().GetBool("checked")

		log.Debug("pricing unit",
			zap.Stringer("kind", curve.Kind()),
			zap.Uint64("supply", supply),
			zap.Bool("checked", checked),
		)
		price, err := pricing.Quote(curve, supply, checked)
		if err != nil {
			return fmt.Errorf("failed to price supply %d: %w", supply, err)
		}
		return printPrice(cmd, price)
	},
}

var priceManyCmd = &cobra.Command{
	Use:   "price-many",
	Short: "Price a batch of units bought or sold from a supply",
	RunE: func(cmd *cobra.Command, _ []string) error {
		curve, err := curveFromFlags(cmd)
		if err != nil {
			return err
		}
		supply, _ := cmd.Flags().GetUint64("supply")
		amount, _ := cmd.Flags().GetUint64("amount")
		checked, _ := cmd.Flags().GetBool("checked")
		sideStr, _ := cmd.Flags().GetString("side")
		side, err := pricing.ParseSide(sideStr)
		if err != nil {
			return err
		}

		log.Debug("pricing batch",
			zap.Stringer("kind", curve.Kind()),
			zap.Uint64("supply", supply),
			zap.Uint64("amount", amount),
			zap.Stringer("side", side),
			zap.Bool("checked", checked),
		)
		price, err := pricing.QuoteMany(curve, supply, amount, side, checked)
		if err != nil {
			return fmt.Errorf("failed to price %d units from supply %d: %w", amount, supply, err)
		}
		return printPrice(cmd, price)
	},
}

type priceCmdResponse struct {
	Price pricing.Price `json:"price"`
	// Fixed is the float price scaled to the requested decimals.
	Fixed string `json:"fixed,omitempty"`
	// Decimal is Fixed rendered with the requested number of decimals.
	Decimal string `json:"decimal,omitempty"`
}

func (r priceCmdResponse) String() string {
	if r.Decimal != "" {
		return r.Decimal
	}
	return r.Price.String()
}

// printPrice prints [price]. With --decimals, float prices are truncated to
// the fixed-point integer an integer-only consumer would store and printed
// with that many decimals.
func printPrice(cmd *cobra.Command, price pricing.Price) error {
	resp := priceCmdResponse{Price: price}
	if cmd.Flags().Changed("decimals") && !price.Exact {
		decimals, err := cmd.Flags().GetUint8("decimals")
		if err != nil {
			return err
		}
		fixed := fixedpoint.FloatToFixed(price.Float, decimals)
		resp.Fixed = strconv.FormatUint(fixed, 10)
		resp.Decimal = fixedpoint.Format(fixed, decimals)
	}
	return printValue(cmd, resp)
}

func init() {
	for _, cmd := range []*cobra.Command{priceCmd, priceManyCmd} {
		addCurveFlags(cmd)
		cmd.Flags().Uint64("supply", 0, "Supply of the first unit priced")
		cmd.Flags().Bool("checked", false, "Report overflow instead of wrapping (integer curves)")
		cmd.Flags().Uint8("decimals", 0, "Truncate float prices to this many decimals")
		rootCmd.AddCommand(cmd)
	}
	priceManyCmd.Flags().Uint64("amount", 1, "Number of units in the batch")
	priceManyCmd.Flags().String("side", "add", "add (buy) or remove (sell)")
}
