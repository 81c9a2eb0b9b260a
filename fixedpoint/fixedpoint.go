// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fixedpoint converts between float64 values and unsigned integers
// scaled by a power of ten.
package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ava-labs/bondingcurve/consts"
)

var (
	ErrInvalidNumber   = errors.New("invalid number")
	ErrTooManyDecimals = errors.New("too many decimals")
	ErrOverflow        = errors.New("overflow")
)

// FloatToFixed returns value*10^decimals truncated toward zero. Negative and
// NaN inputs yield 0 and values past the uint64 range saturate.
func FloatToFixed(value float64, decimals uint8) uint64 {
	scaled := value * math.Pow10(int(decimals))
	switch {
	case math.IsNaN(scaled) || scaled <= 0:
		return 0
	case scaled >= float64(consts.MaxUint64):
		return consts.MaxUint64
	default:
		return uint64(scaled)
	}
}

func FixedToFloat(value uint64, decimals uint8) float64 {
	return float64(value) / math.Pow10(int(decimals))
}

// Format renders [value] with exactly [decimals] fractional digits.
func Format(value uint64, decimals uint8) string {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(value), -int32(decimals))
	return d.StringFixed(int32(decimals))
}

// Parse reads a non-negative decimal string into a value scaled by
// 10^decimals without going through float64.
func Parse(s string, decimals uint8) (uint64, error) {
	s = strings.TrimSpace(s)
	whole, frac, hasPoint := strings.Cut(s, ".")
	switch {
	case whole == "" && frac == "", hasPoint && frac == "", !isDigits(whole), !isDigits(frac):
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	case len(frac) > int(decimals):
		return 0, fmt.Errorf("%w: %q has more than %d", ErrTooManyDecimals, s, decimals)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	scaled := d.Shift(int32(decimals)).BigInt()
	if !scaled.IsUint64() {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return scaled.Uint64(), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
