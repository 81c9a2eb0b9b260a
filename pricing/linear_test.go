// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bondingcurve/consts"
)

func TestLinearPrice(t *testing.T) {
	curve := NewLinearCurve[uint64](500_000_000, 1_000_000_000)
	tests := []struct {
		supply uint64
		want   uint64
	}{
		{supply: 0, want: 1_000_000_000},
		{supply: 1, want: 1_500_000_000},
		{supply: 8, want: 5_000_000_000},
		{supply: 800, want: 401_000_000_000},
	}
	for _, tt := range tests {
		require := require.New(t)

		require.Equal(tt.want, curve.Price(tt.supply))
		got, err := curve.PriceChecked(tt.supply)
		require.NoError(err)
		require.Equal(tt.want, got)
	}
}

func TestLinearPriceManyMatchesSum(t *testing.T) {
	require := require.New(t)

	curve := NewLinearCurve[uint64](3, 7)
	for _, start := range []uint64{0, 1, 2, 7, 100, 1_000} {
		for amount := uint64(0); amount <= 20; amount++ {
			var added uint64
			for i := uint64(0); i < amount; i++ {
				added += curve.Price(start + i)
			}
			require.Equal(added, curve.PriceMany(start, amount, Add))
			got, err := curve.PriceManyChecked(start, amount, Add)
			require.NoError(err)
			require.Equal(added, got)

			if amount > start+1 {
				continue
			}
			var removed uint64
			for i := uint64(0); i < amount; i++ {
				removed += curve.Price(start - i)
			}
			require.Equal(removed, curve.PriceMany(start, amount, Remove))
			got, err = curve.PriceManyChecked(start, amount, Remove)
			require.NoError(err)
			require.Equal(removed, got)
		}
	}
}

func TestLinearPriceManyEdges(t *testing.T) {
	require := require.New(t)

	curve := NewLinearCurve[uint64](500_000_000, 1_000_000_000)
	require.Zero(curve.PriceMany(800, 0, Add))
	require.Zero(curve.PriceMany(800, 0, Remove))
	require.Equal(curve.Price(800), curve.PriceMany(800, 1, Add))
	require.Equal(curve.Price(800), curve.PriceMany(800, 1, Remove))

	// Selling every unit down to zero supply.
	got, err := curve.PriceManyChecked(9, 10, Remove)
	require.NoError(err)
	require.Equal(10*uint64(1_000_000_000)+500_000_000*45, got)

	// One unit more than the supply holds.
	_, err = curve.PriceManyChecked(9, 11, Remove)
	require.ErrorIs(err, ErrOverflow)
	_, err = curve.PriceManyChecked(0, 2, Remove)
	require.ErrorIs(err, ErrOverflow)
}

func TestLinearOverflow(t *testing.T) {
	require := require.New(t)

	curve := NewLinearCurve(consts.MaxUint64, 1)
	_, err := curve.PriceChecked(1)
	require.ErrorIs(err, ErrOverflow)
	// The unchecked path wraps.
	require.Zero(curve.Price(1))

	_, err = curve.PriceManyChecked(0, 3, Add)
	require.ErrorIs(err, ErrOverflow)

	price, err := curve.PriceChecked(0)
	require.NoError(err)
	require.Equal(uint64(1), price)
}

func TestLinearNarrowDomain(t *testing.T) {
	require := require.New(t)

	curve := NewLinearCurve[uint8](2, 10)
	require.Equal(uint8(210), curve.Price(100))

	price, err := curve.PriceChecked(122)
	require.NoError(err)
	require.Equal(uint8(254), price)

	_, err = curve.PriceChecked(123)
	require.ErrorIs(err, ErrOverflow)
	// The supply itself does not fit in the price domain.
	_, err = curve.PriceChecked(300)
	require.ErrorIs(err, ErrOverflow)

	// 10 + 12 + 14 + 16 = 52
	total, err := curve.PriceManyChecked(0, 4, Add)
	require.NoError(err)
	require.Equal(uint8(52), total)

	_, err = curve.PriceManyChecked(0, 20, Add)
	require.ErrorIs(err, ErrOverflow)
}
