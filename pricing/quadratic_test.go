// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bondingcurve/consts"
)

func TestQuadraticPrice(t *testing.T) {
	curve := NewQuadraticCurve[uint64](10_000_000, 500_000_000, 1_000_000_000)
	tests := []struct {
		supply uint64
		want   uint64
	}{
		{supply: 0, want: 1_000_000_000},
		{supply: 1, want: 1_510_000_000},
		{supply: 8, want: 5_640_000_000},
		{supply: 800, want: 6_801_000_000_000},
	}
	for _, tt := range tests {
		require := require.New(t)

		require.Equal(tt.want, curve.Price(tt.supply))
		got, err := curve.PriceChecked(tt.supply)
		require.NoError(err)
		require.Equal(tt.want, got)
	}
}

func TestQuadraticPriceManyMatchesSum(t *testing.T) {
	require := require.New(t)

	curves := []QuadraticCurve[uint64]{
		NewQuadraticCurve[uint64](10_000_000, 500_000_000, 1_000_000_000),
		NewQuadraticCurve[uint64](1, 0, 0),
		NewQuadraticCurve[uint64](0, 3, 5),
		NewQuadraticCurve[uint64](7, 0, 11),
	}
	for _, curve := range curves {
		for _, start := range []uint64{0, 1, 2, 5, 99, 1_000} {
			for amount := uint64(0); amount <= 25; amount++ {
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
}

func TestQuadraticRemoveBelowZero(t *testing.T) {
	require := require.New(t)

	curve := NewQuadraticCurve[uint64](1, 1, 1)
	_, err := curve.PriceManyChecked(3, 5, Remove)
	require.ErrorIs(err, ErrOverflow)

	// 3 -> 13, 2 -> 7, 1 -> 3, 0 -> 1
	got, err := curve.PriceManyChecked(3, 4, Remove)
	require.NoError(err)
	require.Equal(uint64(24), got)
}

func TestQuadraticOverflow(t *testing.T) {
	require := require.New(t)

	curve := NewQuadraticCurve[uint64](1, 0, 0)
	_, err := curve.PriceChecked(1 << 32)
	require.ErrorIs(err, ErrOverflow)

	got, err := curve.PriceChecked(1<<32 - 1)
	require.NoError(err)
	require.Equal(uint64(1<<32-1)*(1<<32-1), got)

	_, err = NewQuadraticCurve(consts.MaxUint64, 0, 0).PriceManyChecked(1, 2, Add)
	require.ErrorIs(err, ErrOverflow)
	_, err = NewQuadraticCurve[uint64](0, 0, consts.MaxUint64).PriceManyChecked(0, 2, Add)
	require.ErrorIs(err, ErrOverflow)
}

func TestQuadraticNarrowDomain(t *testing.T) {
	require := require.New(t)

	curve := NewQuadraticCurve[uint32](2, 3, 4)
	for _, start := range []uint64{0, 3, 40} {
		for amount := uint64(1); amount <= 10; amount++ {
			var added uint32
			for i := uint64(0); i < amount; i++ {
				added += curve.Price(start + i)
			}
			got, err := curve.PriceManyChecked(start, amount, Add)
			require.NoError(err)
			require.Equal(added, got)
		}
	}

	_, err := curve.PriceChecked(1 << 16)
	require.ErrorIs(err, ErrOverflow)
	_, err = curve.PriceChecked(uint64(consts.MaxUint32) + 1)
	require.ErrorIs(err, ErrOverflow)
}
