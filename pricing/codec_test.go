// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	curves := []Curve{
		NewLinearCurve[uint64](500_000_000, 1_000_000_000),
		NewQuadraticCurve[uint64](10_000_000, 500_000_000, 1_000_000_000),
		NewExponentialCurve(0.01, 0.02),
		NewLogarithmicCurve(0.02, 0.01),
		NewSigmoidCurve(100, 0.01, 500),
		NewSigmoidCurve(math.Inf(1), -0.5, 0),
	}
	for _, curve := range curves {
		t.Run(curve.Kind().String(), func(t *testing.T) {
			require := require.New(t)

			b, err := Marshal(curve)
			require.NoError(err)
			require.Len(b, 1+curve.Size())
			require.Equal(byte(curve.Kind()), b[0])

			decoded, err := Unmarshal(b)
			require.NoError(err)
			require.Equal(curve, decoded)
		})
	}
}

func TestCodecLayout(t *testing.T) {
	require := require.New(t)

	b, err := Marshal(NewLinearCurve[uint64](1, 2))
	require.NoError(err)
	require.Equal("0100000000000000010000000000000002", hex.EncodeToString(b))

	b, err = Marshal(NewExponentialCurve(1, 2))
	require.NoError(err)
	require.Equal("033ff00000000000004000000000000000", hex.EncodeToString(b))

	// The mid supply is an integer word, not float bits.
	b, err = Marshal(NewSigmoidCurve(1, 1, 500))
	require.NoError(err)
	require.Equal("053ff00000000000003ff000000000000000000000000001f4", hex.EncodeToString(b))
}

func TestUnmarshalInvalid(t *testing.T) {
	valid, err := Marshal(NewQuadraticCurve[uint64](1, 2, 3))
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{name: "empty", input: nil, wantErr: ErrInvalidBytes},
		{name: "invalid kind", input: []byte{0}, wantErr: ErrUnknownKind},
		{name: "unknown kind", input: []byte{42, 0, 0}, wantErr: ErrUnknownKind},
		{name: "truncated", input: valid[:len(valid)-1], wantErr: ErrInvalidBytes},
		{name: "trailing", input: append(append([]byte{}, valid...), 0), wantErr: ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			curve, err := Unmarshal(tt.input)
			require.ErrorIs(err, tt.wantErr)
			require.Nil(curve)
		})
	}
}
