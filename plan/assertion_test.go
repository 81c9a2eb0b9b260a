// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bondingcurve/pricing"
)

func TestValidateAssertion(t *testing.T) {
	tests := []struct {
		name      string
		actual    pricing.Price
		assertion *ResultAssertion
		expected  bool
		wantErr   error
	}{
		{"IsGreaterThan", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericGt), Value: "3"}, true, nil},
		{"IsNotGreaterThan", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericGt), Value: "10"}, false, nil},
		{"IsLessThan", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericLt), Value: "10"}, true, nil},
		{"IsNotLessThan", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericLt), Value: "2"}, false, nil},
		{"IsEqualTo", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericEq), Value: "5"}, true, nil},
		{"IsNotEqual", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericNe), Value: "3"}, true, nil},
		{"IsGreaterThanOrEqualToSame", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericGe), Value: "5"}, true, nil},
		{"IsLessThanOrEqualToLarger", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericLe), Value: "6"}, true, nil},
		{"ExactIgnoresDelta", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericEq), Value: "6", Delta: "10"}, false, nil},
		{"ExactLargeValues", pricing.ExactPrice(1<<63 + 1), &ResultAssertion{Operator: string(NumericEq), Value: "9223372036854775808"}, false, nil},
		{"FloatWithinDelta", pricing.LossyPrice(462.57790691979), &ResultAssertion{Operator: string(NumericEq), Value: "462.5779069197911", Delta: "1e-9"}, true, nil},
		{"FloatOutsideDelta", pricing.LossyPrice(462.5), &ResultAssertion{Operator: string(NumericEq), Value: "462.5779069197911", Delta: "1e-9"}, false, nil},
		{"FloatNotEqual", pricing.LossyPrice(462.5), &ResultAssertion{Operator: string(NumericNe), Value: "462.5779069197911", Delta: "1e-9"}, true, nil},
		{"FloatExact", pricing.LossyPrice(0.02), &ResultAssertion{Operator: string(NumericEq), Value: "0.02"}, true, nil},
		{"FloatLess", pricing.LossyPrice(45.01), &ResultAssertion{Operator: string(NumericLt), Value: "50"}, true, nil},
		{"FloatValueOnExactPrice", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericEq), Value: "5.0"}, false, ErrInvalidNumber},
		{"UnknownOperator", pricing.ExactPrice(5), &ResultAssertion{Operator: "<>", Value: "5"}, false, ErrInvalidOperator},
		{"ParseNothingFails", pricing.ExactPrice(5), &ResultAssertion{Operator: string(NumericEq)}, false, ErrMissingValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			result, err := validateAssertion(tt.actual, tt.assertion)
			require.ErrorIs(err, tt.wantErr)
			require.Equal(tt.expected, result)
		})
	}
}

func TestRequireCheck(t *testing.T) {
	tests := []struct {
		name    string
		require Require
		price   pricing.Price
		stepErr error
		wantErr error
	}{
		{
			name:    "expected error",
			require: Require{Error: "overflow"},
			stepErr: pricing.ErrOverflow,
		},
		{
			name:    "different error",
			require: Require{Error: "division"},
			stepErr: pricing.ErrOverflow,
			wantErr: ErrAssertionFailed,
		},
		{
			name:    "missing error",
			require: Require{Error: "overflow"},
			price:   pricing.ExactPrice(1),
			wantErr: ErrUnexpectedResult,
		},
		{
			name:    "unexpected error",
			require: Require{Result: &ResultAssertion{Operator: "==", Value: "1"}},
			stepErr: pricing.ErrOverflow,
			wantErr: pricing.ErrOverflow,
		},
		{
			name:    "result holds",
			require: Require{Result: &ResultAssertion{Operator: "==", Value: "1"}},
			price:   pricing.ExactPrice(1),
		},
		{
			name:    "result does not hold",
			require: Require{Result: &ResultAssertion{Operator: "==", Value: "2"}},
			price:   pricing.ExactPrice(1),
			wantErr: ErrAssertionFailed,
		},
		{
			name:  "empty requirement",
			price: pricing.ExactPrice(1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.require.check(tt.price, tt.stepErr), tt.wantErr)
		})
	}
}
