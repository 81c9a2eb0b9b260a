// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"fmt"
	"math"
	"strings"

	"github.com/ava-labs/bondingcurve/pricing"
)

type Operator string

const (
	NumericGt Operator = ">"
	NumericLt Operator = "<"
	NumericGe Operator = ">="
	NumericLe Operator = "<="
	NumericEq Operator = "=="
	NumericNe Operator = "!="
)

func (o Operator) Valid() bool {
	switch o {
	case NumericGt, NumericLt, NumericGe, NumericLe, NumericEq, NumericNe:
		return true
	default:
		return false
	}
}

// check returns nil if the outcome of a step satisfies the requirement.
func (r *Require) check(price pricing.Price, stepErr error) error {
	if r.Error != "" {
		if stepErr == nil {
			return fmt.Errorf("%w: %w: want %q, got %s", ErrAssertionFailed, ErrUnexpectedResult, r.Error, price)
		}
		if !strings.Contains(stepErr.Error(), r.Error) {
			return fmt.Errorf("%w: want error %q, got %q", ErrAssertionFailed, r.Error, stepErr)
		}
		return nil
	}
	if stepErr != nil {
		return stepErr
	}
	if r.Result == nil {
		return nil
	}
	ok, err := validateAssertion(price, r.Result)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %s %s", ErrAssertionFailed, price, r.Result.Operator, r.Result.Value)
	}
	return nil
}

// validateAssertion compares [actual] against the assertion. Integer prices
// compare exactly. Float prices are equal when within the assertion delta.
func validateAssertion(actual pricing.Price, assertion *ResultAssertion) (bool, error) {
	op := Operator(assertion.Operator)
	if !op.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidOperator, assertion.Operator)
	}
	if actual.Exact {
		value, err := assertion.Value.Uint64()
		if err != nil {
			return false, err
		}
		return compare(op, actual.Int, value, 0), nil
	}

	value, err := assertion.Value.Float64()
	if err != nil {
		return false, err
	}
	var delta float64
	if !assertion.Delta.IsZero() {
		delta, err = assertion.Delta.Float64()
		if err != nil {
			return false, err
		}
	}
	return compare(op, actual.Float, value, delta), nil
}

func compare[T uint64 | float64](op Operator, actual, value T, delta float64) bool {
	switch op {
	case NumericGt:
		return actual > value
	case NumericLt:
		return actual < value
	case NumericGe:
		return actual >= value
	case NumericLe:
		return actual <= value
	case NumericEq:
		return equal(actual, value, delta)
	case NumericNe:
		return !equal(actual, value, delta)
	default:
		return false
	}
}

func equal[T uint64 | float64](actual, value T, delta float64) bool {
	if actual == value {
		return true
	}
	return math.Abs(float64(actual)-float64(value)) <= delta && delta > 0
}
