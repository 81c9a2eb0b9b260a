// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import "errors"

var (
	ErrInvalidFormat    = errors.New("plan is neither JSON nor YAML")
	ErrInvalidPlan      = errors.New("invalid plan")
	ErrInvalidStep      = errors.New("invalid step")
	ErrInvalidCurve     = errors.New("invalid curve")
	ErrUndefinedCurve   = errors.New("undefined curve")
	ErrInvalidMethod    = errors.New("invalid method")
	ErrInvalidOperator  = errors.New("invalid operator")
	ErrMissingValue     = errors.New("missing value")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrAssertionFailed  = errors.New("assertion failed")
	ErrUnexpectedResult = errors.New("expected an error but got a result")
)
