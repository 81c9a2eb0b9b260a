// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "errors"

var (
	ErrOverflow = errors.New("overflow")
	// ErrDivisionByZero is never returned by the current formulas. Float
	// curves with a zero growth follow IEEE-754 semantics instead.
	ErrDivisionByZero = errors.New("division by zero")

	ErrInvalidSide  = errors.New("invalid side")
	ErrInvalidKind  = errors.New("invalid curve kind")
	ErrUnknownKind  = errors.New("unknown curve kind")
	ErrInvalidSize  = errors.New("invalid curve size")
	ErrInvalidBytes = errors.New("invalid curve bytes")
)
