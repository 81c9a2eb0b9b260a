// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"fmt"
	"strings"
)

// Side is the direction of a batch operation. The zero value is not a valid
// side.
type Side uint8

const (
	// Add grows the supply (buy).
	Add Side = iota + 1
	// Remove shrinks the supply (sell).
	Remove
)

func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "buy":
		return Add, nil
	case "remove", "sell":
		return Remove, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

func (s Side) Valid() bool {
	return s == Add || s == Remove
}

func (s Side) String() string {
	switch s {
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

func (s Side) mustBeValid() {
	if !s.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidSide, uint8(s)))
	}
}

// span returns the supply interval swept by a batch of [amount] units
// starting at [start], lower bound first.
func span(start, amount uint64, side Side) (float64, float64) {
	side.mustBeValid()
	from, n := float64(start), float64(amount)
	if side == Add {
		return from, from + n
	}
	return from - n, from
}
