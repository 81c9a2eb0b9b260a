// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pricing prices tokens as a function of their circulating supply.
//
// Linear and quadratic curves are exact over any unsigned price domain and
// offer both a wrapping and a checked path. Exponential, logarithmic and
// sigmoid curves are evaluated in float64 and are lossy.
package pricing

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Unsigned | constraints.Float
}

// Pricer prices a single unit at a supply and a contiguous batch of units.
//
// PriceMany with Add prices the units at supplies start, start+1, ...,
// start+amount-1. With Remove it prices start, start-1, ..., start-amount+1.
type Pricer[P Number] interface {
	Price(supply uint64) P
	PriceMany(start uint64, amount uint64, side Side) P
}

// CheckedPricer is the overflow-aware counterpart of Pricer. On failure the
// returned price is zero.
type CheckedPricer[P Number] interface {
	PriceChecked(supply uint64) (P, error)
	PriceManyChecked(start uint64, amount uint64, side Side) (P, error)
}

// ExactPricer is implemented by the integer curves.
type ExactPricer[P constraints.Unsigned] interface {
	Pricer[P]
	CheckedPricer[P]
}
