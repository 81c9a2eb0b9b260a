// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "math"

var _ Pricer[float64] = ExponentialCurve{}

// ExponentialCurve prices a unit at supply x as base * e^(growth*x).
type ExponentialCurve struct {
	Base   float64
	Growth float64
}

func NewExponentialCurve(base, growth float64) ExponentialCurve {
	return ExponentialCurve{Base: base, Growth: growth}
}

func (c ExponentialCurve) Price(supply uint64) float64 {
	return c.Base * math.Exp(c.Growth*float64(supply))
}

// PriceMany integrates the curve over the swept supply interval. A zero
// growth yields an IEEE-754 NaN or infinity.
func (c ExponentialCurve) PriceMany(start, amount uint64, side Side) float64 {
	from, to := span(start, amount, side)
	if amount == 0 {
		return 0
	}
	return c.Base / c.Growth * (math.Exp(c.Growth*to) - math.Exp(c.Growth*from))
}
