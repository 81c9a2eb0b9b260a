// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "math"

var _ Pricer[float64] = SigmoidCurve{}

// SigmoidCurve prices a unit at supply x as
// maxPrice / (1 + e^(-growth*(x-midSupply))).
type SigmoidCurve struct {
	MaxPrice  float64
	Growth    float64
	MidSupply uint64
}

func NewSigmoidCurve(maxPrice, growth float64, midSupply uint64) SigmoidCurve {
	return SigmoidCurve{MaxPrice: maxPrice, Growth: growth, MidSupply: midSupply}
}

func (c SigmoidCurve) Price(supply uint64) float64 {
	return c.MaxPrice / (1 + math.Exp(-c.Growth*(float64(supply)-float64(c.MidSupply))))
}

func (c SigmoidCurve) PriceMany(start, amount uint64, side Side) float64 {
	from, to := span(start, amount, side)
	if amount == 0 {
		return 0
	}
	return c.integral(to) - c.integral(from)
}

// integral is (maxPrice/growth) * ln(1 + e^(growth*(x-midSupply))).
func (c SigmoidCurve) integral(x float64) float64 {
	return c.MaxPrice / c.Growth * softplus(c.Growth*(x-float64(c.MidSupply)))
}

// softplus computes ln(1 + e^y) without overflowing for large y.
func softplus(y float64) float64 {
	if y > 0 {
		return y + math.Log1p(math.Exp(-y))
	}
	return math.Log1p(math.Exp(y))
}
