// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "math"

var _ Pricer[float64] = LogarithmicCurve{}

// LogarithmicCurve prices a unit at supply x as growth*ln(x) + base. The
// price at zero supply is base.
type LogarithmicCurve struct {
	Base   float64
	Growth float64
}

func NewLogarithmicCurve(base, growth float64) LogarithmicCurve {
	return LogarithmicCurve{Base: base, Growth: growth}
}

func (c LogarithmicCurve) Price(supply uint64) float64 {
	if supply == 0 {
		return c.Base
	}
	return c.Growth*math.Log(float64(supply)) + c.Base
}

// PriceMany integrates the curve over the swept supply interval. Buying from
// zero supply adds one extra base for the first unit, which the integral
// does not cover.
func (c LogarithmicCurve) PriceMany(start, amount uint64, side Side) float64 {
	from, to := span(start, amount, side)
	if amount == 0 {
		return 0
	}
	total := c.integral(to) - c.integral(from)
	if side == Add && start == 0 {
		total += c.Base
	}
	return total
}

// integral is the antiderivative growth*x*ln(x) - growth*x + base*x, which
// tends to 0 at x = 0.
func (c LogarithmicCurve) integral(x float64) float64 {
	if x == 0 {
		return 0
	}
	return c.Growth*x*math.Log(x) - c.Growth*x + c.Base*x
}
