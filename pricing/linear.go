// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "golang.org/x/exp/constraints"

var _ ExactPricer[uint64] = LinearCurve[uint64]{}

// LinearCurve prices a unit at supply x as linear*x + base.
type LinearCurve[T constraints.Unsigned] struct {
	Linear T
	Base   T
}

func NewLinearCurve[T constraints.Unsigned](linear, base T) LinearCurve[T] {
	return LinearCurve[T]{Linear: linear, Base: base}
}

func (c LinearCurve[T]) Price(supply uint64) T {
	a := wrapping[T]()
	return c.eval(a, a.from(supply))
}

func (c LinearCurve[T]) PriceChecked(supply uint64) (T, error) {
	a := checked[T]()
	return a.result(c.eval(a, a.from(supply)))
}

func (c LinearCurve[T]) PriceMany(start, amount uint64, side Side) T {
	return c.evalMany(wrapping[T](), start, amount, side)
}

func (c LinearCurve[T]) PriceManyChecked(start, amount uint64, side Side) (T, error) {
	a := checked[T]()
	return a.result(c.evalMany(a, start, amount, side))
}

func (c LinearCurve[T]) eval(a *arith[T], x T) T {
	return a.add(a.mul(c.Linear, x), c.Base)
}

// evalMany sums an arithmetic series: amount/2 * (first + last) for even
// amounts, amount * f(mean supply) for odd ones.
func (c LinearCurve[T]) evalMany(a *arith[T], start, amount uint64, side Side) T {
	side.mustBeValid()
	if amount == 0 {
		return 0
	}
	s, n := a.from(start), a.from(amount)
	first := c.eval(a, s)
	if amount == 1 {
		return first
	}

	if n%2 == 0 {
		var end T
		if side == Add {
			end = a.add(s, n-1)
		} else {
			end = a.sub(s, n-1)
		}
		return a.mul(n/2, a.add(first, c.eval(a, end)))
	}

	// For odd n the mean supply s±(n-1)/2 is an integer, so no halving
	// happens after a product that may have wrapped.
	var mid T
	if side == Add {
		mid = a.add(s, (n-1)/2)
	} else {
		a.sub(s, n-1) // the last unit must not go below zero
		mid = a.sub(s, (n-1)/2)
	}
	return a.mul(n, c.eval(a, mid))
}
