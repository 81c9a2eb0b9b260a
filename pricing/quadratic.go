// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "golang.org/x/exp/constraints"

var _ ExactPricer[uint64] = QuadraticCurve[uint64]{}

// QuadraticCurve prices a unit at supply x as quadratic*x² + linear*x + base.
type QuadraticCurve[T constraints.Unsigned] struct {
	Quadratic T
	Linear    T
	Base      T
}

func NewQuadraticCurve[T constraints.Unsigned](quadratic, linear, base T) QuadraticCurve[T] {
	return QuadraticCurve[T]{Quadratic: quadratic, Linear: linear, Base: base}
}

func (c QuadraticCurve[T]) Price(supply uint64) T {
	a := wrapping[T]()
	return c.eval(a, a.from(supply))
}

func (c QuadraticCurve[T]) PriceChecked(supply uint64) (T, error) {
	a := checked[T]()
	return a.result(c.eval(a, a.from(supply)))
}

func (c QuadraticCurve[T]) PriceMany(start, amount uint64, side Side) T {
	return c.evalMany(wrapping[T](), start, amount, side)
}

func (c QuadraticCurve[T]) PriceManyChecked(start, amount uint64, side Side) (T, error) {
	a := checked[T]()
	return a.result(c.evalMany(a, start, amount, side))
}

func (c QuadraticCurve[T]) eval(a *arith[T], x T) T {
	squared := a.mul(a.mul(c.Quadratic, x), x)
	return a.add(a.add(squared, a.mul(c.Linear, x)), c.Base)
}

// evalMany expands Σ f(s±i) for i in [0, n) into
//
//	quadratic * (s²n ± 2s*S1 + S2) + linear * (sn ± S1) + base*n
//
// where S1 = Σ i and S2 = Σ i².
func (c QuadraticCurve[T]) evalMany(a *arith[T], start, amount uint64, side Side) T {
	side.mustBeValid()
	if amount == 0 {
		return 0
	}
	s, n := a.from(start), a.from(amount)
	if side == Remove {
		// The batch may not walk below zero supply.
		a.sub(s, n-1)
	}

	s1 := a.triangular(n)
	s2 := a.squarePyramidal(n)
	sn := a.mul(s, n)
	cross := a.mul(a.mul(s, s1), 2)

	var squares, linear T
	if side == Add {
		squares = a.add(a.add(a.mul(sn, s), cross), s2)
		linear = a.add(sn, s1)
	} else {
		squares = a.sub(a.add(a.mul(sn, s), s2), cross)
		linear = a.sub(sn, s1)
	}

	total := a.mul(c.Quadratic, squares)
	total = a.add(total, a.mul(c.Linear, linear))
	return a.add(total, a.mul(c.Base, n))
}
