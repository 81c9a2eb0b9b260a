// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"golang.org/x/exp/constraints"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// arith evaluates integer formulas. Unchecked it uses the wrapping native
// operators. Checked it uses smath and remembers the first failure, after
// which every operation yields 0.
type arith[T constraints.Unsigned] struct {
	checked bool
	err     error
}

func wrapping[T constraints.Unsigned]() *arith[T] {
	return &arith[T]{}
}

func checked[T constraints.Unsigned]() *arith[T] {
	return &arith[T]{checked: true}
}

func (a *arith[T]) fail() T {
	if a.err == nil {
		a.err = ErrOverflow
	}
	return 0
}

func (a *arith[T]) add(x, y T) T {
	if !a.checked {
		return x + y
	}
	if a.err != nil {
		return 0
	}
	v, err := smath.Add(x, y)
	if err != nil {
		return a.fail()
	}
	return v
}

func (a *arith[T]) sub(x, y T) T {
	if !a.checked {
		return x - y
	}
	if a.err != nil {
		return 0
	}
	v, err := smath.Sub(x, y)
	if err != nil {
		return a.fail()
	}
	return v
}

func (a *arith[T]) mul(x, y T) T {
	if !a.checked {
		return x * y
	}
	if a.err != nil {
		return 0
	}
	v, err := smath.Mul(x, y)
	if err != nil {
		return a.fail()
	}
	return v
}

// from converts a supply or amount into the price domain.
func (a *arith[T]) from(v uint64) T {
	t := T(v)
	if a.checked && uint64(t) != v {
		return a.fail()
	}
	return t
}

// triangular returns n(n-1)/2, the sum of 0..n-1.
func (a *arith[T]) triangular(n T) T {
	if n == 0 {
		return 0
	}
	x, y := n, n-1
	if x%2 == 0 {
		x /= 2
	} else {
		y /= 2
	}
	return a.mul(x, y)
}

// squarePyramidal returns n(n-1)(2n-1)/6, the sum of the squares of 0..n-1.
func (a *arith[T]) squarePyramidal(n T) T {
	if n == 0 {
		return 0
	}
	x, y, z := n, n-1, a.sub(a.add(n, n), 1)
	if x%2 == 0 {
		x /= 2
	} else {
		y /= 2
	}
	// Exactly one of n, n-1 and 2n-1 is a multiple of 3.
	switch {
	case x%3 == 0:
		x /= 3
	case y%3 == 0:
		y /= 3
	default:
		z /= 3
	}
	return a.mul(a.mul(x, y), z)
}

// result returns [v] or, if a checked step failed, the zero price and the
// failure.
func (a *arith[T]) result(v T) (T, error) {
	if a.err != nil {
		return 0, a.err
	}
	return v, nil
}
