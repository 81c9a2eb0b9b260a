// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/bondingcurve/pricing"
)

// CurveConfig describes a curve in a plan. Which parameters are read depends
// on Kind:
//
//	linear:      linear, base
//	quadratic:   quadratic, linear, base
//	exponential: base, growth
//	logarithmic: base, growth
//	sigmoid:     max_price, growth, mid_supply
type CurveConfig struct {
	Kind      string `yaml:"kind" json:"kind"`
	Quadratic Number `yaml:"quadratic,omitempty" json:"quadratic,omitempty"`
	Linear    Number `yaml:"linear,omitempty" json:"linear,omitempty"`
	Base      Number `yaml:"base,omitempty" json:"base,omitempty"`
	Growth    Number `yaml:"growth,omitempty" json:"growth,omitempty"`
	MaxPrice  Number `yaml:"max_price,omitempty" json:"max_price,omitempty"`
	MidSupply Number `yaml:"mid_supply,omitempty" json:"mid_supply,omitempty"`
}

func (c CurveConfig) Build() (pricing.Curve, error) {
	kind, err := pricing.ParseKind(c.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCurve, err)
	}

	f := &fields{}
	var curve pricing.Curve
	switch kind {
	case pricing.LinearKind:
		curve = pricing.NewLinearCurve(f.parseUint("linear", c.Linear), f.parseUint("base", c.Base))
	case pricing.QuadraticKind:
		curve = pricing.NewQuadraticCurve(
			f.parseUint("quadratic", c.Quadratic),
			f.parseUint("linear", c.Linear),
			f.parseUint("base", c.Base),
		)
	case pricing.ExponentialKind:
		curve = pricing.NewExponentialCurve(f.parseFloat("base", c.Base), f.parseFloat("growth", c.Growth))
	case pricing.LogarithmicKind:
		curve = pricing.NewLogarithmicCurve(f.parseFloat("base", c.Base), f.parseFloat("growth", c.Growth))
	case pricing.SigmoidKind:
		curve = pricing.NewSigmoidCurve(
			f.parseFloat("max_price", c.MaxPrice),
			f.parseFloat("growth", c.Growth),
			f.parseUint("mid_supply", c.MidSupply),
		)
	default:
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidCurve, pricing.ErrUnknownKind, kind)
	}
	if f.Errored() {
		return nil, f.Err
	}
	return curve, nil
}

// fields parses curve parameters, keeping the first failure.
type fields struct {
	wrappers.Errs
}

func (f *fields) parseUint(name string, n Number) uint64 {
	v, err := n.Uint64()
	if err != nil {
		f.Add(fmt.Errorf("%w: %s: %w", ErrInvalidCurve, name, err))
	}
	return v
}

func (f *fields) parseFloat(name string, n Number) float64 {
	v, err := n.Float64()
	if err != nil {
		f.Add(fmt.Errorf("%w: %s: %w", ErrInvalidCurve, name, err))
	}
	return v
}
