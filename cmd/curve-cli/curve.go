// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/bondingcurve/plan"
	"github.com/ava-labs/bondingcurve/pricing"
)

func addCurveFlags(cmd *cobra.Command) {
	cmd.Flags().String("curve", "", "Curve kind (linear, quadratic, exponential, logarithmic, sigmoid)")
	cmd.Flags().String("quadratic", "", "Quadratic coefficient (quadratic)")
	cmd.Flags().String("linear", "", "Linear coefficient (linear, quadratic)")
	cmd.Flags().String("base", "", "Base price (linear, quadratic, exponential, logarithmic)")
	cmd.Flags().String("growth", "", "Growth rate (exponential, logarithmic, sigmoid)")
	cmd.Flags().String("max-price", "", "Price ceiling (sigmoid)")
	cmd.Flags().String("mid-supply", "", "Supply at half the price ceiling (sigmoid)")
	_ = cmd.MarkFlagRequired("curve")
}

func curveFromFlags(cmd *cobra.Command) (pricing.Curve, error) {
	get := func(name string) plan.Number {
		v, _ := cmd.Flags().GetString(name)
		return plan.Number(v)
	}
	config := plan.CurveConfig{
		Kind:      string(get("curve")),
		Quadratic: get("quadratic"),
		Linear:    get("linear"),
		Base:      get("base"),
		Growth:    get("growth"),
		MaxPrice:  get("max-price"),
		MidSupply: get("mid-supply"),
	}
	return config.Build()
}

// curveResponse lists the parameters of a curve.
type curveResponse struct {
	Kind       string            `json:"kind"`
	Parameters map[string]string `json:"parameters"`
	Hex        string            `json:"hex,omitempty"`
}

func newCurveResponse(c pricing.Curve) curveResponse {
	r := curveResponse{
		Kind:       c.Kind().String(),
		Parameters: make(map[string]string),
	}
	switch c := c.(type) {
	case pricing.LinearCurve[uint64]:
		r.Parameters["linear"] = fmt.Sprint(c.Linear)
		r.Parameters["base"] = fmt.Sprint(c.Base)
	case pricing.QuadraticCurve[uint64]:
		r.Parameters["quadratic"] = fmt.Sprint(c.Quadratic)
		r.Parameters["linear"] = fmt.Sprint(c.Linear)
		r.Parameters["base"] = fmt.Sprint(c.Base)
	case pricing.ExponentialCurve:
		r.Parameters["base"] = fmt.Sprint(c.Base)
		r.Parameters["growth"] = fmt.Sprint(c.Growth)
	case pricing.LogarithmicCurve:
		r.Parameters["base"] = fmt.Sprint(c.Base)
		r.Parameters["growth"] = fmt.Sprint(c.Growth)
	case pricing.SigmoidCurve:
		r.Parameters["max-price"] = fmt.Sprint(c.MaxPrice)
		r.Parameters["growth"] = fmt.Sprint(c.Growth)
		r.Parameters["mid-supply"] = fmt.Sprint(c.MidSupply)
	}
	return r
}

func (r curveResponse) String() string {
	var b strings.Builder
	b.WriteString(r.Kind)
	for _, name := range []string{"quadratic", "linear", "base", "growth", "max-price", "mid-supply"} {
		if v, ok := r.Parameters[name]; ok {
			fmt.Fprintf(&b, " --%s=%s", name, v)
		}
	}
	if r.Hex != "" {
		fmt.Fprintf(&b, "\n%s", r.Hex)
	}
	return b.String()
}
