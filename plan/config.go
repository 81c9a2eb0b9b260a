// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/bondingcurve/pricing"
)

type Plan struct {
	// The name of the plan.
	Name string `yaml:"name" json:"name"`
	// A description of the plan.
	Description string `yaml:"description" json:"description"`
	// Curves referenced by steps, keyed by name.
	Curves map[string]CurveConfig `yaml:"curves" json:"curves"`
	// Steps evaluated by the runner.
	Steps []Step `yaml:"steps" json:"steps"`
}

type Method string

const (
	PriceMethod     Method = "price"
	PriceManyMethod Method = "price_many"
)

type Step struct {
	// Description of the step.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Name of the curve to query. (required)
	Curve string `yaml:"curve" json:"curve"`
	// The query to perform. (required)
	Method Method `yaml:"method" json:"method"`
	// Supply of the single unit priced by price, or the first unit of a
	// price_many batch.
	Supply uint64 `yaml:"supply" json:"supply"`
	// Number of units in a price_many batch.
	Amount uint64 `yaml:"amount,omitempty" json:"amount,omitempty"`
	// add or remove, required by price_many.
	Side string `yaml:"side,omitempty" json:"side,omitempty"`
	// Use the overflow checked path of integer curves.
	Checked bool `yaml:"checked,omitempty" json:"checked,omitempty"`
	// Define required assertions against this step.
	Require *Require `yaml:"require,omitempty" json:"require,omitempty"`
}

type Require struct {
	// Assertion against the price of the step.
	Result *ResultAssertion `yaml:"result,omitempty" json:"result,omitempty"`
	// Text the error of the step must contain.
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

type ResultAssertion struct {
	// The operator to use for the assertion.
	Operator string `yaml:"operator" json:"operator"`
	// The value to compare against.
	Value Number `yaml:"value" json:"value"`
	// Tolerance of == and != on float prices.
	Delta Number `yaml:"delta,omitempty" json:"delta,omitempty"`
}

// Unmarshal decodes a JSON or YAML plan.
func Unmarshal(bytes []byte) (*Plan, error) {
	var p Plan
	switch {
	case isJSON(bytes):
		if err := json.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	case isYAML(bytes):
		if err := yaml.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidFormat
	}
	return &p, nil
}

func isJSON(b []byte) bool {
	var js map[string]interface{}
	return json.Unmarshal(b, &js) == nil
}

func isYAML(b []byte) bool {
	var y map[string]interface{}
	return yaml.Unmarshal(b, &y) == nil && len(y) > 0
}

// Verify checks that every step can be evaluated.
func (p *Plan) Verify() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: no steps found", ErrInvalidPlan)
	}
	if _, err := p.buildCurves(); err != nil {
		return err
	}
	for i := range p.Steps {
		if err := p.verifyStep(i); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plan) verifyStep(i int) error {
	step := &p.Steps[i]
	if _, ok := p.Curves[step.Curve]; !ok {
		return fmt.Errorf("%w %d: %w: %q", ErrInvalidStep, i, ErrUndefinedCurve, step.Curve)
	}
	switch step.Method {
	case PriceMethod:
	case PriceManyMethod:
		if _, err := pricing.ParseSide(step.Side); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
		}
	default:
		return fmt.Errorf("%w %d: %w: %q", ErrInvalidStep, i, ErrInvalidMethod, step.Method)
	}
	if step.Require != nil && step.Require.Result != nil {
		if !Operator(step.Require.Result.Operator).Valid() {
			return fmt.Errorf("%w %d: %w: %q", ErrInvalidStep, i, ErrInvalidOperator, step.Require.Result.Operator)
		}
	}
	return nil
}

func (p *Plan) buildCurves() (map[string]pricing.Curve, error) {
	curves := make(map[string]pricing.Curve, len(p.Curves))
	for name, cfg := range p.Curves {
		curve, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", name, err)
		}
		curves[name] = curve
	}
	return curves, nil
}
