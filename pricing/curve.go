// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/utils/wrappers"
)

// Kind identifies a curve shape on the wire.
type Kind uint8

const (
	InvalidKind Kind = iota
	LinearKind
	QuadraticKind
	ExponentialKind
	LogarithmicKind
	SigmoidKind
)

var kindNames = map[Kind]string{
	LinearKind:      "linear",
	QuadraticKind:   "quadratic",
	ExponentialKind: "exponential",
	LogarithmicKind: "logarithmic",
	SigmoidKind:     "sigmoid",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return InvalidKind, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Curve is a curve whose shape is only known at runtime, such as one read
// from a plan or decoded from bytes.
type Curve interface {
	Kind() Kind
	// Size is the number of bytes Marshal writes.
	Size() int
	Marshal(p *wrappers.Packer)
}

type Decoder func(p *wrappers.Packer) Curve

// Decoders maps each kind to the function reading its parameters.
var Decoders map[Kind]Decoder

func init() {
	Decoders = make(map[Kind]Decoder)

	Decoders[LinearKind] = unmarshalLinear
	Decoders[QuadraticKind] = unmarshalQuadratic
	Decoders[ExponentialKind] = unmarshalExponential
	Decoders[LogarithmicKind] = unmarshalLogarithmic
	Decoders[SigmoidKind] = unmarshalSigmoid
}

// Price is the result of a runtime quote. Integer curves fill Int, float
// curves fill Float.
type Price struct {
	Exact bool
	Int   uint64
	Float float64
}

func ExactPrice(v uint64) Price {
	return Price{Exact: true, Int: v}
}

func LossyPrice(v float64) Price {
	return Price{Float: v}
}

func (p Price) Float64() float64 {
	if p.Exact {
		return float64(p.Int)
	}
	return p.Float
}

func (p Price) String() string {
	if p.Exact {
		return strconv.FormatUint(p.Int, 10)
	}
	return strconv.FormatFloat(p.Float, 'g', -1, 64)
}

type priceJSON struct {
	Exact bool   `json:"exact"`
	Value string `json:"value"`
}

// MarshalJSON encodes the value as a string so large integers survive JSON
// decoders that read numbers as float64.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(priceJSON{Exact: p.Exact, Value: p.String()})
}

func (p *Price) UnmarshalJSON(b []byte) error {
	var raw priceJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Exact {
		v, err := strconv.ParseUint(raw.Value, 10, 64)
		if err != nil {
			return err
		}
		*p = ExactPrice(v)
		return nil
	}
	v, err := strconv.ParseFloat(raw.Value, 64)
	if err != nil {
		return err
	}
	*p = LossyPrice(v)
	return nil
}

// Quote prices one unit at [supply]. [checked] selects the overflow-aware
// path of integer curves and is ignored by float curves.
func Quote(c Curve, supply uint64, checked bool) (Price, error) {
	switch c := c.(type) {
	case ExactPricer[uint64]:
		if !checked {
			return ExactPrice(c.Price(supply)), nil
		}
		v, err := c.PriceChecked(supply)
		if err != nil {
			return Price{}, err
		}
		return ExactPrice(v), nil
	case Pricer[float64]:
		return LossyPrice(c.Price(supply)), nil
	default:
		return Price{}, fmt.Errorf("%w: %s", ErrUnknownKind, c.Kind())
	}
}

// QuoteMany prices a batch of [amount] units starting at [start].
func QuoteMany(c Curve, start, amount uint64, side Side, checked bool) (Price, error) {
	if !side.Valid() {
		return Price{}, fmt.Errorf("%w: %d", ErrInvalidSide, uint8(side))
	}
	switch c := c.(type) {
	case ExactPricer[uint64]:
		if !checked {
			return ExactPrice(c.PriceMany(start, amount, side)), nil
		}
		v, err := c.PriceManyChecked(start, amount, side)
		if err != nil {
			return Price{}, err
		}
		return ExactPrice(v), nil
	case Pricer[float64]:
		return LossyPrice(c.PriceMany(start, amount, side)), nil
	default:
		return Price{}, fmt.Errorf("%w: %s", ErrUnknownKind, c.Kind())
	}
}
