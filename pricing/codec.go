// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"fmt"
	"math"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/bondingcurve/consts"
)

var (
	_ Curve = LinearCurve[uint64]{}
	_ Curve = QuadraticCurve[uint64]{}
	_ Curve = ExponentialCurve{}
	_ Curve = LogarithmicCurve{}
	_ Curve = SigmoidCurve{}
)

// Marshal encodes [c] as its kind byte followed by its parameters as
// big-endian words. Float parameters are written as IEEE-754 bits.
func Marshal(c Curve) ([]byte, error) {
	size := consts.ByteLen + c.Size()
	p := &wrappers.Packer{MaxSize: size, Bytes: make([]byte, 0, size)}
	p.PackByte(byte(c.Kind()))
	c.Marshal(p)
	if p.Errored() {
		return nil, p.Err
	}
	return p.Bytes, nil
}

func Unmarshal(b []byte) (Curve, error) {
	p := &wrappers.Packer{Bytes: b}
	kind := Kind(p.UnpackByte())
	if p.Errored() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBytes, p.Err)
	}
	decode, ok := Decoders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
	}
	c := decode(p)
	if p.Errored() {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidBytes, kind, p.Err)
	}
	if p.Offset != len(b) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidSize, len(b)-p.Offset)
	}
	return c, nil
}

func (LinearCurve[_]) Kind() Kind { return LinearKind }

func (LinearCurve[_]) Size() int { return 2 * consts.Uint64Len }

func (c LinearCurve[_]) Marshal(p *wrappers.Packer) {
	p.PackLong(uint64(c.Linear))
	p.PackLong(uint64(c.Base))
}

func unmarshalLinear(p *wrappers.Packer) Curve {
	return NewLinearCurve(p.UnpackLong(), p.UnpackLong())
}

func (QuadraticCurve[_]) Kind() Kind { return QuadraticKind }

func (QuadraticCurve[_]) Size() int { return 3 * consts.Uint64Len }

func (c QuadraticCurve[_]) Marshal(p *wrappers.Packer) {
	p.PackLong(uint64(c.Quadratic))
	p.PackLong(uint64(c.Linear))
	p.PackLong(uint64(c.Base))
}

func unmarshalQuadratic(p *wrappers.Packer) Curve {
	return NewQuadraticCurve(p.UnpackLong(), p.UnpackLong(), p.UnpackLong())
}

func (ExponentialCurve) Kind() Kind { return ExponentialKind }

func (ExponentialCurve) Size() int { return 2 * consts.Uint64Len }

func (c ExponentialCurve) Marshal(p *wrappers.Packer) {
	packFloat(p, c.Base)
	packFloat(p, c.Growth)
}

func unmarshalExponential(p *wrappers.Packer) Curve {
	return NewExponentialCurve(unpackFloat(p), unpackFloat(p))
}

func (LogarithmicCurve) Kind() Kind { return LogarithmicKind }

func (LogarithmicCurve) Size() int { return 2 * consts.Uint64Len }

func (c LogarithmicCurve) Marshal(p *wrappers.Packer) {
	packFloat(p, c.Base)
	packFloat(p, c.Growth)
}

func unmarshalLogarithmic(p *wrappers.Packer) Curve {
	return NewLogarithmicCurve(unpackFloat(p), unpackFloat(p))
}

func (SigmoidCurve) Kind() Kind { return SigmoidKind }

func (SigmoidCurve) Size() int { return 3 * consts.Uint64Len }

func (c SigmoidCurve) Marshal(p *wrappers.Packer) {
	packFloat(p, c.MaxPrice)
	packFloat(p, c.Growth)
	p.PackLong(c.MidSupply)
}

func unmarshalSigmoid(p *wrappers.Packer) Curve {
	return NewSigmoidCurve(unpackFloat(p), unpackFloat(p), p.UnpackLong())
}

func packFloat(p *wrappers.Packer, f float64) {
	p.PackLong(math.Float64bits(f))
}

func unpackFloat(p *wrappers.Packer) float64 {
	return math.Float64frombits(p.UnpackLong())
}
