// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"context"
	"fmt"

	"github.com/neilotoole/errgroup"
	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/bondingcurve/metrics"
	"github.com/ava-labs/bondingcurve/pricing"
)

// Runner evaluates the steps of a plan. Curves are pure, so steps run
// concurrently up to the configured parallelism.
type Runner struct {
	log         logging.Logger
	metrics     *metrics.Metrics
	parallelism int
}

// NewRunner returns a runner evaluating at most [parallelism] steps at once.
// A non-positive parallelism uses one goroutine per CPU.
func NewRunner(log logging.Logger, m *metrics.Metrics, parallelism int) *Runner {
	return &Runner{
		log:         log,
		metrics:     m,
		parallelism: parallelism,
	}
}

// Run verifies [p] and returns one response per step, in step order. Step
// failures are reported in the responses. The returned error is only set if
// the plan is invalid or [ctx] is canceled.
func (r *Runner) Run(ctx context.Context, p *Plan) ([]*Response, error) {
	if err := p.Verify(); err != nil {
		return nil, err
	}
	curves, err := p.buildCurves()
	if err != nil {
		return nil, err
	}

	r.log.Info("running plan",
		zap.String("name", p.Name),
		zap.String("description", p.Description),
		zap.Int("steps", len(p.Steps)),
		zap.Int("parallelism", r.parallelism),
	)

	responses := make([]*Response, len(p.Steps))
	g, gctx := errgroup.WithContextN(ctx, r.parallelism, len(p.Steps))
	for i := range p.Steps {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			responses[i] = r.runStep(i, &p.Steps[i], curves)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var failed int
	for _, resp := range responses {
		if !resp.Passed {
			failed++
		}
	}
	r.log.Info("plan finished",
		zap.String("name", p.Name),
		zap.Int("passed", len(responses)-failed),
		zap.Int("failed", failed),
	)
	return responses, nil
}

func (r *Runner) runStep(i int, step *Step, curves map[string]pricing.Curve) *Response {
	curve := curves[step.Curve]
	kind := curve.Kind().String()
	r.log.Debug("evaluating step",
		zap.Int("step", i),
		zap.String("description", step.Description),
		zap.String("curve", step.Curve),
		zap.Stringer("kind", curve.Kind()),
		zap.String("method", string(step.Method)),
		zap.Uint64("supply", step.Supply),
		zap.Uint64("amount", step.Amount),
		zap.String("side", step.Side),
		zap.Bool("checked", step.Checked),
	)
	r.metrics.Query(kind, string(step.Method))

	resp := NewResponse(i)
	price, err := evaluate(curve, step)
	if err != nil {
		r.metrics.Error(kind)
		resp.setError(err)
	} else {
		resp.setPrice(price)
	}
	resp.Passed = err == nil

	if step.Require != nil {
		resp.Passed = true
		if err := step.Require.check(price, err); err != nil {
			r.metrics.AssertionFailed()
			resp.setFailure(err)
		}
	}
	if !resp.Passed {
		r.log.Warn("step failed",
			zap.Int("step", i),
			zap.String("curve", step.Curve),
			zap.String("error", resp.Error),
			zap.String("failure", resp.Failure),
		)
	}
	return resp
}

// evaluate performs the single curve query named by [step].
func evaluate(curve pricing.Curve, step *Step) (pricing.Price, error) {
	switch step.Method {
	case PriceMethod:
		return pricing.Quote(curve, step.Supply, step.Checked)
	case PriceManyMethod:
		side, err := pricing.ParseSide(step.Side)
		if err != nil {
			return pricing.Price{}, err
		}
		return pricing.QuoteMany(curve, step.Supply, step.Amount, side, step.Checked)
	default:
		return pricing.Price{}, fmt.Errorf("%w: %q", ErrInvalidMethod, step.Method)
	}
}
