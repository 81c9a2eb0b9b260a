// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/avalanchego/utils/wrappers"
)

const namespace = "curve"

type Metrics struct {
	queries           *prometheus.CounterVec
	errors            *prometheus.CounterVec
	assertionFailures prometheus.Counter
}

func New(r prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries",
			Help:      "number of curve queries evaluated",
		}, []string{"kind", "method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors",
			Help:      "number of curve queries that failed",
		}, []string{"kind"}),
		assertionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assertion_failures",
			Help:      "number of plan steps whose requirement did not hold",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.queries),
		r.Register(m.errors),
		r.Register(m.assertionFailures),
	)
	return m, errs.Err
}

func (m *Metrics) Query(kind, method string) {
	m.queries.WithLabelValues(kind, method).Inc()
}

func (m *Metrics) Error(kind string) {
	m.errors.WithLabelValues(kind).Inc()
}

func (m *Metrics) AssertionFailed() {
	m.assertionFailures.Inc()
}
