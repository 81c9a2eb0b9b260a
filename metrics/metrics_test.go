// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	m, err := New(prometheus.NewRegistry())
	require.NoError(err)

	m.Query("linear", "price")
	m.Query("linear", "price")
	m.Query("sigmoid", "price_many")
	m.Error("linear")
	m.AssertionFailed()

	require.Equal(2.0, testutil.ToFloat64(m.queries.WithLabelValues("linear", "price")))
	require.Equal(1.0, testutil.ToFloat64(m.queries.WithLabelValues("sigmoid", "price_many")))
	require.Equal(1.0, testutil.ToFloat64(m.errors.WithLabelValues("linear")))
	require.Equal(1.0, testutil.ToFloat64(m.assertionFailures))
}

func TestDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	r := prometheus.NewRegistry()
	_, err := New(r)
	require.NoError(err)

	_, err = New(r)
	require.ErrorAs(err, &prometheus.AlreadyRegisteredError{})
}
