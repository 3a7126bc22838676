package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTPRequest(t *testing.T) {
	m := NewWithRegisterer("tours", prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/v1/tours/search", 200, 15*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/tours/search", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/tours/search", "200")))
}

func TestObserveDBQuery(t *testing.T) {
	m := NewWithRegisterer("tours", prometheus.NewRegistry())

	m.ObserveDBQuery("exec", nil, time.Millisecond)
	m.ObserveDBQuery("exec", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("exec", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("exec", "error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveDBQuery("query", nil, time.Millisecond)
	})
}
