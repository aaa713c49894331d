package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("gso-booking", prometheus.NewRegistry())

	m.IncConflict("Unlad Gymnasium")
	m.IncConflict("Unlad Gymnasium")
	m.IncBookingOperation("create", "ok")
	m.ObserveHTTP("POST", "/api/v1/bookings", 201, 15*time.Millisecond)
	m.ObserveQuery("query", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingConflictsTotal.WithLabelValues("Unlad Gymnasium")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingOperationsTotal.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "201")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncConflict("Noveleta Plaza")
		m.IncBookingOperation("delete", "error")
		m.ObserveHTTP("GET", "/", 200, time.Second)
		m.ObserveQuery("exec", nil, time.Second)
		m.IncTxRetry("serializable")
	})
}
