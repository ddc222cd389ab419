package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.RequestDecided("approved")
	m.RequestDecided("approved")
	m.RequestDecided("rejected")
	m.PaymentReconciled(OutcomeCredited)
	m.AssetReturned()
	m.ObserveHTTPRequest("GET", "/packages", "200", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsDecided.WithLabelValues("approved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsDecided.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.paymentsReconcile.WithLabelValues(OutcomeCredited)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.assetsReturned))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/packages", "200")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RequestDecided("approved")
		m.PaymentReconciled(OutcomeUnpaid)
		m.AssetReturned()
		m.ObserveHTTPRequest("GET", "/", "200", time.Millisecond)
	})
}
