//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"order-fulfillment/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := metrics.New()

	m.RecordOrderPlaced(true, "")
	m.RecordOrderPlaced(false, "shipping_threshold")
	m.RecordOrderPlaced(false, "shipping_threshold")
	m.RecordQuote(true)
	m.RecordCommitConflict()
	m.RecordHTTPRequest(http.MethodPost, "/orders", http.StatusCreated, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues("valid", "")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues("invalid", "shipping_threshold")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Quotes.WithLabelValues("valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommitConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/orders", "201")))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.RecordQuote(false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fulfillment_quotes_total{validity="invalid"} 1`)
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.RecordCommitConflict()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.CommitConflicts))
	assert.Zero(t, testutil.ToFloat64(b.CommitConflicts))
}
