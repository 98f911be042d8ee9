package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveClassification(t *testing.T) {
	m := New()
	m.ObserveClassification("tiered/medium", true, false, time.Millisecond)
	m.ObserveClassification("tiered/medium", true, true, time.Millisecond)
	m.ObserveClassification("weighted", false, false, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.classifications.WithLabelValues("tiered/medium", "gibberish")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.classifications.WithLabelValues("weighted", "english")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.passwords))
	assert.Equal(t, 2, testutil.CollectAndCount(m.latency))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest("/v1/classify", http.StatusOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `gibberish_http_requests_total{code="200",route="/v1/classify"} 1`)
}

func TestSeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveRequest("/healthz", http.StatusOK)
	assert.Equal(t, 0, testutil.CollectAndCount(b.requests))
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestNop(t *testing.T) {
	Nop.ObserveClassification("x", true, true, time.Second)
	Nop.ObserveRequest("/", 500)
}
