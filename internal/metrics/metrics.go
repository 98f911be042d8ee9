// Package metrics exposes classification counters and latencies to
// Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gibberish"

// Recorder receives one call per classified text. Nop discards everything.
type Recorder interface {
	ObserveClassification(strategy string, gibberish, password bool, took time.Duration)
	ObserveRequest(route string, status int)
}

type Metrics struct {
	registry *prometheus.Registry

	classifications *prometheus.CounterVec
	passwords       prometheus.Counter
	latency         *prometheus.HistogramVec
	requests        *prometheus.CounterVec
}

// New registers every collector on a private registry, so several instances
// can live in one process (and in tests).
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Texts classified, by strategy and verdict.",
		}, []string{"strategy", "verdict"}),
		passwords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "common_passwords_total",
			Help:      "Texts that matched the common password list.",
		}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_duration_seconds",
			Help:      "Time spent classifying a single text.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		}, []string{"strategy"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
	}
	m.registry.MustRegister(
		m.classifications,
		m.passwords,
		m.latency,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	)
	return m
}

func Verdict(gibberish bool) string {
	if gibberish {
		return "gibberish"
	}
	return "english"
}

func (m *Metrics) ObserveClassification(strategy string, gibberish, password bool, took time.Duration) {
	m.classifications.WithLabelValues(strategy, Verdict(gibberish)).Inc()
	if password {
		m.passwords.Inc()
	}
	m.latency.WithLabelValues(strategy).Observe(took.Seconds())
}

func (m *Metrics) ObserveRequest(route string, status int) {
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

type nop struct{}

func (nop) ObserveClassification(string, bool, bool, time.Duration) {}
func (nop) ObserveRequest(string, int)                              {}

var Nop Recorder = nop{}
