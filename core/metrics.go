package core

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PoolMetrics publishes ConnPool occupancy and churn as Prometheus gauges
// and counters, each on a private registry so multiple pools in the same
// process never collide on metric names.
type PoolMetrics struct {
	registry       *prometheus.Registry
	idleGauge      *prometheus.GaugeVec
	acquireCounter *prometheus.CounterVec
	releaseCounter *prometheus.CounterVec
	exhaustedCtr   *prometheus.CounterVec
}

// NewPoolMetrics registers a fresh metric set in its own registry (so a
// caller embedding this SDK alongside its own metrics never collides on
// the default global registry).
func NewPoolMetrics() *PoolMetrics {
	reg := prometheus.NewRegistry()
	m := &PoolMetrics{
		registry: reg,
		idleGauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hedera_pool_idle_connections",
			Help: "Idle connection handles currently held per endpoint.",
		}, []string{"endpoint"}),
		acquireCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hedera_pool_acquire_total",
			Help: "Total successful Acquire calls per endpoint.",
		}, []string{"endpoint"}),
		releaseCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hedera_pool_release_total",
			Help: "Total Release calls per endpoint.",
		}, []string{"endpoint"}),
		exhaustedCtr: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hedera_pool_exhausted_total",
			Help: "Total ConnectionPoolExhausted failures per endpoint.",
		}, []string{"endpoint"}),
	}
	reg.MustRegister(m.idleGauge, m.acquireCounter, m.releaseCounter, m.exhaustedCtr)
	return m
}

// Registry exposes the underlying Prometheus registry for a caller's own
// /metrics HTTP handler.
func (m *PoolMetrics) Registry() *prometheus.Registry { return m.registry }

func (m *PoolMetrics) onAcquire(endpoint string) {
	m.acquireCounter.WithLabelValues(endpoint).Inc()
	m.idleGauge.WithLabelValues(endpoint).Dec()
}

func (m *PoolMetrics) onRelease(endpoint string) {
	m.releaseCounter.WithLabelValues(endpoint).Inc()
	m.idleGauge.WithLabelValues(endpoint).Inc()
}

func (m *PoolMetrics) onExhausted(endpoint string) {
	m.exhaustedCtr.WithLabelValues(endpoint).Inc()
}

// TransportMetrics publishes per-call duration and grpc-status outcome for
// HTTPTransport.
type TransportMetrics struct {
	registry     *prometheus.Registry
	duration     *prometheus.HistogramVec
	statusTotal  *prometheus.CounterVec
}

// NewTransportMetrics registers a fresh metric set in its own registry.
func NewTransportMetrics() *TransportMetrics {
	reg := prometheus.NewRegistry()
	m := &TransportMetrics{
		registry: reg,
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hedera_transport_call_duration_seconds",
			Help:    "gRPC-web call duration in seconds, labeled by call path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		statusTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hedera_transport_grpc_status_total",
			Help: "Total calls completed per grpc-status code.",
		}, []string{"path", "grpc_status"}),
	}
	reg.MustRegister(m.duration, m.statusTotal)
	return m
}

// Registry exposes the underlying Prometheus registry.
func (m *TransportMetrics) Registry() *prometheus.Registry { return m.registry }

// observe records one completed call's duration and resulting grpc-status.
func (m *TransportMetrics) observe(path string, started time.Time, grpcStatus int) {
	m.duration.WithLabelValues(path).Observe(time.Since(started).Seconds())
	m.statusTotal.WithLabelValues(path, strconv.Itoa(grpcStatus)).Inc()
}
