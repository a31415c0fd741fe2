package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the bell engine.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	tickDuration    prometheus.Histogram
	ticksTotal      prometheus.Counter
	cuesTotal       *prometheus.CounterVec
	classActive     prometheus.Gauge
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	tickDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "engine_tick_duration_seconds",
		Help:    "Duration of a single engine poll tick",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})

	ticksTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_ticks_total",
		Help: "Total engine poll ticks executed",
	})

	cuesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "engine_cues_total",
		Help: "Audio cues fired by kind",
	}, []string{"kind"})

	classActive := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "engine_class_active",
		Help: "Whether a class is currently in progress (1 or 0)",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, tickDuration, ticksTotal, cuesTotal, classActive, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		tickDuration:    tickDuration,
		ticksTotal:      ticksTotal,
		cuesTotal:       cuesTotal,
		classActive:     classActive,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}

// ObserveHTTPRequest records one served request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	m.requestDuration.With(labels).Observe(duration.Seconds())
	m.requestTotal.With(labels).Inc()
}

// ObserveTick records one engine poll tick.
func (m *MetricsService) ObserveTick(duration time.Duration) {
	m.ticksTotal.Inc()
	m.tickDuration.Observe(duration.Seconds())
}

// CueFired counts one emitted audio cue.
func (m *MetricsService) CueFired(kind string) {
	m.cuesTotal.WithLabelValues(kind).Inc()
}

// SetClassActive mirrors the engine's class-active flag.
func (m *MetricsService) SetClassActive(active bool) {
	if active {
		m.classActive.Set(1)
		return
	}
	m.classActive.Set(0)
}
