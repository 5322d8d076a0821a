// Package metrics holds the Prometheus collectors shared by the
// dashboard surfaces.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Surface label values.
const (
	SurfaceTUI  = "tui"
	SurfaceHTTP = "http"
)

var (
	// FramesRendered counts rendered frames of the dashboard, per surface.
	FramesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zenith_frames_rendered_total",
			Help: "Total number of dashboard frames rendered",
		},
		[]string{"surface"},
	)

	// HTTPRequestsTotal counts HTTP requests by route and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zenith_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration tracks request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zenith_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"route", "method"},
	)
)

// RecordFrame counts one rendered frame for the surface.
func RecordFrame(surface string) {
	FramesRendered.WithLabelValues(surface).Inc()
}

// RecordRequest records a served HTTP request.
func RecordRequest(route, method string, status int, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(seconds)
}
