package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordFrame(t *testing.T) {
	FramesRendered.Reset()

	RecordFrame(SurfaceTUI)
	RecordFrame(SurfaceTUI)
	RecordFrame(SurfaceHTTP)

	if got := testutil.ToFloat64(FramesRendered.WithLabelValues(SurfaceTUI)); got != 2.0 {
		t.Errorf("Expected 2 tui frames, got %f", got)
	}
	if got := testutil.ToFloat64(FramesRendered.WithLabelValues(SurfaceHTTP)); got != 1.0 {
		t.Errorf("Expected 1 http frame, got %f", got)
	}
}

func TestRecordRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordRequest("/", "GET", 200, 0.002)
	RecordRequest("/", "GET", 200, 0.004)
	RecordRequest("/missing", "GET", 404, 0.001)

	if got := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/", "GET", "200")); got != 2.0 {
		t.Errorf("Expected 2 requests for /, got %f", got)
	}
	if got := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/missing", "GET", "404")); got != 1.0 {
		t.Errorf("Expected 1 request for /missing, got %f", got)
	}
	if got := testutil.CollectAndCount(HTTPRequestDuration); got != 2 {
		t.Errorf("Expected 2 latency series, got %d", got)
	}
}
