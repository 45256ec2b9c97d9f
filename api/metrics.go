package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricRequestsTotal counts handled requests by path and status code
	MetricRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swatch_http_requests_total",
		Help: "Handled HTTP requests by path and status",
	}, []string{"path", "status"})

	// MetricRequestDuration tracks request latency by path
	MetricRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swatch_http_request_duration_seconds",
		Help:    "HTTP request latency by path",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// MetricPaletteSize records the size of generated palettes
	MetricPaletteSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "swatch_palette_size",
		Help:    "Number of entries per generated palette",
		Buckets: []float64{0, 10, 50, 100, 200, 500, 1000, 2000},
	})
)

var knownPaths = map[string]bool{
	"/":                          true,
	"/v1/auth/signup":            true,
	"/v1/auth/login":             true,
	"/v1/palette":                true,
	"/v1/palette/daily":          true,
	"/v1/palette/daily/all":      true,
	"/v1/contrast":               true,
	"/v1/classnames":             true,
	"/v1/users/me":               true,
	"/v1/swatches":               true,
	"/v1/users":                  true,
	"/v1/admin/palette/generate": true,
}

// pathLabel keeps metric cardinality bounded to the registered routes.
func pathLabel(path string) string {
	if knownPaths[path] {
		return path
	}
	return "other"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records request count and latency for every request to h.
func instrument(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		h.ServeHTTP(rec, r)

		MetricRequestsTotal.WithLabelValues(pathLabel(r.URL.Path), strconv.Itoa(rec.status)).Inc()
		MetricRequestDuration.WithLabelValues(pathLabel(r.URL.Path)).Observe(time.Since(start).Seconds())
	})
}
