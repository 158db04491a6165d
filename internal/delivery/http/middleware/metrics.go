package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
)

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// Metrics records a request counter and a latency histogram per route and status.
// Unmatched routes share the "static" path label and unknown methods the
// "other" method label, so clients cannot create new series.
func Metrics(set *metrics.Set) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "static"
		}
		method := c.Request.Method
		if !knownMethods[method] {
			method = "other"
		}
		labels := joinQuote("{method=", method, ",path=", path, ",status=", strconv.Itoa(c.Writer.Status()), "}")
		set.GetOrCreateCounter("http_requests_total" + labels).Inc()
		set.GetOrCreateHistogram("http_request_duration_seconds" + labels).UpdateDuration(start)
	}
}

// MetricsHandler exposes the set plus process metrics in Prometheus text format.
func MetricsHandler(set *metrics.Set) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		set.WritePrometheus(c.Writer)
		metrics.WriteProcessMetrics(c.Writer)
	}
}

// joinQuote is [strings.Join] with " as separator.
func joinQuote(elems ...string) string { return strings.Join(elems, `"`) }
