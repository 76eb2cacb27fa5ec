package telemetry

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/jsamuelsen/quotesync/internal/platform/telemetry"

	// HeaderTraceID carries the trace ID of the request back to the caller.
	HeaderTraceID = "X-Trace-ID"
)

// Metrics holds HTTP server metrics.
type Metrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics creates HTTP server metrics on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		activeRequests:  activeRequests,
	}, nil
}

// Tracing returns otelgin middleware that starts a server span per request.
// Probe endpoints under /-/ are not traced.
func Tracing(serviceName string, opts ...otelgin.Option) gin.HandlerFunc {
	opts = append([]otelgin.Option{
		otelgin.WithFilter(func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, "/-/")
		}),
	}, opts...)

	return otelgin.Middleware(serviceName, opts...)
}

// Middleware records request metrics and echoes the trace ID of the active
// span in the X-Trace-ID header. Install it after Tracing.
func Middleware() gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		start := time.Now()

		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			c.Header(HeaderTraceID, sc.TraceID().String())
		}

		if metrics == nil {
			c.Next()

			return
		}

		route := attribute.String("http.route", c.FullPath())
		method := attribute.String("http.method", c.Request.Method)

		metrics.activeRequests.Add(c.Request.Context(), 1, metric.WithAttributes(method, route))
		defer metrics.activeRequests.Add(c.Request.Context(), -1, metric.WithAttributes(method, route))

		c.Next()

		attrs := metric.WithAttributes(method, route, attribute.Int("http.status_code", c.Writer.Status()))
		metrics.requestDuration.Record(c.Request.Context(), time.Since(start).Seconds(), attrs)
		metrics.requestTotal.Add(c.Request.Context(), 1, attrs)
	}
}
