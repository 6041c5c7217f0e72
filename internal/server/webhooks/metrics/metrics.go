// Package metrics provides the Prometheus instrumentation of the webhook receiver.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type label string

// LabelReceiver is the context key holding the receiver label of a request.
const LabelReceiver label = "receiver"

// Unknown is the receiver label of requests which were not matched to an allowed receiver.
const Unknown = "unknown"

// EndpointMiddleware instruments the requests reaching an endpoint.
type EndpointMiddleware struct {
	buckets  []float64
	registry prometheus.Registerer
}

// NewEndpointMiddleware returns an EndpointMiddleware registering its collectors in registry.
func NewEndpointMiddleware(registry prometheus.Registerer) *EndpointMiddleware {
	return &EndpointMiddleware{
		// Request durations skew small, the last bucket is 10.24s.
		buckets:  prometheus.ExponentialBuckets(0.005, 2, 12),
		registry: registry,
	}
}

// Wrap instruments handler, counting requests and observing their duration and size by method, code and receiver.
func (m *EndpointMiddleware) Wrap(handlerName string, handler http.Handler) http.HandlerFunc {
	reg := prometheus.WrapRegistererWith(prometheus.Labels{"handler": handlerName}, m.registry)
	labels := []string{"method", "code", string(LabelReceiver)}
	fromCtx := promhttp.WithLabelFromCtx(string(LabelReceiver), receiverLabelFromCtx)

	requestsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_endpoint_requests_total",
			Help: "Tracks the number of HTTP requests to the endpoint.",
		}, labels,
	)
	requestDuration := promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_endpoint_request_duration_seconds",
			Help:    "Tracks the latencies for HTTP requests to the endpoint.",
			Buckets: m.buckets,
		}, labels,
	)
	requestSize := promauto.With(reg).NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "http_endpoint_request_size_bytes",
			Help: "Tracks the size of HTTP requests to the endpoint.",
		}, labels,
	)

	return promhttp.InstrumentHandlerCounter(
		requestsTotal,
		promhttp.InstrumentHandlerDuration(
			requestDuration,
			promhttp.InstrumentHandlerRequestSize(requestSize, handler, fromCtx),
			fromCtx,
		),
		fromCtx,
	)
}

// MuxMiddleware counts every request reaching the server, including unrouted ones.
type MuxMiddleware struct {
	registry prometheus.Registerer
}

// NewMuxMiddleware returns a MuxMiddleware registering its collector in registry.
func NewMuxMiddleware(registry prometheus.Registerer) *MuxMiddleware {
	return &MuxMiddleware{registry: registry}
}

// Wrap instruments handler, counting requests by method and code.
func (m *MuxMiddleware) Wrap(handlerName string, handler http.Handler) http.HandlerFunc {
	reg := prometheus.WrapRegistererWith(prometheus.Labels{"handler": handlerName}, m.registry)

	requestsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_mux_requests_total",
			Help: "Tracks the number of HTTP requests to the mux.",
		}, []string{"method", "code"},
	)

	return promhttp.InstrumentHandlerCounter(requestsTotal, handler)
}

func receiverLabelFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(LabelReceiver).(string); ok {
		return v
	}
	return Unknown
}

// ApplyReceiver sets the receiver label of r. The request is updated in place so the
// instrumentation wrapping the handler sees it.
func ApplyReceiver(r *http.Request, receiver string) {
	ctx := context.WithValue(r.Context(), LabelReceiver, receiver)
	*r = *r.WithContext(ctx)
}
