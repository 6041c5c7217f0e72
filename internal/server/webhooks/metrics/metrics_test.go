package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/internal/server/webhooks/metrics"
)

func TestEndpointMiddleware(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		receiver string
		code     int

		wantLabel string
	}{
		"Labels the receiver":             {receiver: "main", code: http.StatusOK, wantLabel: "main"},
		"Unlabelled requests are unknown": {code: http.StatusForbidden, wantLabel: metrics.Unknown},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reg := prometheus.NewRegistry()
			h := metrics.NewEndpointMiddleware(reg).Wrap("receive", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tc.receiver != "" {
					metrics.ApplyReceiver(r, tc.receiver)
				}
				w.WriteHeader(tc.code)
			}))

			for range 2 {
				h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/webhooks/x", strings.NewReader("{}")))
			}

			want := `
# HELP http_endpoint_requests_total Tracks the number of HTTP requests to the endpoint.
# TYPE http_endpoint_requests_total counter
http_endpoint_requests_total{code="` + strconv.Itoa(tc.code) + `",handler="receive",method="post",receiver="` + tc.wantLabel + `"} 2
`
			require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "http_endpoint_requests_total"), "Unexpected request counter")
			assert.Equal(t, 3, testutil.CollectAndCount(reg), "Counter, histogram and summary should be registered")
		})
	}
}

func TestMuxMiddleware(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	h := metrics.NewMuxMiddleware(reg).Wrap("mux", http.NotFoundHandler())
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	want := `
# HELP http_mux_requests_total Tracks the number of HTTP requests to the mux.
# TYPE http_mux_requests_total counter
http_mux_requests_total{code="404",handler="mux",method="get"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "http_mux_requests_total"), "Unexpected request counter")
}
