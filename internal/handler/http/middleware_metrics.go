package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	unmatchedRoute = "unmatched"
	// unauthenticatedRoute labels requests rejected by requireAuth. chi has
	// only resolved the mount prefix at that point, e.g. "/api/session/*".
	unauthenticatedRoute = "unauthenticated"
)

type routeLabelCtxKey struct{}

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yoga_studio",
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yoga_studio",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// withMetrics records request count and latency. Routes are labelled by
// their chi pattern so that path parameters do not explode cardinality.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}
		label := new(string)
		r = r.WithContext(context.WithValue(r.Context(), routeLabelCtxKey{}, label))

		next.ServeHTTP(mw, r)

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}
		route := *label
		if route == "" {
			route = routePattern(r)
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}

// setRouteLabel overrides the route label recorded by withMetrics.
func setRouteLabel(r *http.Request, route string) {
	if label, ok := r.Context().Value(routeLabelCtxKey{}).(*string); ok {
		*label = route
	}
}
