package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	areaResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "area_resolutions_total",
		Help: "Area token resolutions by outcome.",
	}, []string{"outcome"})
)

// Area resolution outcomes.
const (
	ResolutionFound         = "found"
	ResolutionCreated       = "created"
	ResolutionRaceRecovered = "race_recovered"
	ResolutionNoMatch       = "no_match"
	ResolutionNotFound      = "not_found"
	ResolutionUnresolvable  = "unresolvable"
)

func ObserveAreaResolution(outcome string) {
	areaResolutions.WithLabelValues(outcome).Inc()
}

// PrometheusMiddleware records request counts and latency per route template.
func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method

			httpRequests.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
			httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
