// Package metrics defines the Prometheus metrics exposed on /metrics.
//
// All collectors are registered on the default registry at package init
// through promauto.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "inkhouse"

// Entity kinds and mutation names used as label values.
const (
	EntityProduct = "product"
	EntityOrder   = "order"
	EntityUser    = "user"

	MutationCreate = "create"
	MutationUpdate = "update"
	MutationDelete = "delete"
)

// HTTPRequestsTotal counts served requests.
// Labels: method, route (the registered path template), status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures handler latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// EntityMutationsTotal counts successful writes.
// Labels:
//   - entity: product, order, user
//   - mutation: create, update, delete
var EntityMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_mutations_total",
		Help:      "Total number of persisted entity mutations.",
	},
	[]string{"entity", "mutation"},
)

// RecordMutation bumps EntityMutationsTotal.
func RecordMutation(entity, mutation string) {
	EntityMutationsTotal.WithLabelValues(entity, mutation).Inc()
}

// Middleware records HTTPRequestsTotal and HTTPRequestDuration.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if !c.Response().Committed {
					status = 500
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler serves the default registry.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
