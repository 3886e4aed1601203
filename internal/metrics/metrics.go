// Package metrics exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers use to report domain events.
type Recorder interface {
	RecordBookingCreated()
	RecordBookingConflict()
	RecordTokenIssued()
}

type Collector struct {
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	bookingsCreated prometheus.Counter
	bookingConflict prometheus.Counter
	tokensIssued    prometheus.Counter
}

// NewCollector creates the collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "doctors_portal_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "doctors_portal_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "doctors_portal_bookings_created_total",
			Help: "Bookings created.",
		}),
		bookingConflict: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "doctors_portal_booking_conflicts_total",
			Help: "Booking requests rejected because the booking already existed.",
		}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "doctors_portal_tokens_issued_total",
			Help: "Access tokens issued on login.",
		}),
	}

	reg.MustRegister(c.requests, c.latency, c.bookingsCreated, c.bookingConflict, c.tokensIssued)
	return c
}

// RecordBookingCreated is unlabelled: the treatment comes from an
// unauthenticated request body.
func (c *Collector) RecordBookingCreated() {
	c.bookingsCreated.Inc()
}

func (c *Collector) RecordBookingConflict() {
	c.bookingConflict.Inc()
}

func (c *Collector) RecordTokenIssued() {
	c.tokensIssued.Inc()
}

// Middleware counts every request and observes its latency. Unmatched
// routes share one label so the series count stays bounded.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		c.requests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.latency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every event.
type Nop struct{}

func (Nop) RecordBookingCreated() {}
func (Nop) RecordBookingConflict() {}
func (Nop) RecordTokenIssued() {}
