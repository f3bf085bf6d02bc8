package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel"

const (
	RejectReasonUnavailable = "unavailable"
	RejectReasonCapacity    = "capacity"
	RejectReasonInvalid     = "invalid"
)

// Metrics holds the Prometheus collectors for bookings, service orders and HTTP traffic.
type Metrics struct {
	BookingsCreated         prometheus.Counter
	BookingsRejected        *prometheus.CounterVec
	BookingsCanceled        prometheus.Counter
	ServiceOrderTransitions *prometheus.CounterVec
	HTTPRequestDuration     *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Total number of bookings created",
		}),
		BookingsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "Total number of booking attempts rejected",
		}, []string{"reason"}),
		BookingsCanceled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_canceled_total",
			Help:      "Total number of bookings canceled",
		}),
		ServiceOrderTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "service_order_transitions_total",
			Help:      "Total number of applied service order status transitions",
		}, []string{"to"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// NewDefault registers on the process-wide registry served by promhttp.Handler.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
