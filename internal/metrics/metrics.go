// Package metrics holds the prometheus collectors of the booking service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	bookingsCreated  prometheus.Counter
	bookingConflicts prometheus.Counter
	transitions      *prometheus.CounterVec
	slotsReturned    prometheus.Histogram
	httpDuration     *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pos_booking",
			Name:      "bookings_created_total",
			Help:      "Appointments persisted in status scheduled.",
		}),
		bookingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pos_booking",
			Name:      "booking_conflicts_total",
			Help:      "Booking requests rejected by the authoritative overlap check.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pos_booking",
			Name:      "appointment_transitions_total",
			Help:      "Applied appointment status transitions.",
		}, []string{"from", "to"}),
		slotsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pos_booking",
			Name:      "availability_slots_returned",
			Help:      "Number of free slots returned per availability request.",
			Buckets:   []float64{0, 1, 4, 8, 16, 32, 64},
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pos_booking",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.bookingsCreated,
		m.bookingConflicts,
		m.transitions,
		m.slotsReturned,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

func (m *Metrics) BookingConflict() {
	if m == nil {
		return
	}
	m.bookingConflicts.Inc()
}

func (m *Metrics) Transition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) SlotsReturned(n int) {
	if m == nil {
		return
	}
	m.slotsReturned.Observe(float64(n))
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
