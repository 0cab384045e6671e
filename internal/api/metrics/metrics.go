// Package metrics defines all custom Prometheus metrics for the
// adoption API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the
// default registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adoption"

// UsersRegisteredTotal counts successful self-registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered through the public endpoint.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AppointmentsBookedTotal counts successfully created appointments.
// Label:
//   - status: the status the appointment was created with
var AppointmentsBookedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments booked, by initial status.",
	},
	[]string{"status"},
)

// AppointmentConflictsTotal counts bookings rejected because the
// requested day was already taken.
var AppointmentConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_conflicts_total",
		Help:      "Total number of bookings rejected by the one-per-day rule.",
	},
)

// RequestsThrottledTotal counts requests rejected by the rate limiter.
var RequestsThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_throttled_total",
		Help:      "Total number of requests rejected with 429 by the rate limiter.",
	},
)
