// Package metrics exposes the operational counters served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reservations_created_total",
		Help: "Reservations successfully created.",
	})

	ReservationsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reservations_cancelled_total",
		Help: "Reservations cancelled (first cancel only; repeats are no-ops).",
	})

	SeatConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seat_conflicts_total",
		Help: "Reservation attempts rejected because no seat was available.",
	})

	PersistenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "persistence_failures_total",
		Help: "Database errors surfaced to request handlers.",
	})
)
