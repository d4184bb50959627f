// Package metrics defines and registers the custom Prometheus metrics for
// the reservation API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// ReservationsCreatedTotal counts ledger rows created.
// Label:
//   - kind: "single" (booking workflow) or "batch" (batch lock)
var ReservationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservation rows created, by workflow kind.",
	},
	[]string{"kind"},
)

// ConflictsTotal counts rejected requests that collided with existing rows.
// Label:
//   - kind: "single" or "batch"
var ConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of booking requests rejected due to slot conflicts.",
	},
	[]string{"kind"},
)

// BatchDeletesTotal counts bulk removals by batch tag.
var BatchDeletesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batch_deletes_total",
		Help:      "Total number of batch-tag bulk deletions performed.",
	},
)

// ExportsTotal counts CSV report downloads.
var ExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "csv_exports_total",
		Help:      "Total number of CSV exports served.",
	},
)
