// Package metrics defines and registers all custom Prometheus metrics for
// the pizza store ordering API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pizzastore"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts draft orders opened.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of draft orders opened.",
	},
)

// OrderLinesAddedTotal counts confirmed order lines.
var OrderLinesAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_lines_added_total",
		Help:      "Total number of lines added to draft orders.",
	},
)

// OrdersCommittedTotal counts committed orders.
var OrdersCommittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_committed_total",
		Help:      "Total number of orders committed.",
	},
)

// OrdersCancelledTotal counts abandoned drafts.
var OrdersCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_cancelled_total",
		Help:      "Total number of draft orders cancelled.",
	},
)

// OrderCommitDuration measures how long a commit takes end-to-end.
var OrderCommitDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_commit_duration_seconds",
		Help:      "Duration of order commit from request to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)

// StatusTogglesTotal counts status flips.
// Label:
//   - to: the resulting status ("complete" or "incomplete")
var StatusTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_toggles_total",
		Help:      "Total number of order status toggles, by resulting status.",
	},
	[]string{"to"},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDenialsTotal counts gate denials.
// Label:
//   - operation: the denied operation (e.g. "manage-menu")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of operations denied by the authorization gate.",
	},
	[]string{"operation"},
)
