// Package metrics defines and registers all custom Prometheus metrics for the
// salon API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry on package init via
// promauto; /metrics exposes them next to the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "blocked" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartOperationsTotal counts cart mutations.
// Labels:
//   - op: "add", "update", "remove", "clear", "apply_discount"
//   - result: "ok" or "error"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of cart operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentTransitionsTotal counts payment state changes.
// Label:
//   - status: the status the payment reached ("initialized", "completed", "failed", "refunded")
var PaymentTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_transitions_total",
		Help:      "Total number of payments reaching each status.",
	},
	[]string{"status"},
)

// ── Reminder metrics ──────────────────────────────────────────────────────────

// RemindersTotal counts reminder deliveries.
// Label:
//   - result: "sent" or "error"
var RemindersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_total",
		Help:      "Total number of reminder deliveries, by result.",
	},
	[]string{"result"},
)

// RemindersQueueDepth tracks reminders waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var RemindersQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reminders_queue_depth",
		Help:      "Current number of reminders pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ReminderDeliveryDuration measures one delivery across every notifier.
var ReminderDeliveryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reminder_delivery_duration_seconds",
		Help:      "Duration of reminder delivery from dequeue to last notifier.",
		Buckets:   prometheus.DefBuckets,
	},
)
