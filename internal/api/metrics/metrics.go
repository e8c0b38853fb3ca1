// Package metrics defines and registers all custom Prometheus metrics for the
// aicomics backend. It is the single source of truth for metric names, labels,
// and help strings; promauto registers everything with the default registry
// at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "aicomics"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "validation_error", "user_exists", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "account_disabled", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionValidationsTotal counts per-request session lookups.
// Label:
//   - result: "hit" (valid session) or "miss" (absent/expired)
var SessionValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_validations_total",
		Help:      "Total number of session store lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// SessionsActive approximates the number of live sessions: incremented on
// login and registration, decremented on logout. Expired sessions decay out
// of the true count but not this gauge, so treat it as an upper bound.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Approximate number of currently active sessions.",
	},
)

// ── Media metrics ─────────────────────────────────────────────────────────────

// MediaItemsTotal counts catalog writes.
// Label:
//   - operation: "create", "update", "delete"
var MediaItemsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_items_total",
		Help:      "Total number of media catalog write operations.",
	},
	[]string{"operation"},
)
