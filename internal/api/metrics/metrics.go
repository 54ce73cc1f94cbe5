// Package metrics defines and registers all custom Prometheus metrics for the
// equipment-management API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default registry
// via promauto at package load; HTTP-level request metrics come from the
// echoprometheus middleware, not from here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "erp"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "admin" (new tenant bootstrapped) or "user" (joined existing tenant)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed user registrations, by assigned role.",
	},
	[]string{"role"},
)

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntitiesCreatedTotal counts created entities.
// Label:
//   - entity: "customer", "product", or "machinery"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by entity kind.",
	},
	[]string{"entity"},
)

// ── Machinery health metrics ──────────────────────────────────────────────────

// HorometerUpdatesTotal counts horometer readings applied.
var HorometerUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "horometer_updates_total",
		Help:      "Total number of horometer readings applied.",
	},
)

// MaintenanceAlertsTotal counts maintenance alerts emitted on alert reads.
// Label:
//   - level: "warning" or "critical"
var MaintenanceAlertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "maintenance_alerts_total",
		Help:      "Total number of maintenance alerts emitted, by severity.",
	},
	[]string{"level"},
)
