// Package metrics defines and registers all custom Prometheus metrics for
// the CRM web application. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are exposed through the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordsCreatedTotal counts customer records created through the add form.
var RecordsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of customer records created.",
	},
)

// RecordsUpdatedTotal counts successful record updates.
var RecordsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_updated_total",
		Help:      "Total number of customer records updated.",
	},
)

// RecordsDeletedTotal counts successful record deletions.
var RecordsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of customer records deleted.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts accounts created through the register form.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registrations.",
	},
)
