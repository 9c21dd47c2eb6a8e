// Package metrics defines the custom Prometheus metrics for the people
// directory API. It is the single source of truth for metric names, labels,
// and help strings; registration happens implicitly through promauto when the
// package is imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "ok", "invalid_credentials", or "throttled"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, labelled by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts successful sign-ups.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user records created.",
	},
)

// UserUpdatesTotal counts committed record mutations.
// Label:
//   - kind: "profile" (general partial update) or "role"
var UserUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_updates_total",
		Help:      "Total number of committed user updates, by kind.",
	},
	[]string{"kind"},
)

// ManagerResolutionsTotal counts manager-reference recomputations.
// Label:
//   - outcome: "matched" (linked to an existing user), "placeholder"
//     (id synthesized or kept for a non-record manager), or "cleared"
var ManagerResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "manager_resolutions_total",
		Help:      "Total number of manager-reference resolutions, by outcome.",
	},
	[]string{"outcome"},
)
