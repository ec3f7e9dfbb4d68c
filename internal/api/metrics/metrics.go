// Package metrics defines the custom Prometheus metrics of the POS auth API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Call Register once at startup, before the HTTP server starts, with the
// registry that /metrics serves.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pos_auth"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenAuthTotal counts bearer-token authentications on protected routes.
// Label:
//   - result: "ok", "missing", "invalid" or "error"
var TokenAuthTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_authentications_total",
		Help:      "Total number of bearer token authentications, by result.",
	},
	[]string{"result"},
)

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersCreatedTotal counts accounts created.
// Label:
//   - role: "admin" or "cashier"
var UsersCreatedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// Collectors returns every custom metric.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		LoginAttemptsTotal,
		TokenAuthTotal,
		UsersCreatedTotal,
	}
}

// Register adds every custom metric to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
