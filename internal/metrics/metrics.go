// Package metrics provides Prometheus metrics for the bot.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	UpdatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "azadinet",
		Name:      "updates_total",
		Help:      "Total number of Telegram updates routed.",
	}, []string{"kind"}) // "command", "callback", "text"

	ProbeResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "azadinet",
		Subsystem: "probe",
		Name:      "results_total",
		Help:      "Reachability probe outcomes by tier.",
	}, []string{"tier"})

	BroadcastMessagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "azadinet",
		Subsystem: "broadcast",
		Name:      "messages_total",
		Help:      "Broadcast deliveries by result.",
	}, []string{"result"}) // "sent" or "failed"

	CatalogEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "azadinet",
		Subsystem: "catalog",
		Name:      "entries",
		Help:      "Number of configs in the catalog.",
	})

	RegisteredUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "azadinet",
		Subsystem: "users",
		Name:      "registered",
		Help:      "Number of registered user ids.",
	})
)

func init() {
	prometheus.MustRegister(
		UpdatesTotal,
		ProbeResultsTotal,
		BroadcastMessagesTotal,
		CatalogEntries,
		RegisteredUsers,
	)
}
