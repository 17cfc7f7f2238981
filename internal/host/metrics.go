package host

import "github.com/prometheus/client_golang/prometheus"

var (
	coreEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventhost",
			Subsystem: "core",
			Name:      "events_total",
			Help:      "Total number of core lifecycle events",
		},
		[]string{"event"},
	)

	corePlayers = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "eventhost",
			Subsystem: "core",
			Name:      "players",
			Help:      "Connected players",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(coreEventsTotal, corePlayers)
}

// MetricsPublisher counts events and tracks connected players in Prometheus.
type MetricsPublisher struct{}

func NewMetricsPublisher() *MetricsPublisher { return &MetricsPublisher{} }

func (*MetricsPublisher) Publish(e Event) {
	coreEventsTotal.WithLabelValues(e.Name).Inc()
	switch e.Name {
	case EventPlayerConnect:
		corePlayers.WithLabelValues(playerKind(e)).Inc()
	case EventPlayerDisconnect:
		corePlayers.WithLabelValues(playerKind(e)).Dec()
	}
}

func playerKind(e Event) string {
	if bot, _ := e.Fields["bot"].(bool); bot {
		return "bot"
	}
	return "human"
}
