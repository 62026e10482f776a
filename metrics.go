package negentropy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "negentropy"

var (
	sessionsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "sessions_started_total",
		Help:      "Number of reconciliation sessions started, by role.",
	}, []string{"role"})

	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "messages_total",
		Help:      "Number of protocol messages handled, by direction.",
	}, []string{"direction"})

	messageBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "message_bytes_total",
		Help:      "Total protocol message bytes, by direction.",
	}, []string{"direction"})

	rangesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "ranges_processed_total",
		Help:      "Number of incoming ranges processed, by mode.",
	}, []string{"mode"})

	protocolErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "protocol_errors_total",
		Help:      "Number of malformed incoming messages rejected.",
	})

	idsDiscovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "ids_discovered_total",
		Help:      "Number of identifiers found missing on one side, by side.",
	}, []string{"side"})
)
