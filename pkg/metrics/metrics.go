// Package metrics provides Prometheus counters for state transitions and
// tool executions. Counters register against the default registry; the
// host application decides whether to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus collectors are registered once per process
var (
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fsm_transitions_total",
			Help: "Total number of attempted state transitions by source, target, and result",
		},
		[]string{"from", "to", "result"},
	)

	toolExecutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_executions_total",
			Help: "Total number of tool executions by tool name and result",
		},
		[]string{"tool", "result"},
	)
)

// RecordTransition records an attempted state transition.
func RecordTransition(from, to string, success bool) {
	transitionsTotal.WithLabelValues(from, to, resultLabel(success)).Inc()
}

// RecordToolExecution records a tool execution.
func RecordToolExecution(tool string, success bool) {
	toolExecutionsTotal.WithLabelValues(tool, resultLabel(success)).Inc()
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
