package graphs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	expansions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tmsim_graph_expansions_total",
		Help: "Configurations whose successors were computed",
	})

	discoveredNodes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tmsim_graph_discovered_nodes_total",
		Help: "Configurations inserted into a graph",
	})

	recordedEdges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tmsim_graph_edges_total",
		Help: "Edges recorded between configurations",
	})

	missingTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tmsim_graph_missing_transitions_total",
		Help: "Reachable configurations whose state is absent from the transition table",
	})

	deepenNoops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tmsim_graph_deepen_noops_total",
		Help: "Deepen calls starting from an already expanded configuration",
	})

	deepenDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tmsim_graph_deepen_duration_seconds",
		Help:    "Time to run one breadth first expansion",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
	})
)
