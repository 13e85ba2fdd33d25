package chain

import (
	"github.com/harmony-one/linkedqueue/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	utils.PromRegistry().MustRegister(
		cowCopiesCounter,
		cowCopiedNodesCounter,
		releasedNodesCounter,
	)
}

var (
	cowCopiesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "linkedqueue",
			Subsystem: "chain",
			Name:      "cow_copies_total",
			Help:      "number of deep copies made because storage was shared on write",
		},
	)

	cowCopiedNodesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "linkedqueue",
			Subsystem: "chain",
			Name:      "cow_copied_nodes_total",
			Help:      "number of nodes allocated by copy on write",
		},
	)

	releasedNodesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "linkedqueue",
			Subsystem: "chain",
			Name:      "released_nodes_total",
			Help:      "number of nodes unlinked by Release",
		},
	)
)
